// Package gemini is the single integration point to the external
// text-generation service.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// NoResponseSentinel is returned when the API call succeeds but carries no
// candidate text.
const NoResponseSentinel = "could not generate a response"

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient builds a gateway client. The key is an injected secret and is
// sent as a request header, never embedded in the URL.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// SetBaseURL points the client at a different endpoint. Tests use this with
// an httptest server.
func (c *Client) SetBaseURL(url string) {
	if url != "" {
		c.baseURL = url
	}
}

// GenerationConfig tunes one generation call. Conversational calls run hotter
// with a smaller token ceiling; report calls need deterministic structure and
// more room.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one prompt and returns the first candidate's text. A single
// attempt only: retries are left to the caller's resubmit flow.
func (c *Client) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := request{
		Contents:         []content{{Parts: []part{{Text: prompt}}, Role: "user"}},
		GenerationConfig: cfg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return NoResponseSentinel, nil
	}
	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

func classifyStatus(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
		apiErr.Status = errResp.Error.Status
		apiErr.Message = errResp.Error.Message
	}

	switch {
	case status == http.StatusTooManyRequests:
		return &RateLimitError{APIError: apiErr}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthError{APIError: apiErr}
	default:
		return &TransportError{StatusCode: status, Err: apiErr}
	}
}
