package gemini

import "fmt"

// APIError is the structured error body the generation endpoint returns on
// non-success statuses.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s — %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// RateLimitError indicates the upstream quota is exhausted (429).
type RateLimitError struct{ *APIError }

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %s", e.APIError.Error())
}

// AuthError indicates a rejected or misconfigured API key (401/403).
type AuthError struct{ *APIError }

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.APIError.Error())
}

// TransportError covers network failures and any other non-success status.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream failure (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
