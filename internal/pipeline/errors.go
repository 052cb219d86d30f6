package pipeline

import (
	"errors"
	"net/http"

	"github.com/AbhiSharma69/revenue-rescue/internal/gemini"
)

// UserMessage maps a gateway error to the short human-readable text shown in
// the conversation. Raw error details stay in the logs.
func UserMessage(err error) string {
	var rlErr *gemini.RateLimitError
	var authErr *gemini.AuthError

	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrNoDataset):
		return err.Error()
	case errors.As(err, &rlErr):
		return "The analysis service has hit its request quota. Please wait a moment and try again."
	case errors.As(err, &authErr):
		return "The analysis service rejected this server's credentials. Check the configuration and try again."
	default:
		return "Something went wrong while contacting the analysis service. Please try again."
	}
}

// StatusFor maps a pipeline error to the HTTP status the API boundary
// returns alongside the {error} body.
func StatusFor(err error) int {
	var rlErr *gemini.RateLimitError
	var authErr *gemini.AuthError

	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrNoDataset):
		return http.StatusBadRequest
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests
	case errors.As(err, &authErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
