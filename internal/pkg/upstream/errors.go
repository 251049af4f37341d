package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrAuthentication marks rejected credentials or an expired backend
// session. Guards treat it as "not authenticated".
var ErrAuthentication = errors.New("authentication rejected by backend")

// ValidationError carries a backend-rejected-input message. The message
// is shown to the user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// APIError covers every other non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend request failed: status=%d message=%s", e.StatusCode, e.Message)
}

// ErrorMessage extracts the user-facing message from a backend error,
// falling back to the error's own text. Mirrors the best-effort body
// extraction the dashboard surfaces on failed mutations.
func ErrorMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// extractMessage pulls a human-readable message out of an error body.
// The backend uses either {"message": ...} or {"error": ...}.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
