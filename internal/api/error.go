package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// genericMessage is used when the backend response carries no message field
const genericMessage = "unexpected server error"

// Error is a non-2xx response from the backend. Message carries the
// backend's own message verbatim when present.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is a backend *Error with the given status
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// errorEnvelope matches the backend's error body. The message field is a
// string for most errors and an array of strings for validation failures.
type errorEnvelope struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func decodeError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Message: genericMessage}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	apiErr.Code = env.Code

	if msg := decodeMessage(env.Message); msg != "" {
		apiErr.Message = msg
	} else if env.Error != "" {
		apiErr.Message = env.Error
	}
	return apiErr
}

func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}
