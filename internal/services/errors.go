package services

import (
	"encoding/json"

	"github.com/desertthunder/myflix/internal/shared"
)

// RequestError is returned by every failed gateway call.
//
// Error returns the user facing message only. The status, body and cause
// are kept for logging and inspection.
type RequestError struct {
	Op         Operation
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap exposes both [shared.ErrAPIRequest] and the underlying cause.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{shared.ErrAPIRequest}
	}
	return []error{shared.ErrAPIRequest, e.Err}
}

func newRequestError(op Operation, status int, body []byte, cause error) *RequestError {
	return &RequestError{
		Op:         op,
		StatusCode: status,
		Body:       string(body),
		Message:    FailureMessage(op, status, string(body)),
		Err:        cause,
	}
}

// objectMessage reads a message or error field from a JSON object body.
func objectMessage(body string) (string, bool) {
	var obj struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return "", false
	}
	switch {
	case obj.Message != "":
		return obj.Message, true
	case obj.Error != "":
		return obj.Error, true
	}
	return "", false
}
