package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnavailable indicates the circuit breaker is open and the call was not
// attempted.
var ErrUnavailable = errors.New("sweet shop API is unavailable")

// Error is a non-2xx response from the remote API. Message carries the server's
// human-readable explanation when one was provided.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("sweet shop API returned status %d", e.StatusCode)
}

// envelope matches the error body the server writes: {"message": "..."}.
type envelope struct {
	Message string `json:"message"`
}

// errorFromResponse decodes the server's message field out of a failed response.
// Bodies that are not JSON or carry no message produce an Error with an empty
// Message, letting callers substitute their own fallback text.
func errorFromResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Message
	}
	return apiErr
}

// Message extracts the server-provided message from err, falling back to the
// given text when the error carries none. This is what toast surfaces show.
func Message(err error, fallbackText string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallbackText
}
