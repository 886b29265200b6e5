package groq

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable indicates the retry budget was exhausted while the
// backend kept answering with a transient-overload status.
var ErrBackendUnavailable = errors.New("groq: max retries reached, backend unavailable")

// TransportError wraps a network-level failure contacting the backend.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("groq: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BackendError is a non-success, non-retryable HTTP-level response.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("groq: API error %d: %s", e.Status, e.Body)
}
