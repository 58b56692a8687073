package avatar

import (
	"errors"
	"fmt"
)

// FailureClass is the normalized failure taxonomy for avatar backends.
// The chain transitions on any class; metrics and logs use it to tell a
// timed-out backend from a filtering one.
type FailureClass string

const (
	// FailureTimeout indicates the backend took too long to respond.
	FailureTimeout FailureClass = "timeout"

	// FailureBadPayload indicates a malformed, empty, or undecodable response.
	FailureBadPayload FailureClass = "bad_payload"

	// FailureFiltered indicates the backend refused the prompt. This is a
	// distinct class so a filtered response is never conflated with success.
	FailureFiltered FailureClass = "content_filtered"

	// FailureUnavailable indicates the backend is unreachable, unconfigured,
	// rate limited, or rejecting credentials.
	FailureUnavailable FailureClass = "unavailable"

	// FailureInternal indicates an unexpected local error.
	FailureInternal FailureClass = "internal"
)

// BackendError wraps one backend failure with its normalized class.
type BackendError struct {
	Backend    Backend
	Class      FailureClass
	Message    string
	Underlying error
}

func (e *BackendError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("backend %s [%s]: %s: %v", e.Backend, e.Class, e.Message, e.Underlying)
	}
	return fmt.Sprintf("backend %s [%s]: %s", e.Backend, e.Class, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Underlying
}

// NewBackendError builds a classified backend failure.
func NewBackendError(backend Backend, class FailureClass, message string, underlying error) *BackendError {
	return &BackendError{
		Backend:    backend,
		Class:      class,
		Message:    message,
		Underlying: underlying,
	}
}

// ClassOf extracts the failure class from an error chain. Unclassified
// errors report as internal.
func ClassOf(err error) FailureClass {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Class
	}
	return FailureInternal
}
