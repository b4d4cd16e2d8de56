package scorer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the scoring service could not be reached.
	ErrUnavailable = errors.New("scoring service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("scoring request timed out")

	// ErrInvalidResponse indicates the service answered with something that
	// is neither a GPA summary nor a structured error.
	ErrInvalidResponse = errors.New("invalid scoring response")

	// ErrRemote matches any *RemoteError.
	ErrRemote = errors.New("scoring service rejected request")
)

// RemoteError is a failure response that carried an "error" message.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("scoring service returned status %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// RemoteMessage returns the service's human-readable message.
func (e *RemoteError) RemoteMessage() string { return e.Message }
