package bootstrap

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrLayersUnavailable is returned when diagnostics are enabled and the
	// host does not provide every requested layer.
	ErrLayersUnavailable = errors.New("requested diagnostic layers unavailable")

	// ErrWindowCreation marks failures to initialize the windowing library
	// or to obtain a window handle from it.
	ErrWindowCreation = errors.New("failed to create window")
)

// InstanceCreationError reports a non-success result from instance creation.
// Code is the raw VkResult value.
type InstanceCreationError struct {
	Code  int
	cause error
}

func (e *InstanceCreationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("failed to create instance: error code: %d: %v", e.Code, e.cause)
	}
	return fmt.Sprintf("failed to create instance: error code: %d", e.Code)
}

func (e *InstanceCreationError) Unwrap() error {
	return e.cause
}

// WindowCreationError wraps cause (which may be nil when the library simply
// returned no handle) so that errors.Is(err, ErrWindowCreation) holds.
func WindowCreationError(cause error, msg string) error {
	if cause == nil {
		return errors.Wrap(ErrWindowCreation, msg)
	}
	return errors.Mark(errors.Wrap(cause, msg), ErrWindowCreation)
}
