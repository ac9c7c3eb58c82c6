package pager

import (
	"errors"
	"fmt"
)

// ErrNoScreens is returned by hosts asked to run a container without screens.
var ErrNoScreens = errors.New("no screens to display")

// InfrastructureError represents a failure outside the container's own
// logic: a settings file that cannot be read, a texture that cannot be
// created, an input device that cannot be opened.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_settings", "create_texture")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pager: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pager: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// assert panics with a pager-prefixed message. Used for programmer errors only.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("pager: "+format, args...))
	}
}
