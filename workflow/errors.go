package workflow

import "errors"

var (
	// ErrPatchOrder is returned for a job that mirrors relations before
	// verifying them.
	ErrPatchOrder = errors.New("mirror must run after verify")

	// ErrUnknownStep is returned for a step name with no implementation.
	ErrUnknownStep = errors.New("unknown patch step")

	// ErrUnknownJob is returned when no predefined job has the given name.
	ErrUnknownJob = errors.New("unknown job")
)

// ValidationError reports an invalid job field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
