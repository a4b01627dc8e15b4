package validation

import (
	"errors"
)

var (
	// ErrValidationFailed matches every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilFailureHandler is returned when a nil failure handler is installed.
	ErrNilFailureHandler = errors.New("validation: failure handler cannot be nil")

	// ErrTaskConsumed is returned when a task is run or validated a second time.
	ErrTaskConsumed = errors.New("validation: task already consumed")

	// ErrNilTask is returned when a nil task is submitted.
	ErrNilTask = errors.New("validation: task cannot be nil")

	// ErrInvalidConfig is returned for configuration values the engine cannot use.
	ErrInvalidConfig = errors.New("validation: invalid config")

	// ErrPredicatePanic wraps a panic raised while evaluating a scheduled task.
	ErrPredicatePanic = errors.New("validation: predicate panicked")
)

// ValidationError is the failure signal produced by the default failure
// handler. Error returns the rendered message unchanged.
type ValidationError struct {
	Message string
}

// NewValidationError creates a validation error for message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports ErrValidationFailed as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ExtractMessage returns the failure message carried by err, or "" when err
// holds no *ValidationError.
func ExtractMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return ""
}
