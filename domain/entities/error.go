package entities

import "fmt"

// ValidationError is the single domain error kind produced by checks.
// It carries a free-text message and nothing else; callers that need
// finer-grained handling wrap it with additional context before it
// enters a validator.
type ValidationError struct {
	// Message is a human-readable description of what failed.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewValidationErrorf creates a ValidationError with a formatted message.
func NewValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
