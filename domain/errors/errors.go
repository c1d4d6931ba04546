// Package errors provides domain-specific error types for the validation
// engine. All error types support unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/prevet-dev/prevet/domain/entities"
)

// ValidationError is an alias to entities.ValidationError for convenience.
type ValidationError = entities.ValidationError

// ToValidationError converts a Go error to the domain error kind. If the
// error already is (or wraps) a *ValidationError it is returned as-is;
// otherwise a new one is created from the error text.
func ToValidationError(err error) *entities.ValidationError {
	if err == nil {
		return nil
	}

	var ve *entities.ValidationError
	if stdErrors.As(err, &ve) {
		return ve
	}

	return entities.NewValidationError(err.Error())
}

// ConfigError represents a check configuration error: a required field is
// missing, mistyped, or out of range.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProfileError represents a profile document that failed to parse or
// validate before compilation.
type ProfileError struct {
	Err  error
	Path string
}

func (e *ProfileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid profile %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid profile: %v", e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}
