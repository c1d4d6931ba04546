package prevet

import "github.com/prevet-dev/prevet/domain/entities"

// Validator is the unit check capability. Implementations encapsulate
// exactly one check and hold no shared mutable state, so independent
// callers may invoke them concurrently.
type Validator interface {
	// Validate runs the check and returns a Decision for the caller to
	// inspect. When failFast is true and the check fails, Validate returns
	// a non-nil error (the check's *entities.ValidationError) instead,
	// unwinding only the immediate caller. With failFast false the error
	// return is always nil.
	Validate(failFast bool) (Decision, error)
}

// decide builds the Decision/error pair every concrete validator returns.
func decide(err *entities.ValidationError, failFast bool) (Decision, error) {
	if failFast && err != nil {
		return Decision{}, err
	}
	return NewDecision(err), nil
}
