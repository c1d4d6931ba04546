package prevet

import "github.com/prevet-dev/prevet/domain/entities"

// Decision wraps a validator's raw pass/fail decision. It is transient:
// each Validate call produces a fresh one, and it only lives between that
// call and the caller's next action (convert to an outcome, or abort).
//
// Separating "run the check" from "decide what to do with the result" lets
// one validator serve as a boolean check, a labeled report entry, or a
// fail-fast guard without duplicating check code.
type Decision struct {
	err *entities.ValidationError
}

// NewDecision creates a Decision carrying the given error, or a passing
// one when err is nil. Custom Validator implementations use this to build
// their return value.
func NewDecision(err *entities.ValidationError) Decision {
	return Decision{err: err}
}

// HasError returns true if an error is attached.
func (d Decision) HasError() bool {
	return d.err != nil
}

// Err returns the attached error, nil when the check passed.
func (d Decision) Err() *entities.ValidationError {
	return d.err
}

// Outcome converts the decision into an outcome record. An errored
// decision yields {failureLabel, FAILURE, the error}; an error-free one
// yields {successLabel, SUCCESS, no error}. Labels may be empty.
func (d Decision) Outcome(successLabel, failureLabel string) entities.Outcome {
	if d.err != nil {
		return entities.OutcomeFailure(failureLabel, d.err)
	}
	return entities.OutcomeSuccess(successLabel)
}

// AbortIf returns the attached error when abort is true and the check
// failed; otherwise it returns the decision unchanged so chaining can
// continue.
func (d Decision) AbortIf(abort bool) (Decision, error) {
	if abort && d.err != nil {
		return Decision{}, d.err
	}
	return d, nil
}
