package entities

// Outcome is the labeled, statused result of a single check, optionally
// carrying the error that caused it to fail. On the conventional
// construction path the error is present exactly when the status is
// FAILURE, but nothing forbids assembling other combinations directly.
type Outcome struct {
	// Label is a caller-chosen description of the outcome. May be empty.
	Label string

	// Status is the check status. The zero value decodes as SKIP.
	Status Status

	// Err is the error that failed the check, nil when it passed.
	Err *ValidationError
}

// OutcomeSuccess creates a passing Outcome with the given label.
func OutcomeSuccess(label string) Outcome {
	return Outcome{Label: label, Status: StatusSuccess}
}

// OutcomeFailure creates a failing Outcome with the given label and error.
func OutcomeFailure(label string, err *ValidationError) Outcome {
	return Outcome{Label: label, Status: StatusFailure, Err: err}
}

// HasError returns true if the outcome carries an error.
func (o Outcome) HasError() bool {
	return o.Err != nil
}
