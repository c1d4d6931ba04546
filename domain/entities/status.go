package entities

// Status represents the outcome status of a check or a check group.
type Status string

const (
	// StatusSuccess indicates the check (or every check in the group) passed.
	StatusSuccess Status = "SUCCESS"

	// StatusFailure indicates the check failed, or at least one check in the
	// group carries an error.
	StatusFailure Status = "FAILURE"

	// StatusSkip is the zero state: the check or group was never evaluated.
	StatusSkip Status = "SKIP"
)

// ParseStatus converts status text into a Status. It is total: any text
// that is not one of the three known literals degrades to StatusSkip, so
// decoding a report can never fail on its status field.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusSuccess:
		return StatusSuccess
	case StatusFailure:
		return StatusFailure
	default:
		return StatusSkip
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsFailure returns true if the status indicates failure.
func (s Status) IsFailure() bool {
	return s == StatusFailure
}

// IsSkip returns true if the status indicates the check never ran.
func (s Status) IsSkip() bool {
	return s == StatusSkip
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
