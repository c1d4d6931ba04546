package entities

// Report is a named, ordered aggregation of check outcomes with a derived
// status. Results appear in the exact order they were accumulated; that
// order is preserved through serialization and is significant for
// dependent-check chains.
//
// Status stays SKIP until a group validator finalizes the report, so a
// report read before finalization reports SKIP even if it already holds
// failing results.
type Report struct {
	// Group is the name of the check group.
	Group string

	// Status is the aggregate status derived at finalization.
	Status Status

	// Results holds the outcomes in append order. The report owns this
	// slice exclusively.
	Results []Outcome
}

// NewReport creates an empty report for the named group in the SKIP state.
func NewReport(group string) Report {
	return Report{Group: group, Status: StatusSkip}
}

// HasErrors returns true if any result carries an error.
func (r Report) HasErrors() bool {
	for _, o := range r.Results {
		if o.HasError() {
			return true
		}
	}
	return false
}

// Errors returns the errors of every result that carries one, in append
// order.
func (r Report) Errors() []*ValidationError {
	var errs []*ValidationError
	for _, o := range r.Results {
		if o.HasError() {
			errs = append(errs, o.Err)
		}
	}
	return errs
}
