package prevet

import (
	"github.com/prevet-dev/prevet/domain/entities"
	derrors "github.com/prevet-dev/prevet/domain/errors"
)

// Group accumulates check outcomes under a name and derives the aggregate
// status on demand. It starts in the SKIP state and only moves to SUCCESS
// or FAILURE when Finalize recomputes the status from the accumulated
// list. Further appends followed by another Finalize recompute again;
// groups may accumulate across multiple validation passes before a final
// read.
//
// A Group is not safe for concurrent appends. Callers running checks in
// parallel accumulate outcomes locally and merge them sequentially.
type Group struct {
	report entities.Report
}

// NewGroup creates an empty group with the given name.
func NewGroup(name string) *Group {
	return &Group{report: entities.NewReport(name)}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.report.Group
}

// AddValidator runs the validator (never fail-fast), converts its decision
// to an unlabeled outcome, and appends it. Returns the group for chaining.
func (g *Group) AddValidator(v Validator) *Group {
	d, err := v.Validate(false)
	if err != nil {
		// Contract says this cannot happen with failFast false, but a
		// custom Validator may signal anyway; record it as a failure.
		return g.AddOutcome(entities.OutcomeFailure("", derrors.ToValidationError(err)))
	}
	return g.AddOutcome(d.Outcome("", ""))
}

// AddOutcome appends a precomputed outcome, preserving append order.
// Returns the group for chaining.
func (g *Group) AddOutcome(o entities.Outcome) *Group {
	g.report.Results = append(g.report.Results, o)
	return g
}

// HasErrors returns true if any appended outcome carries an error.
func (g *Group) HasErrors() bool {
	return g.report.HasErrors()
}

// Errors returns the errors of every appended outcome that carries one,
// in append order.
func (g *Group) Errors() []*entities.ValidationError {
	return g.report.Errors()
}

// Finalize derives the aggregate status from the accumulated outcomes and
// returns the finalized report: FAILURE if any outcome carries an error,
// SUCCESS otherwise (including the empty group). Calling it again after
// further appends recomputes from the full list.
func (g *Group) Finalize() entities.Report {
	if g.report.HasErrors() {
		g.report.Status = entities.StatusFailure
	} else {
		g.report.Status = entities.StatusSuccess
	}
	return g.snapshot()
}

// Report returns a snapshot of the current report without finalizing, so
// a group read before Finalize still reports SKIP.
func (g *Group) Report() entities.Report {
	return g.snapshot()
}

// snapshot copies the result list so the returned report owns it
// exclusively.
func (g *Group) snapshot() entities.Report {
	r := g.report
	if g.report.Results != nil {
		r.Results = append([]entities.Outcome(nil), g.report.Results...)
	}
	return r
}
