package profile

import (
	"log/slog"

	"github.com/prevet-dev/prevet"
	"github.com/prevet-dev/prevet/domain/entities"
)

// Run executes every compiled group in order and finalizes a report for
// each. Failures never interrupt the run; they accumulate in the reports.
func Run(groups []CompiledGroup) []entities.Report {
	reports := make([]entities.Report, 0, len(groups))
	for _, cg := range groups {
		slog.Debug("running check group", "group", cg.Name, "checks", len(cg.Checks))
		g := prevet.NewGroup(cg.Name)
		for _, v := range cg.Checks {
			g.AddValidator(v)
		}
		report := g.Finalize()
		slog.Debug("check group finished", "group", cg.Name, "status", report.Status)
		reports = append(reports, report)
	}
	return reports
}

// RunFailFast executes groups in order but aborts on the first failing
// check, returning the reports finalized so far together with the failing
// check's error. Only the immediate run unwinds; the caller decides
// whether to propagate.
func RunFailFast(groups []CompiledGroup) ([]entities.Report, error) {
	reports := make([]entities.Report, 0, len(groups))
	for _, cg := range groups {
		g := prevet.NewGroup(cg.Name)
		for _, v := range cg.Checks {
			d, err := v.Validate(true)
			if err != nil {
				slog.Debug("check group aborted", "group", cg.Name, "error", err)
				return reports, err
			}
			g.AddOutcome(d.Outcome("", ""))
		}
		reports = append(reports, g.Finalize())
	}
	return reports, nil
}
