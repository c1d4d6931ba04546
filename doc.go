// Package prevet is a composable validation engine. It expresses chains of
// dependent and independent checks, aggregates their outcomes into named
// reports, and lets each caller decide between fail-fast and
// collect-and-report semantics.
//
// A caller constructs validators, calls Validate, and gets back a Decision.
// The Decision either converts to a labeled outcome for reporting or aborts
// immediately on failure. Outcomes accumulate in a Group, whose Finalize
// derives the aggregate status:
//
//	group := prevet.NewGroup("IP Validation").
//		AddValidator(prevet.NewAddressFormat("10.0.0.1")).
//		AddValidator(prevet.NewAddressFormat("a.a.a"))
//	report := group.Finalize() // StatusFailure, one error collected
//
// Checks run synchronously in caller-determined order; the engine does not
// encode dependency graphs. Callers gate dependent checks by branching on
// earlier decisions.
package prevet
