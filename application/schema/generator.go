// Package schema provides JSON schema generation for the report wire
// format, so API consumers can validate report payloads without importing
// this module.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// OutcomeDocument mirrors the wire shape of a single check outcome.
type OutcomeDocument struct {
	Label  string `json:"label"`
	Status string `json:"status" jsonschema:"enum=SUCCESS,enum=FAILURE,enum=SKIP"`
	Error  string `json:"error,omitempty"`
}

// ReportDocument mirrors the wire shape of a check group report.
type ReportDocument struct {
	Group   string            `json:"group"`
	Status  string            `json:"status" jsonschema:"enum=SUCCESS,enum=FAILURE,enum=SKIP"`
	Results []OutcomeDocument `json:"results"`
}

// Generate creates a JSON schema from a Go struct. It uses the
// `invopop/jsonschema` library to reflect on the struct and produce a
// standard JSON Schema (Draft 2020-12).
func Generate(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// ReportSchema generates the schema of the report wire format.
func ReportSchema() ([]byte, error) {
	return Generate(ReportDocument{})
}
