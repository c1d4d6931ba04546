package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SimpleStruct(t *testing.T) {
	type simple struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}

	out, err := Generate(simple{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, string(out), "host")
	assert.Contains(t, string(out), "port")
}

func TestReportSchema(t *testing.T) {
	out, err := ReportSchema()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	s := string(out)
	assert.Contains(t, s, "group")
	assert.Contains(t, s, "results")
	assert.Contains(t, s, "SUCCESS")
	assert.Contains(t, s, "FAILURE")
	assert.Contains(t, s, "SKIP")
}

func TestReportSchema_WirePayloadMatches(t *testing.T) {
	// A report marshaled by the engine unmarshals cleanly into the
	// schema's document mirror.
	payload := `{"group":"IP Validation","status":"FAILURE","results":[{"label":"ip bad","status":"FAILURE","error":"IP a.a.a is invalid."}]}`

	var doc ReportDocument
	require.NoError(t, json.Unmarshal([]byte(payload), &doc))
	assert.Equal(t, "IP Validation", doc.Group)
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "IP a.a.a is invalid.", doc.Results[0].Error)
}
