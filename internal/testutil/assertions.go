// Package testutil provides common test utilities and assertions.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting.
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	var expectedJSON, actualJSON interface{}
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// AssertStatusLiteral asserts that a wire status string is one of the three
// statuses reports are allowed to carry.
func AssertStatusLiteral(t *testing.T, status string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Contains(t, []string{"SUCCESS", "FAILURE", "SKIP"}, status, msgAndArgs...)
}
