package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(WithLevel(slog.LevelWarn), WithWriter(&buf))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestNewHandler_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(WithWriter(&buf)))

	logger.Info("group finished", "group", "IP Validation", "status", "FAILURE")

	out := buf.String()
	assert.Contains(t, out, "group finished")
	assert.Contains(t, out, "IP Validation")
}

func TestNewHandler_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(WithJSON(true), WithWriter(&buf)))

	logger.Info("group finished", "group", "IP Validation")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "group finished", record["msg"])
	assert.Equal(t, "IP Validation", record["group"])
}
