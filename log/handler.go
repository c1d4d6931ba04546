// Package log configures structured logging (slog) for the validation
// engine's CLI and adapters.
package log

import (
	"io"
	"log/slog"
	"os"
)

// HandlerOption configures the handler built by NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
	json      bool
	writer    io.Writer
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// WithJSON switches the handler to JSON output.
func WithJSON(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.json = enabled
	}
}

// WithWriter sets the destination. Defaults to stderr so report output on
// stdout stays machine-readable.
func WithWriter(w io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		c.writer = w
	}
}

// NewHandler creates a slog handler with the given options.
func NewHandler(opts ...HandlerOption) slog.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}
	if cfg.json {
		return slog.NewJSONHandler(cfg.writer, handlerOpts)
	}
	return slog.NewTextHandler(cfg.writer, handlerOpts)
}

// Setup installs a handler built from the options as the slog default.
func Setup(opts ...HandlerOption) {
	slog.SetDefault(slog.New(NewHandler(opts...)))
}
