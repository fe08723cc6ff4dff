// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/matchtag/internal/domain/pitch"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultSession is used when a request carries no X-Session-ID header.
	DefaultSession string `koanf:"default_session"`

	// RequireRunningStopwatch rejects new events while the session stopwatch is stopped.
	RequireRunningStopwatch bool `koanf:"require_running_stopwatch"`

	// ExportFileName is the base name used for ZIP exports without a filename query.
	ExportFileName string `koanf:"export_file_name"`

	// EventTypes is the tag set offered to clients.
	EventTypes []string `koanf:"event_types"`

	// PitchRows and PitchColumns describe the default zone grid.
	PitchRows    int `koanf:"pitch_rows"`
	PitchColumns int `koanf:"pitch_columns"`

	// FieldLength and FieldWidth are the pitch dimensions in meters.
	FieldLength float64 `koanf:"field_length"`
	FieldWidth  float64 `koanf:"field_width"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New creates a Config populated with defaults. Context is accepted first to
// follow the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":8000",
		DefaultSession: "default",
		ExportFileName: "events",
		EventTypes:     []string{"Transition", "Corner", "Dead-ball", "Slow-attck", "Penalty"},
		PitchRows:      3,
		PitchColumns:   3,
		FieldLength:    120,
		FieldWidth:     80,
		MaxBodyBytes:   1 << 20,
		CORSOrigins:    []string{"*"},
	}
}

// Grid returns the configured default pitch grid.
func (c *Config) Grid() pitch.Grid {
	return pitch.Grid{Rows: c.PitchRows, Columns: c.PitchColumns, Length: c.FieldLength, Width: c.FieldWidth}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DefaultSession) == "":
		return fmt.Errorf("%w: default_session must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.ExportFileName) == "":
		return fmt.Errorf("%w: export_file_name must not be empty", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
