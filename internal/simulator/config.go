package simulator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds the match simulation settings. Field tags drive the
// command line parser.
type Config struct {
	BaseURL   string        `long:"url" default:"http://localhost:8000" description:"Base URL of the service"`
	Sessions  int           `long:"sessions" default:"2" description:"Number of matches simulated concurrently, one session each"`
	Events    int           `long:"events" default:"200" description:"Events tagged per match"`
	Timeout   time.Duration `long:"timeout" default:"10s" description:"HTTP request timeout"`
	OutputDir string        `long:"output-dir" description:"Directory for ZIP exports; exports are skipped when empty"`
	Seed      uint64        `long:"seed" description:"Random seed; 0 picks one from the clock"`
	Cleanup   bool          `long:"cleanup" description:"Delete simulated sessions when done"`
	Verbose   bool          `short:"v" long:"verbose" description:"Enable verbose logging"`
}

// ErrInvalidConfig is returned for unusable simulation settings.
var ErrInvalidConfig = errors.New("invalid simulator config")

// Validate checks the settings.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		return fmt.Errorf("%w: url must not be empty", ErrInvalidConfig)
	case c.Sessions < 1:
		return fmt.Errorf("%w: sessions must be at least 1", ErrInvalidConfig)
	case c.Events < 1:
		return fmt.Errorf("%w: events must be at least 1", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// Report summarizes one simulation run.
type Report struct {
	Sessions       []SessionReport
	EventsTagged   int
	EventsRejected int
	Duration       time.Duration
}

// SessionReport is the outcome of one simulated match.
type SessionReport struct {
	SessionID    string
	EventsTagged int
	Rejected     int
	ElapsedTime  float64
	ExportPath   string
}
