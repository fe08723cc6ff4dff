// Package service provides the tagging service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"time"

	"github.com/okian/matchtag/internal/adapters/repository"
	"github.com/okian/matchtag/internal/domain/pitch"
	"github.com/okian/matchtag/internal/export"
	"github.com/okian/matchtag/pkg/logger"
)

// DefaultEventTypes is the tag set offered when none is configured.
var DefaultEventTypes = []string{"Transition", "Corner", "Dead-ball", "Slow-attck", "Penalty"}

// Service orchestrates sessions, their stopwatches and ledgers, and exports.
// It holds no locks of its own; the store serializes session access.
type Service struct {
	store    repository.Store
	exporter *export.Exporter
	logger   logger.Logger

	requireRunning bool
	eventTypes     []string
	grid           pitch.Grid
	startedAt      time.Time
}

// New constructs a Service with default configuration. The global logger
// must be initialized unless WithLogger is given.
func New(opts ...Option) *Service {
	s := &Service{
		eventTypes: append([]string(nil), DefaultEventTypes...),
		grid:       pitch.DefaultGrid(),
		startedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithZoneLabels(s.grid.Zones()))
	}
	if s.exporter == nil {
		s.exporter = export.New()
	}
	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	return s
}

// EventTypes returns the configured tag set.
func (s *Service) EventTypes() []string {
	return append([]string(nil), s.eventTypes...)
}

// DefaultGrid returns the pitch grid used when a request does not specify one.
func (s *Service) DefaultGrid() pitch.Grid {
	return s.grid
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	return map[string]any{
		"sessions":                  s.store.Count(ctx),
		"require_running_stopwatch": s.requireRunning,
		"event_types":               s.EventTypes(),
		"uptime_seconds":            time.Since(s.startedAt).Seconds(),
	}
}
