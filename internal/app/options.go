package service

import (
	"github.com/okian/matchtag/internal/adapters/repository"
	"github.com/okian/matchtag/internal/domain/pitch"
	"github.com/okian/matchtag/internal/export"
	"github.com/okian/matchtag/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the session store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithExporter sets the ledger exporter.
func WithExporter(exp *export.Exporter) Option {
	return func(s *Service) {
		if exp != nil {
			s.exporter = exp
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequireRunningStopwatch rejects new events while the session stopwatch
// is stopped.
func WithRequireRunningStopwatch(require bool) Option {
	return func(s *Service) {
		s.requireRunning = require
	}
}

// WithEventTypes sets the tag set offered to clients.
func WithEventTypes(types []string) Option {
	return func(s *Service) {
		if len(types) > 0 {
			s.eventTypes = append([]string(nil), types...)
		}
	}
}

// WithDefaultGrid sets the pitch grid used when a request does not specify one.
func WithDefaultGrid(g pitch.Grid) Option {
	return func(s *Service) {
		if g.Validate() == nil {
			s.grid = g
		}
	}
}
