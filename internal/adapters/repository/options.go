package repository

import (
	"github.com/okian/matchtag/internal/domain/pitch"
	"github.com/okian/matchtag/internal/domain/stopwatch"
)

// DefaultZoneLabels is the hot-zone label limit of the default grid.
const DefaultZoneLabels = pitch.DefaultRows * pitch.DefaultColumns

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock sets the clock handed to new sessions.
func WithClock(clock stopwatch.Clock) Option {
	return func(s *MemoryStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithZoneLabels sets how many zones get their own hot-zone metric label.
// Zones at or past n are reported under one shared label.
func WithZoneLabels(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.zoneLabels = n
		}
	}
}
