package export

import (
	"math/rand/v2"
	"time"
)

// ColorSource returns one 16-bit color channel value in [0, 65535].
type ColorSource func() int

// Option configures an Exporter.
type Option func(*Exporter)

// WithColorSource replaces the random ROWS color channels, mainly for tests.
func WithColorSource(src ColorSource) Option {
	return func(e *Exporter) {
		if src != nil {
			e.color = src
		}
	}
}

// WithClock sets the modification time stamped on ZIP entries.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

func randomChannel() int {
	return rand.IntN(maxChannel + 1) //nolint:gosec // display colors, not security sensitive
}
