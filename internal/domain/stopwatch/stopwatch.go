// Package stopwatch tracks elapsed match time for a tagging session.
//
// Elapsed time is computed on read from the stored start time; nothing ticks
// in the background. A Stopwatch is not safe for concurrent use on its own,
// callers serialize access (the session store lock does).
package stopwatch

import (
	"time"

	"github.com/okian/matchtag/internal/domain/model"
)

// Clock returns the current time.
type Clock func() time.Time

// Stopwatch is either stopped with an accumulated elapsed time, or running
// with an elapsed time plus a start instant.
type Stopwatch struct {
	clock   Clock
	running bool
	elapsed time.Duration
	started time.Time
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) {
		if c != nil {
			s.clock = c
		}
	}
}

// New returns a stopped stopwatch at zero.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins timing. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.started = s.clock()
}

// Stop folds the running interval into the elapsed time. Stopping a stopped
// stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += s.clock().Sub(s.started)
	s.running = false
	s.started = time.Time{}
}

// Reset stops the stopwatch and zeroes the elapsed time.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
	s.started = time.Time{}
}

// Running reports whether the stopwatch is running.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Status returns a snapshot. While running the elapsed time includes the
// current interval; stored state is left untouched.
func (s *Stopwatch) Status() model.StopwatchStatus {
	st := model.StopwatchStatus{
		Running:     s.running,
		ElapsedTime: s.elapsed.Seconds(),
	}
	if s.running {
		started := s.started
		st.StartTime = &started
		st.ElapsedTime = (s.elapsed + s.clock().Sub(s.started)).Seconds()
	}
	return st
}

// Elapsed returns the elapsed seconds as Status would report them.
func (s *Stopwatch) Elapsed() float64 {
	return s.Status().ElapsedTime
}
