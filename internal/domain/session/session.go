// Package session groups the state of one independent tagging context.
package session

import (
	"time"

	"github.com/okian/matchtag/internal/domain/ledger"
	"github.com/okian/matchtag/internal/domain/stopwatch"
)

// Session owns one stopwatch and one ledger.
// It is not safe for concurrent use; the session store serializes access.
type Session struct {
	ID        string
	Stopwatch *stopwatch.Stopwatch
	Ledger    *ledger.Ledger
	CreatedAt time.Time
	UpdatedAt time.Time

	clock stopwatch.Clock
}

// Info is a read-only summary of a session.
type Info struct {
	ID               string    `json:"session_id"`
	EventCount       int       `json:"event_count"`
	StopwatchRunning bool      `json:"stopwatch_running"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// New creates an empty session. The clock drives both the stopwatch and the
// session timestamps; nil means time.Now.
func New(id string, clock stopwatch.Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return &Session{
		ID:        id,
		Stopwatch: stopwatch.New(stopwatch.WithClock(clock)),
		Ledger:    ledger.New(),
		CreatedAt: now,
		UpdatedAt: now,
		clock:     clock,
	}
}

// Now returns the session clock's current time.
func (s *Session) Now() time.Time {
	return s.clock()
}

// Touch records a mutation.
func (s *Session) Touch() {
	s.UpdatedAt = s.clock()
}

// Info summarizes the session.
func (s *Session) Info() Info {
	return Info{
		ID:               s.ID,
		EventCount:       s.Ledger.Len(),
		StopwatchRunning: s.Stopwatch.Running(),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
