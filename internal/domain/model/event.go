// Package model contains domain models passed between layers.
package model

import "time"

// Team identifies the side an event is tagged for.
type Team string

// Teams accepted by the tagger.
const (
	TeamHome Team = "Home"
	TeamAway Team = "Away"
)

// Valid reports whether t is a known team.
func (t Team) Valid() bool {
	return t == TeamHome || t == TeamAway
}

// CrossOutcome is the result of a cross attempt.
type CrossOutcome string

// Cross outcomes. CrossNone marks an explicit "no cross".
const (
	CrossNone        CrossOutcome = "None"
	CrossCompleted   CrossOutcome = "Completed"
	CrossBlocked     CrossOutcome = "Blocked"
	CrossIntercepted CrossOutcome = "Intercepted"
	CrossSaved       CrossOutcome = "Saved"
)

// Valid reports whether c is a known cross outcome.
func (c CrossOutcome) Valid() bool {
	switch c {
	case CrossNone, CrossCompleted, CrossBlocked, CrossIntercepted, CrossSaved:
		return true
	}
	return false
}

// ShotOutcome is the result of a shot.
type ShotOutcome string

// Shot outcomes. ShotNone marks an explicit "no shot".
const (
	ShotNone    ShotOutcome = "None"
	ShotGoal    ShotOutcome = "Goal"
	ShotPost    ShotOutcome = "Post"
	ShotBlocked ShotOutcome = "Blocked"
	ShotOut     ShotOutcome = "Out"
	ShotSaved   ShotOutcome = "Saved"
)

// Valid reports whether s is a known shot outcome.
func (s ShotOutcome) Valid() bool {
	switch s {
	case ShotNone, ShotGoal, ShotPost, ShotBlocked, ShotOut, ShotSaved:
		return true
	}
	return false
}

// EventInput carries the client supplied fields of an event.
// Optional fields are nil when absent or null.
type EventInput struct {
	Minute       float64       `json:"minute"`
	Second       float64       `json:"second"`
	TimeInSecond float64       `json:"time_in_second"`
	Team         Team          `json:"team"`
	EventType    string        `json:"event_type"`
	CrossOutcome *CrossOutcome `json:"cross_outcome"`
	ShotOutcome  *ShotOutcome  `json:"shot_outcome"`
	Zone         *int          `json:"zone"`
}

// Event is a tagged event stored in a session ledger.
// ID is the event's current position in the ledger and changes when an
// earlier event is deleted.
type Event struct {
	ID           int           `json:"id"`
	Minute       float64       `json:"minute"`
	Second       float64       `json:"second"`
	TimeInSecond float64       `json:"time_in_second"`
	Team         Team          `json:"team"`
	EventType    string        `json:"event_type"`
	CrossOutcome *CrossOutcome `json:"cross_outcome"`
	ShotOutcome  *ShotOutcome  `json:"shot_outcome"`
	Zone         *int          `json:"zone"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewEvent builds an Event from validated input.
func NewEvent(id int, in EventInput, createdAt time.Time) Event {
	return Event{
		ID:           id,
		Minute:       in.Minute,
		Second:       in.Second,
		TimeInSecond: in.TimeInSecond,
		Team:         in.Team,
		EventType:    in.EventType,
		CrossOutcome: in.CrossOutcome,
		ShotOutcome:  in.ShotOutcome,
		Zone:         in.Zone,
		CreatedAt:    createdAt,
	}
}

// MatchSecond is the tagged moment expressed as minute*60+second.
func (e Event) MatchSecond() float64 {
	return e.Minute*60 + e.Second
}

// HasShot reports whether the event carries a shot outcome other than None.
func (e Event) HasShot() bool {
	return e.ShotOutcome != nil && *e.ShotOutcome != ShotNone
}

// HasCross reports whether the event carries a cross outcome other than None.
func (e Event) HasCross() bool {
	return e.CrossOutcome != nil && *e.CrossOutcome != CrossNone
}

// StopwatchStatus is a snapshot of a session stopwatch.
// StartTime is non-nil only while running.
type StopwatchStatus struct {
	Running     bool       `json:"running"`
	ElapsedTime float64    `json:"elapsed_time"`
	StartTime   *time.Time `json:"start_time"`
}

// Ptr returns a pointer to v. Handy for optional event fields.
func Ptr[T any](v T) *T {
	return &v
}
