// Package ledger keeps the ordered list of tagged events for one session.
//
// Event ids are positions: they are always 0..n-1 in insertion order and are
// reassigned after a delete. A Ledger is not safe for concurrent use.
package ledger

import (
	"time"

	"github.com/okian/matchtag/internal/domain/model"
)

// Ledger stores events and a running zone counter.
type Ledger struct {
	events   []model.Event
	hotZones map[int]int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{hotZones: make(map[int]int)}
}

// Append stores in with id = current length and returns the stored event.
// The input is expected to be validated.
func (l *Ledger) Append(in model.EventInput, createdAt time.Time) model.Event {
	ev := model.NewEvent(len(l.events), in, createdAt)
	l.events = append(l.events, ev)
	if ev.Zone != nil {
		l.hotZones[*ev.Zone]++
	}
	return ev
}

// Delete removes the event at id and renumbers the ones after it.
// It returns false when id is out of range.
func (l *Ledger) Delete(id int) bool {
	if id < 0 || id >= len(l.events) {
		return false
	}
	removed := l.events[id]
	if removed.Zone != nil {
		z := *removed.Zone
		if l.hotZones[z] > 1 {
			l.hotZones[z]--
		} else {
			delete(l.hotZones, z)
		}
	}

	l.events = append(l.events[:id], l.events[id+1:]...)
	for i := id; i < len(l.events); i++ {
		l.events[i].ID = i
	}
	return true
}

// Get returns the event at id.
func (l *Ledger) Get(id int) (model.Event, bool) {
	if id < 0 || id >= len(l.events) {
		return model.Event{}, false
	}
	return l.events[id], true
}

// List returns a copy of the events in insertion order.
func (l *Ledger) List() []model.Event {
	out := make([]model.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of events.
func (l *Ledger) Len() int {
	return len(l.events)
}

// HotZones returns zone counts. With a nil filter it copies the running
// counter; otherwise it scans for zone-tagged events of that event type.
func (l *Ledger) HotZones(eventType *string) map[int]int {
	out := make(map[int]int)
	if eventType == nil {
		for z, n := range l.hotZones {
			out[z] = n
		}
		return out
	}
	for _, ev := range l.events {
		if ev.Zone != nil && ev.EventType == *eventType {
			out[*ev.Zone]++
		}
	}
	return out
}

// Clear drops every event and zone count.
func (l *Ledger) Clear() {
	l.events = nil
	l.hotZones = make(map[int]int)
}
