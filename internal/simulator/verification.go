package simulator

import (
	"errors"
	"fmt"
	"time"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/stats"
)

// ErrMismatch is returned when server state disagrees with what was tagged.
var ErrMismatch = errors.New("verification mismatch")

// verifyLedger checks the server ledger holds the tagged events in order
// with positional ids.
func verifyLedger(tagged []model.EventInput, ledger []model.Event) error {
	if len(ledger) != len(tagged) {
		return fmt.Errorf("%w: ledger has %d events, tagged %d", ErrMismatch, len(ledger), len(tagged))
	}
	for i, ev := range ledger {
		if ev.ID != i {
			return fmt.Errorf("%w: event %d has id %d", ErrMismatch, i, ev.ID)
		}
		if ev.Team != tagged[i].Team || ev.EventType != tagged[i].EventType || ev.TimeInSecond != tagged[i].TimeInSecond {
			return fmt.Errorf("%w: event %d differs from the tagged input", ErrMismatch, i)
		}
	}
	return nil
}

// verifyStats recomputes team statistics from the tagged inputs and compares
// them with the server's.
func verifyStats(tagged []model.EventInput, got []stats.TeamStats) error {
	events := make([]model.Event, len(tagged))
	for i, in := range tagged {
		events[i] = model.NewEvent(i, in, time.Time{})
	}
	want := stats.Compute(events)

	if len(got) != len(want) {
		return fmt.Errorf("%w: %d team records, expected %d", ErrMismatch, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: stats for %s are %+v, expected %+v", ErrMismatch, want[i].Team, got[i], want[i])
		}
	}
	return nil
}
