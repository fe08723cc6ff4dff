package model

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the input against the event rules. The returned error
// wraps ErrValidation and names the offending field.
func (in EventInput) Validate() error {
	switch {
	case !finite(in.Minute) || in.Minute < 0:
		return invalid("minute", "must be a non-negative number")
	case !finite(in.Second) || in.Second < 0 || in.Second > 59:
		return invalid("second", "must be between 0 and 59")
	case !finite(in.TimeInSecond) || in.TimeInSecond < 0:
		return invalid("time_in_second", "must be a non-negative number")
	case !in.Team.Valid():
		return invalid("team", fmt.Sprintf("must be %q or %q, got %q", TeamHome, TeamAway, in.Team))
	case strings.TrimSpace(in.EventType) == "":
		return invalid("event_type", "must not be empty")
	case in.CrossOutcome != nil && !in.CrossOutcome.Valid():
		return invalid("cross_outcome", fmt.Sprintf("unknown value %q", *in.CrossOutcome))
	case in.ShotOutcome != nil && !in.ShotOutcome.Valid():
		return invalid("shot_outcome", fmt.Sprintf("unknown value %q", *in.ShotOutcome))
	case in.Zone != nil && *in.Zone < 0:
		return invalid("zone", "must be a non-negative integer")
	}

	// A shot can only follow no cross, an explicit None, or a completed cross.
	if in.ShotOutcome != nil && *in.ShotOutcome != ShotNone && in.CrossOutcome != nil {
		if c := *in.CrossOutcome; c != CrossNone && c != CrossCompleted {
			return invalid("shot_outcome", fmt.Sprintf("not allowed with cross_outcome %q", c))
		}
	}
	return nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
