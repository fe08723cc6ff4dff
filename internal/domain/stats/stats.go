// Package stats aggregates per-team match statistics from tagged events.
package stats

import "github.com/okian/matchtag/internal/domain/model"

// TransitionEventType is the event type counted as a transition.
const TransitionEventType = "Transition"

// Metric names, in chart order.
const (
	MetricGoal        = "Goal"
	MetricShots       = "Shots"
	MetricSoT         = "SoT"
	MetricCrossAtt    = "CrossAtt"
	MetricCrossCmpl   = "CrossCmpl"
	MetricTransitions = "Transitions"
)

// Metrics lists metric names in chart order.
var Metrics = []string{MetricGoal, MetricShots, MetricSoT, MetricCrossAtt, MetricCrossCmpl, MetricTransitions}

// shotSave is counted on target for compatibility with older exports. It is
// not a shot outcome the tagger accepts, so only Goal and Post match today.
const shotSave model.ShotOutcome = "Save"

func onTarget(s model.ShotOutcome) bool {
	return s == model.ShotGoal || s == shotSave || s == model.ShotPost
}

// TeamStats holds the counted metrics for one team.
type TeamStats struct {
	Team        model.Team `json:"team"`
	Goal        int        `json:"Goal"`
	Shots       int        `json:"Shots"`
	SoT         int        `json:"SoT"`
	CrossAtt    int        `json:"CrossAtt"`
	CrossCmpl   int        `json:"CrossCmpl"`
	Transitions int        `json:"Transitions"`
}

// Value returns the metric by name.
func (s TeamStats) Value(metric string) int {
	switch metric {
	case MetricGoal:
		return s.Goal
	case MetricShots:
		return s.Shots
	case MetricSoT:
		return s.SoT
	case MetricCrossAtt:
		return s.CrossAtt
	case MetricCrossCmpl:
		return s.CrossCmpl
	case MetricTransitions:
		return s.Transitions
	}
	return 0
}

// Compute returns one record per team present in events, ordered by the
// team's first appearance.
func Compute(events []model.Event) []TeamStats {
	index := make(map[model.Team]int)
	var out []TeamStats

	for _, ev := range events {
		i, ok := index[ev.Team]
		if !ok {
			i = len(out)
			index[ev.Team] = i
			out = append(out, TeamStats{Team: ev.Team})
		}
		s := &out[i]

		if ev.ShotOutcome != nil {
			if *ev.ShotOutcome == model.ShotGoal {
				s.Goal++
			}
			if onTarget(*ev.ShotOutcome) {
				s.SoT++
			}
		}
		if ev.HasShot() {
			s.Shots++
		}
		if ev.HasCross() {
			s.CrossAtt++
		}
		if ev.CrossOutcome != nil && *ev.CrossOutcome == model.CrossCompleted {
			s.CrossCmpl++
		}
		if ev.EventType == TransitionEventType {
			s.Transitions++
		}
	}
	return out
}
