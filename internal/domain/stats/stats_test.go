package stats_test

import (
	"testing"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func ev(team model.Team, eventType string, cross *model.CrossOutcome, shot *model.ShotOutcome) model.Event {
	return model.Event{Team: team, EventType: eventType, CrossOutcome: cross, ShotOutcome: shot}
}

func TestCompute(t *testing.T) {
	Convey("Given a goal, a no-shot and a completed cross", t, func() {
		events := []model.Event{
			ev(model.TeamHome, "Dead-ball", nil, model.Ptr(model.ShotGoal)),
			ev(model.TeamHome, "Dead-ball", nil, model.Ptr(model.ShotNone)),
			ev(model.TeamAway, "Corner", model.Ptr(model.CrossCompleted), nil),
		}

		got := stats.Compute(events)

		Convey("Then each team is counted separately in first-seen order", func() {
			So(got, ShouldHaveLength, 2)
			So(got[0], ShouldResemble, stats.TeamStats{Team: model.TeamHome, Goal: 1, Shots: 1, SoT: 1})
			So(got[1], ShouldResemble, stats.TeamStats{Team: model.TeamAway, CrossAtt: 1, CrossCmpl: 1})
		})
	})

	Convey("Given only one team tagged events", t, func() {
		events := []model.Event{
			ev(model.TeamAway, "Transition", nil, nil),
			ev(model.TeamAway, "Transition", model.Ptr(model.CrossBlocked), nil),
			ev(model.TeamAway, "Slow-attck", model.Ptr(model.CrossNone), model.Ptr(model.ShotPost)),
			ev(model.TeamAway, "Slow-attck", nil, model.Ptr(model.ShotOut)),
			ev(model.TeamAway, "Slow-attck", nil, model.Ptr(model.ShotSaved)),
		}

		got := stats.Compute(events)

		Convey("Then exactly one record is produced", func() {
			So(got, ShouldHaveLength, 1)
			So(got[0].Team, ShouldEqual, model.TeamAway)
			So(got[0].Transitions, ShouldEqual, 2)
			So(got[0].CrossAtt, ShouldEqual, 1)
			So(got[0].CrossCmpl, ShouldEqual, 0)
			So(got[0].Shots, ShouldEqual, 3)
			So(got[0].SoT, ShouldEqual, 1)
			So(got[0].Goal, ShouldEqual, 0)
		})
	})

	Convey("Given no events", t, func() {
		So(stats.Compute(nil), ShouldBeEmpty)
	})
}

func TestDivergent(t *testing.T) {
	Convey("Given two team records", t, func() {
		teams := []stats.TeamStats{
			{Team: model.TeamHome, Goal: 3, Shots: 4},
			{Team: model.TeamAway, Goal: 1},
		}

		rows := stats.Divergent(teams)

		Convey("Then every team/metric pair is present", func() {
			So(rows, ShouldHaveLength, 2*len(stats.Metrics))
			So(rows[0].Variable, ShouldEqual, stats.MetricGoal)
			So(rows[0].Team, ShouldEqual, model.TeamHome)
			So(rows[1].Team, ShouldEqual, model.TeamAway)
		})

		Convey("Then fractions are shares of the cross-team total", func() {
			So(rows[0].Defined, ShouldBeTrue)
			So(*rows[0].Fraction, ShouldEqual, 0.75)
			So(*rows[1].Fraction, ShouldEqual, 0.25)
			So(*rows[2].Fraction, ShouldEqual, 1)
			So(*rows[3].Fraction, ShouldEqual, 0)
		})

		Convey("Then a metric summing to zero has no fraction", func() {
			for _, r := range rows[4:] {
				So(r.Value, ShouldEqual, 0)
				So(r.Defined, ShouldBeFalse)
				So(r.Fraction, ShouldBeNil)
			}
		})
	})
}
