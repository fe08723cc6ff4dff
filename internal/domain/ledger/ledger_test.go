package ledger_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/okian/matchtag/internal/domain/ledger"
	"github.com/okian/matchtag/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var created = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

func input(eventType string, zone *int) model.EventInput {
	return model.EventInput{Minute: 1, Team: model.TeamHome, EventType: eventType, Zone: zone}
}

func assertDense(events []model.Event) {
	for i, ev := range events {
		So(ev.ID, ShouldEqual, i)
	}
}

func TestLedgerAppendDelete(t *testing.T) {
	Convey("Given an empty ledger", t, func() {
		l := ledger.New()

		Convey("When events are appended", func() {
			a := l.Append(input("Corner", model.Ptr(1)), created)
			b := l.Append(input("Transition", nil), created)
			c := l.Append(input("Corner", model.Ptr(1)), created)

			Convey("Then ids are positions and zones are counted", func() {
				So(a.ID, ShouldEqual, 0)
				So(b.ID, ShouldEqual, 1)
				So(c.ID, ShouldEqual, 2)
				So(c.CreatedAt, ShouldEqual, created)
				So(l.Len(), ShouldEqual, 3)
				So(l.HotZones(nil), ShouldResemble, map[int]int{1: 2})
			})

			Convey("Then deleting the middle event renumbers the rest", func() {
				So(l.Delete(1), ShouldBeTrue)
				events := l.List()
				So(events, ShouldHaveLength, 2)
				assertDense(events)
				So(events[1].EventType, ShouldEqual, "Corner")
			})

			Convey("Then deleting a zoned event decrements only its zone", func() {
				l.Append(input("Penalty", model.Ptr(7)), created)
				So(l.Delete(0), ShouldBeTrue)
				So(l.HotZones(nil), ShouldResemble, map[int]int{1: 1, 7: 1})

				Convey("And re-inserting restores the count", func() {
					l.Append(input("Corner", model.Ptr(1)), created)
					So(l.HotZones(nil), ShouldResemble, map[int]int{1: 2, 7: 1})
				})
			})

			Convey("Then out of range deletes report false and change nothing", func() {
				So(l.Delete(-1), ShouldBeFalse)
				So(l.Delete(3), ShouldBeFalse)
				So(l.Len(), ShouldEqual, 3)
			})

			Convey("Then List returns a copy", func() {
				events := l.List()
				events[0].EventType = "mutated"
				got, ok := l.Get(0)
				So(ok, ShouldBeTrue)
				So(got.EventType, ShouldEqual, "Corner")
			})

			Convey("Then Clear empties the ledger", func() {
				l.Clear()
				So(l.Len(), ShouldEqual, 0)
				So(l.HotZones(nil), ShouldBeEmpty)
				So(l.Append(input("Corner", nil), created).ID, ShouldEqual, 0)
			})
		})
	})
}

func TestLedgerHotZoneFilter(t *testing.T) {
	Convey("Given a ledger with mixed event types", t, func() {
		l := ledger.New()
		l.Append(input("Corner", model.Ptr(2)), created)
		l.Append(input("Corner", model.Ptr(2)), created)
		l.Append(input("Corner", nil), created)
		l.Append(input("Penalty", model.Ptr(2)), created)
		l.Append(input("Penalty", model.Ptr(5)), created)

		Convey("When filtering by event type", func() {
			corner := "Corner"
			penalty := "Penalty"
			missing := "Dead-ball"

			Convey("Then only zoned events of that type are counted", func() {
				So(l.HotZones(&corner), ShouldResemble, map[int]int{2: 2})
				So(l.HotZones(&penalty), ShouldResemble, map[int]int{2: 1, 5: 1})
				So(l.HotZones(&missing), ShouldBeEmpty)
				So(l.HotZones(nil), ShouldResemble, map[int]int{2: 3, 5: 1})
			})
		})
	})
}

// TestLedgerRandomSequences drives random appends and deletes and checks
// the ledger against a plain slice model after every step.
func TestLedgerRandomSequences(t *testing.T) {
	Convey("Given random append/delete sequences", t, func() {
		rng := rand.New(rand.NewPCG(1, 2))
		types := []string{"Corner", "Transition", "Penalty"}

		for run := 0; run < 20; run++ {
			l := ledger.New()
			var shadow []model.EventInput

			for step := 0; step < 200; step++ {
				if len(shadow) > 0 && rng.IntN(3) == 0 {
					id := rng.IntN(len(shadow))
					So(l.Delete(id), ShouldBeTrue)
					shadow = append(shadow[:id], shadow[id+1:]...)
				} else {
					in := input(types[rng.IntN(len(types))], nil)
					if rng.IntN(4) > 0 {
						in.Zone = model.Ptr(rng.IntN(9))
					}
					l.Append(in, created)
					shadow = append(shadow, in)
				}
			}

			events := l.List()
			So(events, ShouldHaveLength, len(shadow))
			assertDense(events)

			want := map[int]int{}
			for _, in := range shadow {
				if in.Zone != nil {
					want[*in.Zone]++
				}
			}
			So(l.HotZones(nil), ShouldResemble, want)

			for _, et := range types {
				scan := map[int]int{}
				for _, ev := range events {
					if ev.Zone != nil && ev.EventType == et {
						scan[*ev.Zone]++
					}
				}
				So(l.HotZones(&et), ShouldResemble, scan)
			}
		}
	})
}
