package metrics

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry and custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metrics register under the configured names", func() {
				So(manager, ShouldNotBeNil)
				manager.sessionsActive.Set(2)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(strings.Join(names, ","), ShouldContainSubstring, "test_unit_sessions_active")
			})
		})

		Convey("When empty option values are passed", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithSubsystem(""), WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "matchtag")
				So(manager.subsystem, ShouldEqual, "tagger")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics", t, func() {
		Convey("When recording tagging metrics", func() {
			before := sampleValues(t, "matchtag_tagger_events_tagged_total")["Home"]
			RecordEventTagged("Home")
			RecordEventTagged("Home")

			Convey("Then the team counter advances", func() {
				So(sampleValues(t, "matchtag_tagger_events_tagged_total")["Home"], ShouldEqual, before+2)
			})
		})

		Convey("When updating hot zones", func() {
			UpdateHotZones(map[int]int{1: 3, 4: 1}, 9)
			UpdateHotZones(map[int]int{2: 5}, 9)

			Convey("Then stale zones are dropped", func() {
				zones := sampleValues(t, "matchtag_tagger_hot_zone_events")
				So(zones, ShouldHaveLength, 1)
				So(zones["2"], ShouldEqual, 5)
			})
		})

		Convey("When zones exceed the label limit", func() {
			UpdateHotZones(map[int]int{0: 1, 8: 2, 9: 4, 123456: 5}, 9)

			Convey("Then they share the other label", func() {
				zones := sampleValues(t, "matchtag_tagger_hot_zone_events")
				So(zones, ShouldHaveLength, 3)
				So(zones["0"], ShouldEqual, 1)
				So(zones["8"], ShouldEqual, 2)
				So(zones[OtherZoneLabel], ShouldEqual, 9)
			})
		})

		Convey("When recording the remaining metrics", func() {
			So(func() {
				RecordEventDeleted()
				RecordEventRejected("validation")
				UpdateLedgerEvents(10)
				RecordStopwatchTransition("start")
				UpdateSessionsActive(3)
				RecordSessionCreated()
				RecordSessionDeleted()
				RecordExport("zip", 2048)
				RecordHTTPRequest("events", "POST", "201")
				RecordHTTPRequestDuration("events", "POST", "201", 1.5)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("events", "POST", "client_error")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					RecordEventTagged("Away")
					RecordHTTPRequest("/test", "GET", "200")
					UpdateLedgerEvents(j)
				}
			}()
		}
		wg.Wait()

		Convey("Then no panic occurs", func() {
			So(true, ShouldBeTrue)
		})
	})
}

// sampleValues gathers the global registry and returns the values of a
// single-label metric family keyed by that label's value.
func sampleValues(t *testing.T, name string) map[string]float64 {
	t.Helper()
	families, err := GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := map[string]float64{}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			key := ""
			if labels := m.GetLabel(); len(labels) > 0 {
				key = labels[0].GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}
