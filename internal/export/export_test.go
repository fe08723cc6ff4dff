package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/okian/matchtag/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var createdAt = time.Date(2024, 6, 1, 15, 4, 5, 123456789, time.UTC)

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: 0, Minute: 1, Second: 0, TimeInSecond: 60, Team: model.TeamHome, EventType: "Corner", CreatedAt: createdAt},
		{
			ID: 1, Minute: 12, Second: 30.5, TimeInSecond: 750.5, Team: model.TeamAway, EventType: "Slow-attck",
			CrossOutcome: model.Ptr(model.CrossCompleted), ShotOutcome: model.Ptr(model.ShotGoal),
			Zone: model.Ptr(4), CreatedAt: createdAt.Add(time.Second),
		},
		{
			ID: 2, Minute: 13, Second: 2, TimeInSecond: 782, Team: model.TeamHome, EventType: "Corner, short",
			CrossOutcome: model.Ptr(model.CrossNone), Zone: model.Ptr(0), CreatedAt: createdAt.Add(2 * time.Second),
		},
	}
}

func fixedColors() Option {
	n := 0
	return WithColorSource(func() int {
		n++
		return n
	})
}

func TestCSV(t *testing.T) {
	Convey("Given a tagged ledger", t, func() {
		events := sampleEvents()

		Convey("When it is written as CSV", func() {
			data, err := New().CSV(events)
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")

			Convey("Then the header and rows are in column order", func() {
				So(lines, ShouldHaveLength, len(events)+1)
				So(lines[0], ShouldEqual, "id,minute,second,time_in_second,team,event_type,cross_outcome,shot_outcome,zone,created_at")
				So(lines[1], ShouldEqual, "0,1,0,60,Home,Corner,,,,2024-06-01T15:04:05.123456789Z")
			})

			Convey("Then parsing it back yields the same events", func() {
				parsed, err := ParseCSV(bytes.NewReader(data))
				So(err, ShouldBeNil)
				So(parsed, ShouldHaveLength, len(events))
				for i := range events {
					So(parsed[i].ID, ShouldEqual, events[i].ID)
					So(parsed[i].Minute, ShouldEqual, events[i].Minute)
					So(parsed[i].Second, ShouldEqual, events[i].Second)
					So(parsed[i].TimeInSecond, ShouldEqual, events[i].TimeInSecond)
					So(parsed[i].Team, ShouldEqual, events[i].Team)
					So(parsed[i].EventType, ShouldEqual, events[i].EventType)
					So(parsed[i].CrossOutcome, ShouldResemble, events[i].CrossOutcome)
					So(parsed[i].ShotOutcome, ShouldResemble, events[i].ShotOutcome)
					So(parsed[i].Zone, ShouldResemble, events[i].Zone)
					So(parsed[i].CreatedAt.Equal(events[i].CreatedAt), ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given malformed CSV input", t, func() {
		Convey("When the header is wrong", func() {
			_, err := ParseCSV(strings.NewReader("id,minute\n0,1\n"))

			Convey("Then it is malformed", func() {
				So(errors.Is(err, ErrMalformed), ShouldBeTrue)
			})
		})

		Convey("When a field does not parse", func() {
			bad := strings.Join(CSVHeader, ",") + "\nx,1,0,60,Home,Corner,,,,2024-06-01T15:04:05Z\n"
			_, err := ParseCSV(strings.NewReader(bad))

			Convey("Then it is malformed", func() {
				So(errors.Is(err, ErrMalformed), ShouldBeTrue)
			})
		})

		Convey("When only the header is present", func() {
			empty, err := ParseCSV(strings.NewReader(strings.Join(CSVHeader, ",") + "\n"))

			Convey("Then no events are returned", func() {
				So(err, ShouldBeNil)
				So(empty, ShouldBeEmpty)
			})
		})
	})
}

func TestXML(t *testing.T) {
	Convey("Given a single event", t, func() {
		data, err := New(fixedColors()).XML(sampleEvents()[:1])
		So(err, ShouldBeNil)

		var doc xmlFile
		So(xml.Unmarshal(data, &doc), ShouldBeNil)

		Convey("Then the document carries the generator comment and sort info", func() {
			So(string(data), ShouldContainSubstring, "<!--Generated with LiveTagPRO format (https://livetag.pro)-->")
			So(doc.SortInfo.SortType, ShouldEqual, "sort order")
		})

		Convey("Then the instance spans twenty seconds either side", func() {
			So(doc.Instances, ShouldHaveLength, 1)
			inst := doc.Instances[0]
			So(inst.ID, ShouldEqual, 0)
			So(inst.Code, ShouldEqual, "Corner")
			So(inst.Start, ShouldEqual, "40")
			So(inst.End, ShouldEqual, "80")
			So(inst.Labels, ShouldResemble, []xmlLabel{{Group: "Event", Text: "Corner"}})
			So(strings.Count(string(data), "<label>"), ShouldEqual, 1)
		})

		Convey("Then one row is colored from the color source", func() {
			So(doc.Rows, ShouldHaveLength, 1)
			So(doc.Rows[0], ShouldResemble, xmlRow{SortOrder: 1, Code: "Corner", R: 1, G: 2, B: 3})
		})
	})

	Convey("Given events with outcomes", t, func() {
		data, err := New().XML(sampleEvents())
		So(err, ShouldBeNil)

		var doc xmlFile
		So(xml.Unmarshal(data, &doc), ShouldBeNil)
		So(doc.Instances, ShouldHaveLength, 3)

		Convey("Then outcomes become labels", func() {
			So(doc.Instances[1].Labels, ShouldResemble, []xmlLabel{
				{Group: "Event", Text: "Slow-attck"},
				{Group: "CrossOutcome", Text: "Completed"},
				{Group: "ShotOutcome", Text: "Goal"},
			})
			So(doc.Instances[1].Start, ShouldEqual, "730.5")
			So(doc.Instances[1].End, ShouldEqual, "770.5")
			So(doc.Instances[2].Labels, ShouldHaveLength, 2)
		})

		Convey("Then rows follow first-seen codes with valid colors", func() {
			So(doc.Rows, ShouldHaveLength, 3)
			codes := []string{doc.Rows[0].Code, doc.Rows[1].Code, doc.Rows[2].Code}
			So(codes, ShouldResemble, []string{"Corner", "Slow-attck", "Corner, short"})
			for i, row := range doc.Rows {
				So(row.SortOrder, ShouldEqual, i+1)
				for _, c := range []int{row.R, row.G, row.B} {
					So(c, ShouldBeBetweenOrEqual, 0, maxChannel)
				}
			}
		})
	})
}

func TestEmptyLedger(t *testing.T) {
	Convey("Given an empty ledger", t, func() {
		exp := New()

		Convey("Then every format rejects it", func() {
			_, err := exp.CSV(nil)
			So(errors.Is(err, ErrEmptyLedger), ShouldBeTrue)
			_, err = exp.XML([]model.Event{})
			So(errors.Is(err, ErrEmptyLedger), ShouldBeTrue)
			_, err = exp.ZIP("events", nil)
			So(errors.Is(err, ErrEmptyLedger), ShouldBeTrue)
		})
	})
}

func TestZIP(t *testing.T) {
	Convey("Given a ZIP export", t, func() {
		stamp := time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC)
		data, err := New(WithClock(func() time.Time { return stamp })).ZIP("derby", sampleEvents())
		So(err, ShouldBeNil)

		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		So(err, ShouldBeNil)

		Convey("Then it holds a CSV and an XML entry, both deflated", func() {
			So(zr.File, ShouldHaveLength, 2)
			So(zr.File[0].Name, ShouldEqual, "derby.csv")
			So(zr.File[1].Name, ShouldEqual, "derby_LiveTagProFormat.xml")
			for _, f := range zr.File {
				So(f.Method, ShouldEqual, zip.Deflate)
			}
		})

		Convey("Then the CSV entry parses back", func() {
			rc, err := zr.File[0].Open()
			So(err, ShouldBeNil)
			defer rc.Close()
			parsed, err := ParseCSV(rc)
			So(err, ShouldBeNil)
			So(parsed, ShouldHaveLength, 3)
		})

		Convey("Then the XML entry starts with the file element", func() {
			xr, err := zr.File[1].Open()
			So(err, ShouldBeNil)
			defer xr.Close()
			raw, err := io.ReadAll(xr)
			So(err, ShouldBeNil)
			So(string(raw), ShouldStartWith, "<file>")
		})
	})
}

func TestCleanName(t *testing.T) {
	Convey("Given download names", t, func() {
		cases := []struct{ name, fallback, want string }{
			{"", "events.csv", "events.csv"},
			{" match.csv ", "events.csv", "match.csv"},
			{"../../etc/passwd", "x", "passwd"},
			{`..\evil".csv`, "x", "evil.csv"},
			{"/", "x", "x"},
		}

		Convey("Then paths and quotes are stripped", func() {
			for _, tc := range cases {
				So(CleanName(tc.name, tc.fallback), ShouldEqual, tc.want)
			}
		})
	})
}
