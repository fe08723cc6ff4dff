package pitch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/matchtag/internal/domain/pitch"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGrid(t *testing.T) {
	Convey("Given the default grid", t, func() {
		g := pitch.DefaultGrid()

		Convey("Then it is valid with nine zones", func() {
			So(g.Validate(), ShouldBeNil)
			So(g.Zones(), ShouldEqual, 9)
		})

		Convey("Then zones are numbered row-major", func() {
			So(g.Zone(0, 0), ShouldEqual, 0)
			So(g.Zone(1, 2), ShouldEqual, 5)
			row, col, ok := g.Cell(7)
			So(ok, ShouldBeTrue)
			So(row, ShouldEqual, 2)
			So(col, ShouldEqual, 1)
			_, _, ok = g.Cell(9)
			So(ok, ShouldBeFalse)
		})

		Convey("Then centers sit in the middle of each cell", func() {
			centers := g.Centers()
			So(centers, ShouldHaveLength, 9)
			So(centers[0], ShouldResemble, pitch.Point{X: 20, Y: 40.0 / 3})
			So(centers[4], ShouldResemble, pitch.Point{X: 60, Y: 40})
		})

		Convey("Then the heatmap places counts and drops stray zones", func() {
			z := g.Heatmap(map[int]int{0: 2, 5: 1, 42: 9})
			So(z, ShouldResemble, [][]int{{2, 0, 0}, {0, 0, 1}, {0, 0, 0}})
		})
	})

	Convey("Given invalid grids", t, func() {
		for _, g := range []pitch.Grid{
			{Rows: 0, Columns: 3, Length: 120, Width: 80},
			{Rows: 3, Columns: 0, Length: 120, Width: 80},
			{Rows: 3, Columns: 3, Length: 0, Width: 80},
			{Rows: 3, Columns: 3, Length: 120, Width: -1},
			{Rows: 3, Columns: 3, Length: math.NaN(), Width: 80},
			{Rows: 3, Columns: 3, Length: 120, Width: math.Inf(1)},
			{Rows: 101, Columns: 100, Length: 120, Width: 80},
			{Rows: 1 << 20, Columns: 1 << 20, Length: 120, Width: 80},
			{Rows: math.MaxInt, Columns: math.MaxInt, Length: 120, Width: 80},
			{Rows: math.MaxInt, Columns: 2, Length: 120, Width: 80},
		} {
			So(errors.Is(g.Validate(), pitch.ErrInvalidGrid), ShouldBeTrue)
		}
	})

	Convey("Given grids at the cell limit", t, func() {
		for _, g := range []pitch.Grid{
			{Rows: 100, Columns: 100, Length: 120, Width: 80},
			{Rows: 1, Columns: pitch.MaxCells, Length: 120, Width: 80},
			{Rows: pitch.MaxCells, Columns: 1, Length: 120, Width: 80},
		} {
			So(g.Validate(), ShouldBeNil)
			So(g.Zones(), ShouldBeLessThanOrEqualTo, pitch.MaxCells)
		}
	})
}
