// Package pitch describes the zone grid laid over the field.
//
// Zones are numbered row-major: zone = row*Columns + col, with row 0 at the
// top edge and column 0 at the left goal line.
package pitch

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned for grids without cells, with too many cells, or
// with non-positive dimensions.
var ErrInvalidGrid = errors.New("invalid pitch grid")

// Default grid values.
const (
	DefaultRows    = 3
	DefaultColumns = 3
	DefaultLength  = 120.0
	DefaultWidth   = 80.0

	// MaxCells bounds Rows*Columns.
	MaxCells = 10000
)

// Grid is a Rows x Columns partition of a Length x Width field.
type Grid struct {
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Length  float64 `json:"field_length"`
	Width   float64 `json:"field_width"`
}

// Point is a position on the field in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultGrid returns the 3x3 grid on a 120x80 field.
func DefaultGrid() Grid {
	return Grid{Rows: DefaultRows, Columns: DefaultColumns, Length: DefaultLength, Width: DefaultWidth}
}

// Validate checks the grid has between 1 and MaxCells cells and positive,
// finite dimensions.
func (g Grid) Validate() error {
	if g.Rows < 1 || g.Columns < 1 {
		return fmt.Errorf("%w: rows and columns must be at least 1", ErrInvalidGrid)
	}
	// Divide rather than multiply so huge axes cannot overflow.
	if g.Rows > MaxCells/g.Columns {
		return fmt.Errorf("%w: rows*columns must not exceed %d", ErrInvalidGrid, MaxCells)
	}
	if !(g.Length > 0 && g.Width > 0) || math.IsInf(g.Length, 0) || math.IsInf(g.Width, 0) {
		return fmt.Errorf("%w: field dimensions must be positive", ErrInvalidGrid)
	}
	return nil
}

// Zones returns the number of cells.
func (g Grid) Zones() int {
	return g.Rows * g.Columns
}

// Zone returns the zone number of a cell.
func (g Grid) Zone(row, col int) int {
	return row*g.Columns + col
}

// Cell returns the row and column of zone, and false if it lies outside the grid.
func (g Grid) Cell(zone int) (row, col int, ok bool) {
	if zone < 0 || zone >= g.Zones() {
		return 0, 0, false
	}
	return zone / g.Columns, zone % g.Columns, true
}

// Centers maps every zone to the center of its cell.
func (g Grid) Centers() map[int]Point {
	cellX := g.Length / float64(g.Columns)
	cellY := g.Width / float64(g.Rows)
	out := make(map[int]Point, g.Zones())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			out[g.Zone(row, col)] = Point{
				X: (float64(col) + 0.5) * cellX,
				Y: (float64(row) + 0.5) * cellY,
			}
		}
	}
	return out
}

// Heatmap lays zone counts out as a Rows x Columns matrix. Zones outside
// the grid are ignored.
func (g Grid) Heatmap(hot map[int]int) [][]int {
	z := make([][]int, g.Rows)
	for row := range z {
		z[row] = make([]int, g.Columns)
	}
	for zone, count := range hot {
		if row, col, ok := g.Cell(zone); ok {
			z[row][col] = count
		}
	}
	return z
}
