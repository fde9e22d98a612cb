package ui

import "math"

// Screen layout, in terminal cells.
const (
	// MarginX is the blank space left and right of the widget
	MarginX = 2

	// HeaderRows is everything above the card: title, spacer, indicator row
	HeaderRows = 3

	// CardRows is the height of the card itself
	CardRows = 3

	// MinTrackCols is the narrowest track still worth drawing
	MinTrackCols = 10
)

// Layout maps between terminal cells and widget-local units
type Layout struct {
	Left   int
	Top    int
	Cols   int
	Rows   int
	Width  float64
	Height float64
}

// NewLayout places a track of the given unit size in a terminal of termW columns
func NewLayout(termW int, width, height float64) Layout {
	cols := termW - 2*MarginX
	if cols < MinTrackCols {
		cols = MinTrackCols
	}
	return Layout{
		Left:   MarginX,
		Top:    HeaderRows,
		Cols:   cols,
		Rows:   CardRows,
		Width:  width,
		Height: height,
	}
}

// ToUnits converts a cell to widget-local units, sampling the cell center.
// Cells outside the card map outside [0,Width] x [0,Height].
func (l Layout) ToUnits(col, row int) (x, y float64) {
	x = (float64(col-l.Left) + 0.5) * l.Width / float64(l.Cols)
	y = (float64(row-l.Top) + 0.5) * l.Height / float64(l.Rows)
	return x, y
}

// ColumnOf returns the track column (0-based, clamped) containing x
func (l Layout) ColumnOf(x float64, cols int) int {
	if cols <= 0 || l.Width <= 0 {
		return 0
	}
	c := int(math.Floor(x / l.Width * float64(cols)))
	if c < 0 {
		return 0
	}
	if c >= cols {
		return cols - 1
	}
	return c
}

// UnitsAt returns the unit position of the center of column c out of cols
func (l Layout) UnitsAt(c, cols int) float64 {
	return (float64(c) + 0.5) * l.Width / float64(cols)
}
