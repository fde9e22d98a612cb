package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/ribbon/pkg/flip"
	"github.com/Dicklesworthstone/ribbon/pkg/model"
	"github.com/Dicklesworthstone/ribbon/pkg/ribbon"
)

// DoorCaption is shown on the back of the card
const DoorCaption = "💛 THE DOOR'S OPEN! 💛"

const (
	glyphSelected   = "█"
	glyphTrack      = "▒"
	glyphHandle     = "┃"
	glyphIndicator  = "▼"
	glyphHinge      = "─"
	handleThreshold = 0.5
)

// scene is everything one frame of drawing needs
type scene struct {
	layout        Layout
	theme         Theme
	center        float64 // animated
	rng           float64 // animated
	scale         float64 // animated
	progress      float64
	handle        model.Handle
	practicalZero float64
	handleWidth   float64
}

// geometry is the animated geometry being drawn
func (s scene) geometry() ribbon.Geometry {
	return ribbon.Geometry{Width: s.layout.Width, Center: s.center, Range: s.rng}
}

// scaledCols is the track width after the press scale-down
func (s scene) scaledCols() int {
	cols := int(math.Round(float64(s.layout.Cols) * s.scale))
	if cols < 1 {
		cols = 1
	}
	return cols
}

// visibleRows is how many card rows remain during the flip. The card tips
// over its bottom edge and is edge-on at the halfway point.
func (s scene) visibleRows() int {
	rows := int(math.Round(float64(s.layout.Rows) * math.Abs(math.Cos(s.progress*math.Pi))))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// render draws indicator row, card rows and hinge row, padded to the layout
func (s scene) render() string {
	cols := s.scaledCols()
	pad := strings.Repeat(" ", s.layout.Left+(s.layout.Cols-cols)/2)

	backVisible := s.progress > flip.VisibilityThreshold

	var indicator string
	var face []string
	if backVisible {
		indicator = s.backIndicatorRow(cols)
		face = s.backRows(cols)
	} else {
		indicator = s.frontIndicatorRow(cols)
		face = s.frontRows(cols)
	}

	// rows the card no longer covers show the inside of the door
	visible := s.visibleRows()
	inside := RenderSubtleDivider(cols, s.theme)

	var b strings.Builder
	b.WriteString(pad + indicator + "\n")
	for i := 0; i < s.layout.Rows; i++ {
		if i < s.layout.Rows-visible {
			b.WriteString(pad + inside + "\n")
			continue
		}
		b.WriteString(pad + face[i] + "\n")
	}
	b.WriteString(pad + s.hingeRow(cols))
	return b.String()
}

// frontIndicatorRow places the triangle over the center and the handles at
// either edge of the selection
func (s scene) frontIndicatorRow(cols int) string {
	cells := blankCells(cols)
	g := s.geometry()
	ink := s.theme.Renderer.NewStyle().Foreground(ColorText)

	if g.HandleOpacity(s.handle != model.HandleNone, s.practicalZero) >= handleThreshold {
		lead := s.layout.ColumnOf(g.Offset()-s.handleWidth/2, cols)
		trail := s.layout.ColumnOf(g.TrailingEdge()+s.handleWidth/2, cols)
		cells[lead] = s.handleStyle(model.HandleLeading).Render(glyphHandle)
		cells[trail] = s.handleStyle(model.HandleTrailing).Render(glyphHandle)
	}
	cells[s.layout.ColumnOf(s.center, cols)] = ink.Render(glyphIndicator)
	return strings.Join(cells, "")
}

func (s scene) handleStyle(h model.Handle) lipgloss.Style {
	if s.handle == h {
		return s.theme.Renderer.NewStyle().Foreground(s.theme.Primary).Bold(true)
	}
	return s.theme.Renderer.NewStyle().Foreground(ColorText)
}

// frontRows draws the rainbow track with the selection at full strength
func (s scene) frontRows(cols int) []string {
	g := s.geometry()
	centerCol := s.layout.ColumnOf(s.center, cols)
	halfMark := s.practicalZero / 2

	var row strings.Builder
	for c := 0; c < cols; c++ {
		x := s.layout.UnitsAt(c, cols)
		color := GradientAt(float64(c) / math.Max(float64(cols-1), 1))

		selected := x >= g.Offset() && x <= g.TrailingEdge()
		if g.Contracted() {
			// a contracted selection is still drawn practical-zero wide
			selected = c == centerCol || math.Abs(x-s.center) <= halfMark
		}

		glyph := glyphTrack
		if selected {
			glyph = glyphSelected
		} else {
			color = Faded(color, baseOpacity)
		}
		row.WriteString(s.theme.Renderer.NewStyle().
			Foreground(lipgloss.Color(color.Hex())).
			Render(glyph))
	}

	line := row.String()
	rows := make([]string, s.layout.Rows)
	for i := range rows {
		rows[i] = line
	}
	return rows
}

// backIndicatorRow draws the mirrored triangle and gray handles that show
// through from behind the door
func (s scene) backIndicatorRow(cols int) string {
	cells := blankCells(cols)
	g := s.geometry()
	gray := s.theme.Renderer.NewStyle().Foreground(ColorDoorHandle)

	if !g.Contracted() {
		left, right := g.MirroredHandles(s.handleWidth)
		cells[s.layout.ColumnOf(left, cols)] = gray.Render(glyphHandle)
		cells[s.layout.ColumnOf(right, cols)] = gray.Render(glyphHandle)
	}
	cells[s.layout.ColumnOf(s.layout.Width-s.center, cols)] = gray.Render(glyphIndicator)
	return strings.Join(cells, "")
}

// backRows draws the black door with its caption on the middle row
func (s scene) backRows(cols int) []string {
	door := s.theme.Renderer.NewStyle().Background(ColorDoor)
	blank := door.Render(strings.Repeat(" ", cols))

	rows := make([]string, s.layout.Rows)
	for i := range rows {
		rows[i] = blank
	}
	rows[s.layout.Rows/2] = door.Foreground(ColorDoorText).Bold(true).Render(centerText(DoorCaption, cols))
	return rows
}

// hingeRow draws three hinge marks under the card
func (s scene) hingeRow(cols int) string {
	cells := blankCells(cols)
	mark := s.theme.Renderer.NewStyle().Foreground(s.theme.Muted)
	for _, f := range []float64{1.0 / 6, 3.0 / 6, 5.0 / 6} {
		c := int(f * float64(cols))
		if c >= 0 && c < cols {
			cells[c] = mark.Render(glyphHinge)
		}
	}
	return strings.Join(cells, "")
}

func blankCells(n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = " "
	}
	return cells
}

// centerText pads or truncates s to exactly width terminal cells
func centerText(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "")
		return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
