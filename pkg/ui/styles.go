package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired base with the ribbon rainbow on top
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgDark      = lipgloss.Color("#1E1F29")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Door colors
	ColorDoor       = lipgloss.Color("#000000")
	ColorDoorHandle = lipgloss.Color("#808080")
	ColorDoorText   = lipgloss.Color("#F1FA8C")
)

// RibbonStops are the gradient stops of the track, leading to trailing
var RibbonStops = []string{
	"#FF3B30", // red
	"#FF9500", // orange
	"#FFCC00", // yellow
	"#34C759", // green
	"#30B0C7", // teal
	"#007AFF", // blue
	"#5856D6", // indigo
	"#AF52DE", // purple
}

// baseOpacity is how strongly the unselected track shows through
const baseOpacity = 0.4

// Theme bundles the renderer and the colors a view draws with
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Subtext   lipgloss.Color
	Border    lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
}

// DefaultTheme returns the standard theme bound to r
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer:  r,
		Primary:   ColorPrimary,
		Secondary: ColorSuccess,
		Subtext:   ColorSubtext,
		Border:    ColorBgHighlight,
		Muted:     ColorMuted,
		Warning:   ColorWarning,
		Danger:    ColorDanger,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// GRADIENT - Rainbow sampling for the track
// ══════════════════════════════════════════════════════════════════════════════

var ribbonColors = parseStops(RibbonStops)

func parseStops(stops []string) []colorful.Color {
	out := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// GradientAt samples the track gradient at t in [0,1]
func GradientAt(t float64) colorful.Color {
	if len(ribbonColors) == 0 {
		return colorful.Color{}
	}
	if t <= 0 || len(ribbonColors) == 1 {
		return ribbonColors[0]
	}
	if t >= 1 {
		return ribbonColors[len(ribbonColors)-1]
	}
	pos := t * float64(len(ribbonColors)-1)
	i := int(pos)
	return ribbonColors[i].BlendHcl(ribbonColors[i+1], pos-float64(i)).Clamped()
}

// Faded mixes c into the background, as if drawn at the given opacity
func Faded(c colorful.Color, opacity float64) colorful.Color {
	bg, _ := colorful.Hex(string(ColorBg))
	return bg.BlendRgb(c, opacity).Clamped()
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(ColorMuted).
		Render(strings.Repeat("·", width))
}
