// Package ribbon holds the authoritative center/range state of the ribbon
// slider and every algorithm that mutates it: tapping, dragging the whole
// selection, snapping to anchors and resizing from either handle.
package ribbon

import (
	"math"

	"github.com/Dicklesworthstone/ribbon/pkg/model"
)

// Geometry converts a center/range pair into boundary values on a track of
// fixed width. It is a value type; every method is pure.
type Geometry struct {
	Width  float64
	Center float64
	Range  float64
}

// HalfRange is half of the selection width
func (g Geometry) HalfRange() float64 {
	return g.Range / 2
}

// Offset is the leading edge of the selection
func (g Geometry) Offset() float64 {
	return g.Center - g.HalfRange()
}

// TrailingEdge is the trailing edge of the selection
func (g Geometry) TrailingEdge() float64 {
	return g.Offset() + g.Range
}

// MinCenter is the smallest center that keeps the whole selection on the track
func (g Geometry) MinCenter() float64 {
	return g.HalfRange()
}

// MaxCenter is the largest center that keeps the whole selection on the track
func (g Geometry) MaxCenter() float64 {
	return g.Width - g.HalfRange()
}

// Clamp constrains a proposed center to [MinCenter, MaxCenter]
func (g Geometry) Clamp(x float64) float64 {
	return math.Min(math.Max(g.MinCenter(), x), g.MaxCenter())
}

// Contracted reports whether the selection is collapsed to a point
func (g Geometry) Contracted() bool {
	return g.Range == 0
}

// Inside reports whether x lies strictly between the selection edges.
// A contracted selection contains nothing.
func (g Geometry) Inside(x float64) bool {
	return x > g.Center-g.HalfRange() && x < g.Center+g.HalfRange()
}

// HandleZone returns the horizontal extent of a handle's hit area.
// Handles sit just outside the selection edges.
func (g Geometry) HandleZone(h model.Handle, handleWidth float64) (lo, hi float64) {
	switch h {
	case model.HandleLeading:
		return g.Offset() - handleWidth, g.Offset()
	case model.HandleTrailing:
		return g.TrailingEdge(), g.TrailingEdge() + handleWidth
	default:
		return 0, 0
	}
}

// HandleOpacity is how opaque the handles are drawn. A grabbed handle never
// fully disappears even when the selection shrinks to nothing.
func (g Geometry) HandleOpacity(selected bool, practicalZero float64) float64 {
	floor := 0.0
	if selected && g.Width > 0 {
		floor = practicalZero / g.Width
	}
	return math.Min(math.Max(floor, g.Range*20), 1)
}

// MirroredHandles returns where the handles appear on the back face, which is
// the front face flipped horizontally. A handle pinned to a track edge is
// drawn at the opposite track edge.
func (g Geometry) MirroredHandles(handleWidth float64) (left, right float64) {
	if g.Offset() == 0 {
		left = g.Width
	} else {
		left = g.Width - g.Offset() + handleWidth/2
	}
	if g.Offset() == g.Width-g.Range {
		right = 0
	} else {
		right = g.Width - g.TrailingEdge() - handleWidth/2
	}
	return left, right
}
