package model

import (
	"fmt"
	"time"
)

// Handle identifies which edge of the selection a resize gesture grabbed
type Handle int

const (
	HandleNone Handle = iota
	HandleLeading
	HandleTrailing
)

// String returns the handle name
func (h Handle) String() string {
	switch h {
	case HandleLeading:
		return "leading"
	case HandleTrailing:
		return "trailing"
	default:
		return "none"
	}
}

// Side is one face of the two-sided card
type Side int

const (
	SideFront Side = iota
	SideBack
)

// Toggle returns the opposite face
func (s Side) Toggle() Side {
	if s == SideFront {
		return SideBack
	}
	return SideFront
}

// String returns the face name
func (s Side) String() string {
	if s == SideBack {
		return "back"
	}
	return "front"
}

// PressState tracks the long-press-then-release door gesture.
// Observers only ever see Pressed, Success or Failure.
type PressState int

const (
	PressIdle PressState = iota
	PressPressed
	PressSuccess
	PressFailure
)

// String returns the state name
func (p PressState) String() string {
	switch p {
	case PressPressed:
		return "pressed"
	case PressSuccess:
		return "success"
	case PressFailure:
		return "failure"
	default:
		return "idle"
	}
}

// Phase is the pointer contact phase
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in widget-local coordinates
type PointerEvent struct {
	Phase Phase
	X     float64
	Y     float64
	Time  time.Time
}

// Anchor is a preferred center position with a snap well around it.
// Fraction and Well are both fractions of the track width; Well is the
// full width of the well, centered on Fraction.
type Anchor struct {
	Name     string  `yaml:"name" json:"name"`
	Fraction float64 `yaml:"fraction" json:"fraction"`
	Well     float64 `yaml:"well" json:"well"`
}

// DefaultAnchors is a single anchor at the track midpoint
func DefaultAnchors() []Anchor {
	return []Anchor{{Name: "center", Fraction: 0.5, Well: 0.02}}
}

// Frame is everything a renderer needs to draw the widget for one frame.
// Renderers read it; they never write back into the gesture core.
type Frame struct {
	Center            float64
	Range             float64
	Handle            Handle
	Side              Side
	Progress          float64
	SuppressAnimation bool
	Scale             float64
	Press             PressState
}

// Contracted reports whether the selection is collapsed to a point
func (f Frame) Contracted() bool {
	return f.Range == 0
}
