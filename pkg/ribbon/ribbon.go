package ribbon

import (
	"math"

	"github.com/Dicklesworthstone/ribbon/pkg/model"
)

// Settings are the fixed construction constants of a ribbon
type Settings struct {
	Width                float64
	PracticalZero        float64
	ExpandFraction       float64
	InitialPreviousRange float64
	Anchors              []model.Anchor
}

// State is the authoritative center/range pair
type State struct {
	Center float64
	Range  float64
}

// Ribbon owns the selection state. It is only mutated through gesture
// callbacks and keeps 0 <= Range <= Width and
// Range/2 <= Center <= Width-Range/2 after every call.
type Ribbon struct {
	settings      Settings
	state         State
	previousRange float64
	handle        model.Handle
	suppress      bool
	session       *DragSession
}

// New creates a contracted ribbon centered on the track
func New(s Settings) *Ribbon {
	anchors := make([]model.Anchor, len(s.Anchors))
	copy(anchors, s.Anchors)
	s.Anchors = anchors

	return &Ribbon{
		settings:      s,
		state:         State{Center: s.Width / 2},
		previousRange: s.InitialPreviousRange,
	}
}

// Settings returns the construction constants
func (r *Ribbon) Settings() Settings {
	return r.settings
}

// State returns the current center/range pair
func (r *Ribbon) State() State {
	return r.state
}

// Geometry returns the current geometry
func (r *Ribbon) Geometry() Geometry {
	return Geometry{Width: r.settings.Width, Center: r.state.Center, Range: r.state.Range}
}

// PreviousRange is the range restored when a contracted ribbon is expanded
func (r *Ribbon) PreviousRange() float64 {
	return r.previousRange
}

// Handle is the handle currently being dragged, if any
func (r *Ribbon) Handle() model.Handle {
	return r.handle
}

// SuppressAnimation reports whether the last drag step snapped to an anchor,
// in which case the renderer should jump instead of easing.
func (r *Ribbon) SuppressAnimation() bool {
	return r.suppress
}

// Dragging reports whether a whole-selection drag is in progress
func (r *Ribbon) Dragging() bool {
	return r.session != nil
}

// Reset returns to the mount-time state
func (r *Ribbon) Reset() {
	*r = *New(r.settings)
}

// Tap moves the center to x
func (r *Ribbon) Tap(x float64) {
	r.state.Center = r.Geometry().Clamp(x)
	r.normalize()
}

// DoubleTap toggles contraction, then centers on x using the new range
func (r *Ribbon) DoubleTap(x float64) {
	if r.Geometry().Contracted() {
		if r.previousRange == 0 {
			r.state.Range = r.settings.ExpandFraction * r.settings.Width
			r.previousRange = r.state.Range
		} else {
			r.state.Range = r.previousRange
		}
	} else {
		r.state.Range = 0
	}
	r.state.Range = math.Min(r.state.Range, r.settings.Width)
	r.state.Center = r.Geometry().Clamp(x)
	r.normalize()
}

// BeginDrag opens a whole-selection drag that started at startX
func (r *Ribbon) BeginDrag(startX float64) {
	r.session = NewDragSession(startX, r.Geometry())
}

// Drag runs one pointer sample through the drag pipeline. The anchor snap
// always runs after the follow step so its override wins.
func (r *Ribbon) Drag(x float64) {
	if r.session == nil {
		return
	}
	next := Run(Frame{
		Width:    r.settings.Width,
		Center:   r.state.Center,
		Range:    r.state.Range,
		PointerX: x,
		Suppress: r.suppress,
	},
		Follow(r.session.previousX, r.session.beganInside),
		SnapToAnchors(r.settings.Anchors),
		ClampCenter,
	)
	r.session.previousX = x
	r.state.Center = next.Center
	r.suppress = next.Suppress
	r.normalize()
}

// EndDrag closes the drag session
func (r *Ribbon) EndDrag() {
	r.session = nil
	r.suppress = false
}

// BeginHandleDrag records which handle started a resize
func (r *Ribbon) BeginHandleDrag(h model.Handle) {
	r.handle = h
}

// AdjustRange resizes the selection from the grabbed handle toward x.
// Moving an edge changes the range while the center stays put; when an edge
// would leave the track the selection is pinned to that side instead.
func (r *Ribbon) AdjustRange(x float64) {
	defer r.normalize()

	g := r.Geometry()
	width := r.settings.Width
	offset := g.Offset()
	rng := r.state.Range

	switch r.handle {
	case model.HandleLeading:
		difference := x - offset
		if offset+difference > 0 {
			if offset+rng-difference >= width {
				r.state.Center = g.MaxCenter()
				r.state.Range -= difference
				return
			}
			r.state.Range -= difference
		} else {
			r.state.Center = g.MinCenter()
		}
	case model.HandleTrailing:
		difference := x - (offset + rng)
		if offset+rng+difference < width {
			if offset-difference <= 0 {
				r.state.Center = g.MinCenter()
				r.state.Range += difference
				return
			}
			r.state.Range += difference
		} else {
			r.state.Center = g.MaxCenter()
		}
	default:
		return
	}

	if r.state.Range <= r.settings.PracticalZero {
		r.state.Range = 0
	}
}

// EndHandleDrag finishes a resize. The remembered range never drops below
// practical zero so a later expand always has something to restore.
func (r *Ribbon) EndHandleDrag(dragged bool) {
	if dragged {
		r.previousRange = math.Max(r.state.Range, r.settings.PracticalZero)
	}
	r.handle = model.HandleNone
}

// normalize restores the track invariants
func (r *Ribbon) normalize() {
	r.state.Range = math.Min(math.Max(r.state.Range, 0), r.settings.Width)
	r.state.Center = r.Geometry().Clamp(r.state.Center)
}
