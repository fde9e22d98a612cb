package ribbon

import "github.com/Dicklesworthstone/ribbon/pkg/model"

// Frame is the state threaded through the drag pipeline for a single pointer
// event. Steps receive a Frame and return the next one; they never touch the
// Ribbon directly.
type Frame struct {
	Width    float64
	Center   float64
	Range    float64
	PointerX float64
	Suppress bool
}

func (f Frame) geometry() Geometry {
	return Geometry{Width: f.Width, Center: f.Center, Range: f.Range}
}

// Step is one stage of the drag pipeline
type Step func(Frame) Frame

// Run applies steps in order
func Run(f Frame, steps ...Step) Frame {
	for _, step := range steps {
		f = step(f)
	}
	return f
}

// DragSession is the transient record of one whole-selection drag. It is
// created when the drag activates and dropped when the pointer lifts.
type DragSession struct {
	startX      float64
	previousX   float64
	beganInside bool
}

// NewDragSession starts a session for a drag that began at startX against
// the given geometry.
func NewDragSession(startX float64, g Geometry) *DragSession {
	return &DragSession{
		startX:      startX,
		previousX:   startX,
		beganInside: g.Inside(startX),
	}
}

// BeganInside reports whether the drag started inside the selection
func (s *DragSession) BeganInside() bool {
	return s.beganInside
}

// PreviousX is the pointer position seen on the previous step
func (s *DragSession) PreviousX() float64 {
	return s.previousX
}

// Follow moves the center with the pointer. A drag that began inside the
// selection moves it by the pointer delta; one that began outside puts the
// center under the pointer.
func Follow(previousX float64, beganInside bool) Step {
	return func(f Frame) Frame {
		if beganInside {
			f.Center += f.PointerX - previousX
		} else {
			f.Center = f.PointerX
		}
		return f
	}
}

// SnapToAnchors overrides the center when the pointer is inside an anchor's
// well. For an expanded selection the well is shifted by the distance between
// pointer and center, so it tracks the dragged selection rather than the
// absolute pointer. Suppress is set exactly when some well was hit.
func SnapToAnchors(anchors []model.Anchor) Step {
	return func(f Frame) Frame {
		snapped := false
		for _, a := range anchors {
			pos := a.Fraction * f.Width
			well := a.Well / 2 * f.Width
			lo, hi := pos-well, pos+well
			if f.Range != 0 {
				difference := f.PointerX - f.Center
				lo += difference
				hi += difference
			}
			if f.PointerX >= lo && f.PointerX <= hi {
				f.Center = pos
				snapped = true
				break
			}
		}
		f.Suppress = snapped
		return f
	}
}

// ClampCenter keeps the selection on the track
func ClampCenter(f Frame) Frame {
	f.Center = f.geometry().Clamp(f.Center)
	return f
}
