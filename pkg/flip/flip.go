// Package flip implements the two-sided card: a discrete front/back selection
// plus the continuous progress value a renderer animates between them.
//
// Only the selection drives decisions. Progress is written by the animator
// and read by the renderer; gesture code must never branch on it.
package flip

import (
	"math"

	"github.com/Dicklesworthstone/ribbon/pkg/model"
)

// VisibilityThreshold is the progress at which the back face takes over
const VisibilityThreshold = 0.5

// TwoSided is the flip state machine
type TwoSided struct {
	selection model.Side
	progress  float64
}

// New returns a card showing the given face at rest
func New(side model.Side) *TwoSided {
	t := &TwoSided{selection: side}
	t.progress = t.Target()
	return t
}

// Selection is the face the card is heading to
func (t *TwoSided) Selection() model.Side {
	return t.selection
}

// Select changes the target face. A request made while an animation is in
// flight simply replaces the target; nothing is queued.
func (t *TwoSided) Select(side model.Side) {
	t.selection = side
}

// Toggle flips the target face
func (t *TwoSided) Toggle() {
	t.Select(t.selection.Toggle())
}

// Target is the progress value the selection asks for
func (t *TwoSided) Target() float64 {
	if t.selection == model.SideBack {
		return 1
	}
	return 0
}

// Progress is the current animated progress in [0,1]
func (t *TwoSided) Progress() float64 {
	return t.progress
}

// SetProgress stores an animated progress value, clamped to [0,1]
func (t *TwoSided) SetProgress(p float64) {
	t.progress = math.Min(math.Max(p, 0), 1)
}

// Settled reports whether progress has reached the target
func (t *TwoSided) Settled() bool {
	return t.progress == t.Target()
}

// Visible reports whether a face is the one marked visible. Exactly one face
// is visible at any progress.
func (t *TwoSided) Visible(side model.Side) bool {
	if side == model.SideBack {
		return t.progress > VisibilityThreshold
	}
	return t.progress <= VisibilityThreshold
}
