package flip

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 1e-3

// Animator drives TwoSided progress toward its target with a spring. Opening
// to the back face is bouncy; closing back to the front is critically damped.
type Animator struct {
	open     harmonica.Spring
	close    harmonica.Spring
	position float64
	velocity float64
}

// NewAnimator creates an animator stepping at the given frame rate
func NewAnimator(fps int, t *TwoSided) *Animator {
	dt := harmonica.FPS(fps)
	return &Animator{
		open:     harmonica.NewSpring(dt, 8.0, 0.45),
		close:    harmonica.NewSpring(dt, 15.0, 1.0),
		position: t.Progress(),
	}
}

// Step advances one frame and writes the new progress into t. It returns
// true while the card is still moving.
func (a *Animator) Step(t *TwoSided) bool {
	target := t.Target()
	spring := a.close
	if target == 1 {
		spring = a.open
	}

	a.position, a.velocity = spring.Update(a.position, a.velocity, target)
	if math.Abs(a.position-target) < settleEpsilon && math.Abs(a.velocity) < settleEpsilon {
		a.position, a.velocity = target, 0
	}
	t.SetProgress(a.position)
	return !(a.velocity == 0 && a.position == target)
}

// Jump moves straight to the target without animating
func (a *Animator) Jump(t *TwoSided) {
	a.position, a.velocity = t.Target(), 0
	t.SetProgress(a.position)
}
