package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/Dicklesworthstone/ribbon/pkg/flip"
	"github.com/Dicklesworthstone/ribbon/pkg/model"
)

// FPS is the animation frame rate
const FPS = 60

const tweenEpsilon = 0.05

// frameMsg advances animations by one frame
type frameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/FPS, func(time.Time) tea.Msg { return frameMsg{} })
}

// tween eases one value toward a target with a spring
type tween struct {
	spring   harmonica.Spring
	position float64
	velocity float64
}

func newTween(frequency, damping, start float64) tween {
	return tween{
		spring:   harmonica.NewSpring(harmonica.FPS(FPS), frequency, damping),
		position: start,
	}
}

// step moves one frame toward target and reports whether it is still moving
func (t *tween) step(target, epsilon float64) bool {
	t.position, t.velocity = t.spring.Update(t.position, t.velocity, target)
	if math.Abs(t.position-target) < epsilon && math.Abs(t.velocity) < epsilon {
		t.position, t.velocity = target, 0
		return false
	}
	return true
}

func (t *tween) jump(target float64) {
	t.position, t.velocity = target, 0
}

// animation is the renderer-side presentation state. It follows the gesture
// core's frame; the core never reads it back.
type animation struct {
	center  tween
	rng     tween
	scale   tween
	press   harmonica.Spring
	release harmonica.Spring
	flipper *flip.Animator
}

func newAnimation(f model.Frame, card *flip.TwoSided) animation {
	return animation{
		// critically damped, settles in roughly 0.4s
		center: newTween(12, 1, f.Center),
		rng:    newTween(12, 1, f.Range),
		scale:  newTween(14, 1, f.Scale),
		// pressing eases out slower than releasing
		press:   harmonica.NewSpring(harmonica.FPS(FPS), 8, 1),
		release: harmonica.NewSpring(harmonica.FPS(FPS), 14, 1),
		flipper: flip.NewAnimator(FPS, card),
	}
}

// step advances every animated value one frame toward f. It returns true
// while anything is still moving.
func (a *animation) step(f model.Frame, card *flip.TwoSided) bool {
	moving := false
	if f.SuppressAnimation {
		a.center.jump(f.Center)
		a.rng.jump(f.Range)
	} else {
		moving = a.center.step(f.Center, tweenEpsilon) || moving
		moving = a.rng.step(f.Range, tweenEpsilon) || moving
	}

	a.scale.spring = a.release
	if f.Scale < 1 {
		a.scale.spring = a.press
	}
	moving = a.scale.step(f.Scale, 1e-3) || moving

	if a.flipper.Step(card) {
		moving = true
	}
	return moving
}

// snap jumps every value to f
func (a *animation) snap(f model.Frame, card *flip.TwoSided) {
	a.center.jump(f.Center)
	a.rng.jump(f.Range)
	a.scale.jump(f.Scale)
	a.flipper.Jump(card)
}
