// Package gesture classifies a raw pointer stream into taps, double taps,
// whole-selection drags, handle drags and the long-press door gesture, and
// applies each one to the ribbon and the flip card.
//
// The Dispatcher is a plain finite-state machine. It is not safe for
// concurrent use; feed it from one goroutine (the UI update loop).
package gesture

import (
	"math"
	"time"

	"github.com/Dicklesworthstone/ribbon/pkg/flip"
	"github.com/Dicklesworthstone/ribbon/pkg/model"
	"github.com/Dicklesworthstone/ribbon/pkg/ribbon"
)

// Settings are the timing and hit-testing constants of the dispatcher
type Settings struct {
	Width             float64
	Height            float64
	LongPress         time.Duration
	DoubleTapInterval time.Duration
	Slop              float64
	HandleWidth       float64
	PressScale        float64
}

// mode is what the current pointer contact was classified as at press time
type mode int

const (
	modeIdle mode = iota
	modeBody
	modeHandle
	modeBack
)

// contact is the transient record of one press-to-release sequence
type contact struct {
	start    model.PointerEvent
	moved    bool // left the slop radius
	tap      bool // still eligible to be a tap
	second   bool // began while a first tap was waiting for its partner
	pressed  bool // long press recognized
	dragging bool // whole-selection drag active
}

// Dispatcher routes pointer events to the gesture that owns them
type Dispatcher struct {
	settings Settings
	ribbon   *ribbon.Ribbon
	card     *flip.TwoSided
	onPress  func(model.PressState)

	mode    mode
	contact contact
	pending *pendingTap
	press   model.PressState
	scale   float64
}

// New creates a dispatcher driving r and card
func New(s Settings, r *ribbon.Ribbon, card *flip.TwoSided) *Dispatcher {
	return &Dispatcher{
		settings: s,
		ribbon:   r,
		card:     card,
		scale:    1,
	}
}

// OnPress registers the observer notified of door gesture transitions
func (d *Dispatcher) OnPress(fn func(model.PressState)) {
	d.onPress = fn
}

// Ribbon returns the ribbon being driven
func (d *Dispatcher) Ribbon() *ribbon.Ribbon {
	return d.ribbon
}

// Card returns the flip card being driven
func (d *Dispatcher) Card() *flip.TwoSided {
	return d.card
}

// Handle processes one pointer event. Timers that fell due before the event
// are resolved first, so the outcome never depends on how often Tick runs.
func (d *Dispatcher) Handle(ev model.PointerEvent) {
	d.advance(ev.Time)

	switch ev.Phase {
	case model.PhaseDown:
		d.down(ev)
	case model.PhaseMove:
		d.move(ev)
	case model.PhaseUp:
		d.up(ev)
	}
}

// Tick resolves timers (long press, double-tap window) due at now
func (d *Dispatcher) Tick(now time.Time) {
	d.advance(now)
}

// Deadline reports the next instant a Tick could change anything
func (d *Dispatcher) Deadline() (time.Time, bool) {
	var next time.Time
	ok := false
	consider := func(t time.Time) {
		if !ok || t.Before(next) {
			next, ok = t, true
		}
	}
	if d.longPressArmed() {
		consider(d.contact.start.Time.Add(d.settings.LongPress))
	}
	if d.pending != nil && !d.holdingPending() {
		consider(d.pending.at.Add(d.settings.DoubleTapInterval))
	}
	return next, ok
}

// Active reports whether a pointer is down
func (d *Dispatcher) Active() bool {
	return d.mode != modeIdle
}

// Frame snapshots everything a renderer reads
func (d *Dispatcher) Frame() model.Frame {
	s := d.ribbon.State()
	return model.Frame{
		Center:            s.Center,
		Range:             s.Range,
		Handle:            d.ribbon.Handle(),
		Side:              d.card.Selection(),
		Progress:          d.card.Progress(),
		SuppressAnimation: d.ribbon.SuppressAnimation(),
		Scale:             d.scale,
		Press:             d.press,
	}
}

// Reset abandons any gesture in flight and restores mount-time state
func (d *Dispatcher) Reset() {
	d.ribbon.Reset()
	d.card.Select(model.SideFront)
	d.mode = modeIdle
	d.contact = contact{}
	d.pending = nil
	d.press = model.PressIdle
	d.scale = 1
}

func (d *Dispatcher) down(ev model.PointerEvent) {
	if d.mode != modeIdle || !d.inBounds(ev) {
		return
	}
	if d.press == model.PressSuccess || d.press == model.PressFailure {
		d.press = model.PressIdle
	}
	d.contact = contact{start: ev, tap: true}

	if d.card.Selection() == model.SideBack {
		d.mode = modeBack
		return
	}

	// A press inside the double-tap window continues the tap sequence, so
	// handles are only grabbed when no first tap is waiting.
	if d.pending != nil {
		d.mode = modeBody
		d.contact.second = true
		return
	}

	if h := d.hitHandle(ev.X); h != model.HandleNone {
		d.mode = modeHandle
		d.contact.tap = false
		d.ribbon.BeginHandleDrag(h)
		return
	}
	d.mode = modeBody
}

func (d *Dispatcher) move(ev model.PointerEvent) {
	if d.mode == modeIdle {
		return
	}
	left := !d.contact.moved && d.distance(ev) > d.settings.Slop
	if left {
		d.contact.moved = true
		d.contact.tap = false
	}

	switch d.mode {
	case modeBody:
		if left {
			if d.contact.second {
				d.commitPending()
				d.contact.second = false
			}
			d.ribbon.BeginDrag(d.contact.start.X)
			d.contact.dragging = true
		}
		if d.contact.dragging {
			d.ribbon.Drag(ev.X)
		}
	case modeHandle:
		if d.contact.moved {
			d.ribbon.AdjustRange(ev.X)
		}
	}
}

func (d *Dispatcher) up(ev model.PointerEvent) {
	if d.mode == modeIdle {
		return
	}
	isTap := d.contact.tap && d.distance(ev) <= d.settings.Slop

	switch d.mode {
	case modeBody:
		if d.contact.dragging {
			d.ribbon.EndDrag()
		}
		switch {
		case d.contact.pressed:
			d.release(ev)
		case isTap && d.contact.second:
			d.pending = nil
			d.ribbon.DoubleTap(ev.X)
		case isTap:
			d.pending = &pendingTap{x: ev.X, at: ev.Time}
		case d.contact.second:
			d.commitPending()
		}
	case modeHandle:
		d.ribbon.EndHandleDrag(d.contact.moved)
	case modeBack:
		if isTap {
			d.card.Toggle()
		}
	}

	d.mode = modeIdle
	d.contact = contact{}
}

// advance resolves everything that became due by now
func (d *Dispatcher) advance(now time.Time) {
	if d.longPressArmed() && !now.Before(d.contact.start.Time.Add(d.settings.LongPress)) {
		d.recognizeLongPress()
	}
	if d.pending != nil && !d.holdingPending() &&
		!now.Before(d.pending.at.Add(d.settings.DoubleTapInterval)) {
		d.commitPending()
	}
}

func (d *Dispatcher) inBounds(ev model.PointerEvent) bool {
	return ev.X >= 0 && ev.X <= d.settings.Width && ev.Y >= 0 && ev.Y <= d.settings.Height
}

func (d *Dispatcher) distance(ev model.PointerEvent) float64 {
	return math.Hypot(ev.X-d.contact.start.X, ev.Y-d.contact.start.Y)
}

func (d *Dispatcher) hitHandle(x float64) model.Handle {
	g := d.ribbon.Geometry()
	if g.Contracted() {
		return model.HandleNone
	}
	for _, h := range []model.Handle{model.HandleLeading, model.HandleTrailing} {
		lo, hi := g.HandleZone(h, d.settings.HandleWidth)
		if x >= lo && x <= hi {
			return h
		}
	}
	return model.HandleNone
}
