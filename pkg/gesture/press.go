package gesture

import "github.com/Dicklesworthstone/ribbon/pkg/model"

// longPressArmed reports whether the current contact can still become a long
// press: it is on the front face, has not moved, and has not fired yet.
func (d *Dispatcher) longPressArmed() bool {
	return d.mode == modeBody && !d.contact.moved && !d.contact.pressed
}

// recognizeLongPress moves the door gesture from idle to pressed. The tap
// sequence loses: a waiting first tap is committed on its own.
func (d *Dispatcher) recognizeLongPress() {
	d.contact.pressed = true
	d.contact.tap = false
	if d.contact.second {
		d.commitPending()
		d.contact.second = false
	}
	d.scale = d.settings.PressScale
	d.notify(model.PressPressed)
}

// release finishes the door gesture. Letting go inside the widget flips the
// card; anywhere else only restores the scale.
func (d *Dispatcher) release(ev model.PointerEvent) {
	d.scale = 1
	if d.inBounds(ev) {
		d.card.Toggle()
		d.notify(model.PressSuccess)
		return
	}
	d.notify(model.PressFailure)
}

func (d *Dispatcher) notify(state model.PressState) {
	d.press = state
	if d.onPress != nil {
		d.onPress(state)
	}
}
