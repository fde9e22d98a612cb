package gesture

import "time"

// pendingTap is a single tap held back for the double-tap window
type pendingTap struct {
	x  float64
	at time.Time
}

// commitPending applies the buffered single tap, if any
func (d *Dispatcher) commitPending() {
	if d.pending == nil {
		return
	}
	x := d.pending.x
	d.pending = nil
	d.ribbon.Tap(x)
}

// holdingPending reports whether a second press is still deciding the fate of
// the buffered tap. Its release settles it either way.
func (d *Dispatcher) holdingPending() bool {
	return d.mode == modeBody && d.contact.second
}
