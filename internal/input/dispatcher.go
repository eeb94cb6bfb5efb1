package input

import "time"

// Dispatcher derives rising edges from raw line levels and maintains the
// two activity clocks used for idle timeouts: the last input of any kind
// and the last input relevant to a running game. Levels are never exposed
// downstream; edges are the only currency.
type Dispatcher struct {
	prev      [NumLines]bool
	lastInput time.Time
	lastGame  time.Time
}

// NewDispatcher creates a dispatcher with both activity clocks set to now
// so a freshly booted device does not immediately time out.
func NewDispatcher(now time.Time) *Dispatcher {
	return &Dispatcher{lastInput: now, lastGame: now}
}

// Poll computes this tick's rising edges (active now and not active on the
// previous tick, independently per line) and refreshes both activity
// clocks when any line is asserted.
func (d *Dispatcher) Poll(now time.Time, lv Levels) Edges {
	var e Edges
	active := false
	for l := Line(0); l < NumLines; l++ {
		if lv.Lines[l] {
			active = true
			if !d.prev[l] {
				e.set(l)
			}
		}
		d.prev[l] = lv.Lines[l]
	}
	if active {
		d.lastInput = now
		d.lastGame = now
	}
	return e
}

// Touch registers activity from outside the remote lines (the physical
// button shares the same idle-timeout clocks).
func (d *Dispatcher) Touch(now time.Time) {
	d.lastInput = now
	d.lastGame = now
}

// LastInput returns the time of the most recent input of any kind.
func (d *Dispatcher) LastInput() time.Time { return d.lastInput }

// LastGameInput returns the game activity clock.
func (d *Dispatcher) LastGameInput() time.Time { return d.lastGame }

// ResetGameClock restarts the game activity clock, done when a game is
// launched so the previous idle period does not count against it.
func (d *Dispatcher) ResetGameClock(now time.Time) {
	d.lastGame = now
}
