package input

import "time"

// PulseSampler is a Sampler fed by timed synthetic pulses. The simulator
// asserts a line for a fixed duration on each key press, mirroring how the
// remote-control decoder holds its output lines; tests drive it directly.
type PulseSampler struct {
	lineUntil   [NumLines]time.Time
	buttonUntil time.Time
}

// NewPulseSampler creates an idle sampler.
func NewPulseSampler() *PulseSampler {
	return &PulseSampler{}
}

// Pulse asserts a line from now for the given duration. Overlapping pulses
// on the same line extend the assertion.
func (p *PulseSampler) Pulse(l Line, now time.Time, d time.Duration) {
	until := now.Add(d)
	if until.After(p.lineUntil[l]) {
		p.lineUntil[l] = until
	}
}

// HoldButton asserts the physical button line from now for the given
// duration.
func (p *PulseSampler) HoldButton(now time.Time, d time.Duration) {
	until := now.Add(d)
	if until.After(p.buttonUntil) {
		p.buttonUntil = until
	}
}

// Sample reports the line levels at the given instant.
func (p *PulseSampler) Sample(now time.Time) Levels {
	var lv Levels
	for l := Line(0); l < NumLines; l++ {
		lv.Lines[l] = now.Before(p.lineUntil[l])
	}
	lv.Button = now.Before(p.buttonUntil)
	return lv
}

var _ Sampler = (*PulseSampler)(nil)
