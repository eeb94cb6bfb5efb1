// Package input implements the per-tick input boundary of the device: ten
// discrete remote-control lines sampled for rising edges, plus the physical
// button gesture machine. The upstream pulse decoder guarantees every
// asserted level outlasts one scheduler tick, so edge detection alone is
// sufficient (no per-line debouncing).
package input

import "time"

// Line identifies one remote-control signal line.
type Line int

const (
	Return Line = iota
	Up
	Down
	Left
	Right
	Ok
	Game1
	Game2
	Game3
	Options

	NumLines
)

// String returns a human-readable name for the line.
func (l Line) String() string {
	switch l {
	case Return:
		return "return"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Ok:
		return "ok"
	case Game1:
		return "game1"
	case Game2:
		return "game2"
	case Game3:
		return "game3"
	case Options:
		return "options"
	default:
		return "unknown"
	}
}

// Levels is one tick's sample of every input line plus the button.
type Levels struct {
	Lines  [NumLines]bool
	Button bool
}

// Sampler supplies the current line levels. The simulator implements it
// with synthetic pulses; a hardware build would read GPIO here.
type Sampler interface {
	Sample(now time.Time) Levels
}

// Edges is the set of rising edges detected in one tick. Edges are
// consumed by exactly one mode handler in the same tick and never carried
// over.
type Edges uint16

// Has reports whether the given line rose this tick.
func (e Edges) Has(l Line) bool {
	return e&(1<<uint(l)) != 0
}

// Any reports whether any line rose this tick.
func (e Edges) Any() bool {
	return e != 0
}

func (e *Edges) set(l Line) {
	*e |= 1 << uint(l)
}
