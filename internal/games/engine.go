// Package games defines the engine contract shared by the three built-in
// games and a small registry used for CLI discovery. Engines contain pure
// timing-gated simulation logic; the device owns scheduling, persistence
// and mode transitions.
package games

import (
	"time"

	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/input"
)

// Engine is one self-contained game simulation. All methods run on the
// device's single scheduler goroutine; engines never block except inside
// Flash, which is a deliberate bounded pause.
type Engine interface {
	// ID is the stable identifier used for score storage and the CLI.
	ID() string

	// Title is the short display name, at most eight glyphs.
	Title() string

	// Reset restores the initial state for a fresh run. Called at launch
	// and after every death; the RNG is not reseeded so runs stay
	// deterministic under a fixed seed.
	Reset(now time.Time)

	// Control feeds this tick's input edges to the engine. Edges arrive
	// at most once per physical press and are consumed here.
	Control(now time.Time, e input.Edges)

	// Advance runs the timing-gated simulation step. Returns true when
	// the run ended on this tick.
	Advance(now time.Time) (died bool)

	// Draw renders the current state. The canvas is cleared first.
	Draw(c display.Canvas)

	// Flash plays the blocking death feedback sequence. sleep is the
	// device's pause primitive; total duration is bounded.
	Flash(c display.Canvas, sleep func(time.Duration))

	// Score returns the current run's score.
	Score() int
}
