// Package dino implements the runner game: a fixed-column player hops a
// single oncoming obstacle. Obstacles are typed ground or air; only a
// matching vertical state collides, so ducking under a ground obstacle is
// impossible but jumping over it (or staying down under an air one) is the
// whole game.
package dino

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/games"
	"github.com/vovakirdan/pixelclock/internal/input"
)

// playerCol is the player's fixed column.
const playerCol = 2

// Game is the runner engine.
type Game struct {
	cfg  config.DinoConfig
	w, h int
	rng  *rand.Rand

	jumping   bool
	jumpStart time.Time

	obstacleX   int
	obstacleAir bool

	interval time.Duration
	lastStep time.Time
	score    int
}

// New creates a runner engine for a w×h matrix.
func New(cfg config.DinoConfig, w, h int, seed int64) *Game {
	return &Game{
		cfg: cfg,
		w:   w,
		h:   h,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func init() {
	games.Register("dino", "DINO")
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dino" }

// Title returns the display name.
func (g *Game) Title() string { return "DINO" }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// Reset restores the initial state for a fresh run. The RNG carries over.
func (g *Game) Reset(now time.Time) {
	g.jumping = false
	g.obstacleX = g.w - 1
	g.obstacleAir = g.rng.Intn(2) == 0
	g.interval = g.cfg.StartInterval()
	g.lastStep = now
	g.score = 0
}

// Control starts a jump on any accepted input edge. Inputs while already
// airborne are ignored; the jump ends on its own timer.
func (g *Game) Control(now time.Time, e input.Edges) {
	if g.jumping {
		return
	}
	if e.Has(input.Up) || e.Has(input.Ok) {
		g.jumping = true
		g.jumpStart = now
	}
}

// Advance runs one scheduler tick. The jump timer is checked every tick;
// the obstacle moves only on its frame interval.
func (g *Game) Advance(now time.Time) bool {
	if g.jumping && now.Sub(g.jumpStart) >= g.cfg.Jump() {
		g.jumping = false
	}

	if now.Sub(g.lastStep) < g.interval {
		return false
	}
	g.lastStep = now

	g.obstacleX--
	if g.obstacleX < 0 {
		g.score++
		g.interval -= g.cfg.Step()
		if g.interval < g.cfg.MinInterval() {
			g.interval = g.cfg.MinInterval()
		}
		g.obstacleX = g.w - 1
		g.obstacleAir = g.rng.Intn(2) == 0
	}

	// Same column and matching vertical state is the only lethal case.
	if g.obstacleX == playerCol && g.obstacleAir == g.jumping {
		return true
	}
	return false
}

// Draw renders the lane, the player and the obstacle, score on top.
func (g *Game) Draw(c display.Canvas) {
	c.Clear()
	c.DrawText(display.Top, fmt.Sprintf("%d", g.score), display.White)

	for x := 0; x < g.w; x++ {
		c.Plot(x, g.h-1, display.Amber)
	}

	playerTop := g.h - 3
	if g.jumping {
		playerTop = g.h - 6
	}
	c.Plot(playerCol, playerTop, display.Green)
	c.Plot(playerCol, playerTop+1, display.Green)

	obstacleTop := g.h - 3
	if g.obstacleAir {
		obstacleTop = g.h - 6
	}
	c.Plot(g.obstacleX, obstacleTop, display.Red)
	c.Plot(g.obstacleX, obstacleTop+1, display.Red)
}

// Flash plays the death feedback: three red border blinks.
func (g *Game) Flash(c display.Canvas, sleep func(time.Duration)) {
	for i := 0; i < 3; i++ {
		c.Clear()
		c.Border(display.Red)
		c.Flush()
		sleep(120 * time.Millisecond)
		c.Clear()
		c.Flush()
		sleep(80 * time.Millisecond)
	}
}

var _ games.Engine = (*Game)(nil)
