// Package snake implements the snake game on the full matrix. The body
// lives in a fixed array with the head at index zero; growth is capped so
// memory stays constant for the life of the device.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/core"
	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/games"
	"github.com/vovakirdan/pixelclock/internal/input"
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

func (d direction) opposite() direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	default:
		return dirLeft
	}
}

func (d direction) delta() (dx, dy int) {
	switch d {
	case dirUp:
		return 0, -1
	case dirDown:
		return 0, 1
	case dirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// noFood marks the food cell as unplaced. Placement retries on the next
// move tick, so a crowded board degrades to foodless play instead of
// stalling the scheduler.
var noFood = core.Cell{X: -1, Y: -1}

// Game is the snake engine.
type Game struct {
	cfg  config.SnakeConfig
	w, h int
	rng  *rand.Rand

	body    []core.Cell // backed by a cap-sized array, head first
	backing []core.Cell
	dir     direction
	pending direction
	food    core.Cell

	interval time.Duration
	lastStep time.Time
	score    int
}

// New creates a snake engine for a w×h matrix.
func New(cfg config.SnakeConfig, w, h int, seed int64) *Game {
	backing := make([]core.Cell, cfg.MaxLength)
	return &Game{
		cfg:     cfg,
		w:       w,
		h:       h,
		rng:     rand.New(rand.NewSource(seed)),
		backing: backing,
	}
}

func init() {
	games.Register("snake", "SNAKE")
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "SNAKE" }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// Reset restores a three-segment snake heading right from the center. The
// RNG carries over.
func (g *Game) Reset(now time.Time) {
	cx, cy := g.w/2, g.h/2
	g.body = g.backing[:3]
	g.body[0] = core.Cell{X: cx, Y: cy}
	g.body[1] = core.Cell{X: cx - 1, Y: cy}
	g.body[2] = core.Cell{X: cx - 2, Y: cy}
	g.dir = dirRight
	g.pending = dirRight
	g.interval = g.cfg.StartInterval()
	g.lastStep = now
	g.score = 0
	g.placeFood()
}

// Control stages a turn. A reversal onto the body is rejected at staging
// so a later edge in the same move window can still turn the snake.
func (g *Game) Control(now time.Time, e input.Edges) {
	var want direction
	switch {
	case e.Has(input.Up):
		want = dirUp
	case e.Has(input.Down):
		want = dirDown
	case e.Has(input.Left):
		want = dirLeft
	case e.Has(input.Right):
		want = dirRight
	default:
		return
	}
	if want == g.dir.opposite() {
		return
	}
	g.pending = want
}

// placeFood draws random cells until one misses the body, giving up after
// a bounded number of tries.
func (g *Game) placeFood() {
	for try := 0; try < g.cfg.FoodRetries; try++ {
		c := core.Cell{X: g.rng.Intn(g.w), Y: g.rng.Intn(g.h)}
		if !g.onBody(c) {
			g.food = c
			return
		}
	}
	g.food = noFood
}

func (g *Game) onBody(c core.Cell) bool {
	for _, b := range g.body {
		if b == c {
			return true
		}
	}
	return false
}

// Advance moves the snake one cell on the move interval. Returns true on
// a wall or self collision.
func (g *Game) Advance(now time.Time) bool {
	if now.Sub(g.lastStep) < g.interval {
		return false
	}
	g.lastStep = now

	g.dir = g.pending
	dx, dy := g.dir.delta()
	head := core.Cell{X: g.body[0].X + dx, Y: g.body[0].Y + dy}

	if !head.In(g.w, g.h) {
		return true
	}

	grow := head == g.food && len(g.body) < g.cfg.MaxLength

	// The tail cell vacates this tick unless the snake grows, so it does
	// not count as a self collision.
	occupied := g.body
	if !grow {
		occupied = g.body[:len(g.body)-1]
	}
	for _, b := range occupied {
		if b == head {
			return true
		}
	}

	if grow {
		g.body = g.backing[:len(g.body)+1]
	}
	copy(g.body[1:], g.body)
	g.body[0] = head

	if head == g.food {
		g.score++
		if g.score%5 == 0 {
			g.interval -= g.cfg.Step()
			if g.interval < g.cfg.MinInterval() {
				g.interval = g.cfg.MinInterval()
			}
		}
		g.placeFood()
	} else if g.food == noFood {
		g.placeFood()
	}
	return false
}

// Draw renders the food, the body and the head.
func (g *Game) Draw(c display.Canvas) {
	c.Clear()
	if g.food != noFood {
		c.Plot(g.food.X, g.food.Y, display.Red)
	}
	for _, b := range g.body[1:] {
		c.Plot(b.X, b.Y, display.Green)
	}
	c.Plot(g.body[0].X, g.body[0].Y, display.White)
}

// Flash plays the death feedback: the body blinks three times, then the
// final score holds briefly.
func (g *Game) Flash(c display.Canvas, sleep func(time.Duration)) {
	for i := 0; i < 3; i++ {
		c.Clear()
		for _, b := range g.body {
			c.Plot(b.X, b.Y, display.Red)
		}
		c.Flush()
		sleep(150 * time.Millisecond)
		c.Clear()
		c.Flush()
		sleep(100 * time.Millisecond)
	}
	c.Clear()
	c.DrawText(display.Top, "SCORE", display.White)
	c.DrawText(display.Bottom, fmt.Sprintf("%d", g.score), display.Amber)
	c.Flush()
	sleep(1200 * time.Millisecond)
}

var _ games.Engine = (*Game)(nil)
