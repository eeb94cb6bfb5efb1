// Package dodge implements the falling-blocks game: the player slides
// along the bottom row while horizontal bars drop from the top. Surviving
// a bar past the player row scores a point and speeds up the fall.
package dodge

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

// maxBlocks is the number of concurrent block slots.
const maxBlocks = 2

// block is one falling bar. Width is 1 to 3 columns starting at Left.
type block struct {
	left   int
	row    int
	width  int
	active bool
}

func (b block) covers(col int) bool {
	return col >= b.left && col < b.left+b.width
}

// Game is the falling-blocks engine.
type Game struct {
	cfg  config.DodgeConfig
	w, h int
	rng  *rand.Rand

	playerX int
	blocks  [maxBlocks]block

	interval time.Duration
	lastStep time.Time
	score    int
}

// New creates a falling-blocks engine for a w×h matrix.
func New(cfg config.DodgeConfig, w, h int, seed int64) *Game {
	return &Game{
		cfg: cfg,
		w:   w,
		h:   h,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func init() {
	games.Register("dodge", "DODGE")
}

// ID returns the game identifier.
func (g *Game) ID() string { return "dodge" }

// Title returns the display name.
func (g *Game) Title() string { return "DODGE" }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// Reset restores the initial state for a fresh run. The RNG carries over.
func (g *Game) Reset(now time.Time) {
	g.playerX = g.w / 2
	for i := range g.blocks {
		g.blocks[i].active = false
	}
	g.interval = g.cfg.StartInterval()
	g.lastStep = now
	g.score = 0
	g.spawn()
}

// Control moves the player one column per edge, clamped to the matrix.
func (g *Game) Control(now time.Time, e input.Edges) {
	if e.Has(input.Left) {
		g.playerX = core.Clamp(g.playerX-1, 0, g.w-1)
	}
	if e.Has(input.Right) {
		g.playerX = core.Clamp(g.playerX+1, 0, g.w-1)
	}
}

// targetBlocks returns how many slots should be falling at the current
// score. The second slot phases in as the run progresses.
func (g *Game) targetBlocks() int {
	switch {
	case g.score < 5:
		return 1
	case g.score < 15:
		return 1 + g.rng.Intn(2)
	default:
		return maxBlocks
	}
}

// spawn activates idle slots up to the current target count.
func (g *Game) spawn() {
	target := g.targetBlocks()
	active := 0
	for i := range g.blocks {
		if g.blocks[i].active {
			active++
		}
	}
	for i := range g.blocks {
		if active >= target {
			return
		}
		if g.blocks[i].active {
			continue
		}
		width := 1 + g.rng.Intn(3)
		g.blocks[i] = block{
			left:   g.rng.Intn(g.w - width + 1),
			row:    0,
			width:  width,
			active: true,
		}
		active++
	}
}

// Advance drops every active block one row on the frame interval. A block
// reaching the player row kills on overlap; one that falls past it retires,
// scores and speeds up the fall.
func (g *Game) Advance(now time.Time) bool {
	if now.Sub(g.lastStep) < g.interval {
		return false
	}
	g.lastStep = now

	playerRow := g.h - 1
	died := false
	for i := range g.blocks {
		b := &g.blocks[i]
		if !b.active {
			continue
		}
		b.row++
		if b.row == playerRow && b.covers(g.playerX) {
			died = true
		}
		if b.row > playerRow {
			b.active = false
			g.score++
			g.interval -= g.cfg.Step()
			if g.interval < g.cfg.MinInterval() {
				g.interval = g.cfg.MinInterval()
			}
		}
	}
	if died {
		return true
	}
	g.spawn()
	return false
}

// Draw renders the score, the falling blocks and the player.
func (g *Game) Draw(c display.Canvas) {
	c.Clear()
	c.DrawText(display.Top, fmt.Sprintf("%d", g.score), display.White)

	for _, b := range g.blocks {
		if !b.active {
			continue
		}
		for x := b.left; x < b.left+b.width; x++ {
			c.Plot(x, b.row, display.Red)
		}
	}
	c.Plot(g.playerX, g.h-1, display.Green)
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
