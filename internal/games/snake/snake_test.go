package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/core"
	"github.com/vovakirdan/pixelclock/internal/input"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGame() *Game {
	g := New(config.Default().Snake, 32, 16, 1)
	g.Reset(t0)
	return g
}

func edge(l input.Line) input.Edges {
	d := input.NewDispatcher(t0)
	var lv input.Levels
	lv.Lines[l] = true
	return d.Poll(t0, lv)
}

func step(g *Game) bool {
	return g.Advance(g.lastStep.Add(g.interval))
}

func TestMoveShiftsBodyWithoutGrowing(t *testing.T) {
	g := newTestGame()
	g.food = noFood
	head := g.body[0]
	wantLen := len(g.body)

	if step(g) {
		t.Fatal("unexpected death on open board")
	}

	if len(g.body) != wantLen {
		t.Errorf("length = %d after plain move, expected %d", len(g.body), wantLen)
	}
	if g.body[0] != (core.Cell{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, expected one cell right of %v", g.body[0], head)
	}
	if g.body[1] != head {
		t.Errorf("neck = %v, expected previous head %v", g.body[1], head)
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := newTestGame()
	head := g.body[0]
	g.food = core.Cell{X: head.X + 1, Y: head.Y}
	wantLen := len(g.body) + 1
	tail := g.body[len(g.body)-1]

	step(g)

	if g.score != 1 {
		t.Errorf("score = %d after eating, expected 1", g.score)
	}
	if len(g.body) != wantLen {
		t.Errorf("length = %d after eating, expected %d", len(g.body), wantLen)
	}
	if g.body[len(g.body)-1] != tail {
		t.Error("tail cell must stay put on a growth move")
	}
	if g.food == (core.Cell{X: head.X + 1, Y: head.Y}) {
		t.Error("food not replaced after being eaten")
	}
}

func TestReversalRejectedOtherTurnsAccepted(t *testing.T) {
	g := newTestGame() // heading right

	g.Control(t0, edge(input.Left))
	if g.pending != dirRight {
		t.Error("reversal onto the body was staged")
	}

	g.Control(t0, edge(input.Up))
	if g.pending != dirUp {
		t.Error("perpendicular turn was not staged")
	}

	// A later edge in the same window may overwrite the staged turn.
	g.Control(t0, edge(input.Down))
	if g.pending != dirDown {
		t.Error("second turn in the window did not replace the first")
	}

	step(g)
	if g.dir != dirDown {
		t.Errorf("dir = %v after move, expected staged turn applied", g.dir)
	}
}

func TestWallCollisionKills(t *testing.T) {
	g := newTestGame()
	g.food = noFood

	died := false
	for i := 0; i < 100 && !died; i++ {
		died = step(g)
	}
	if !died {
		t.Error("snake ran through the right wall")
	}
	if g.body[0].X != g.w-1 {
		t.Errorf("head stopped at x=%d, expected the last in-bounds column", g.body[0].X)
	}
}

func TestSelfCollisionExcludesVacatingTail(t *testing.T) {
	g := New(config.Default().Snake, 32, 16, 1)
	g.Reset(t0)
	g.food = noFood

	// A 4-cell square: head about to re-enter the tail cell, which
	// vacates on the same move.
	g.body = g.backing[:4]
	g.body[0] = core.Cell{X: 10, Y: 10}
	g.body[1] = core.Cell{X: 11, Y: 10}
	g.body[2] = core.Cell{X: 11, Y: 11}
	g.body[3] = core.Cell{X: 10, Y: 11}
	g.dir = dirDown
	g.pending = dirDown

	if step(g) {
		t.Error("moving into the vacating tail cell must not kill")
	}

	// Same shape, but growing: the tail stays, so the move is lethal.
	g.body = g.backing[:4]
	g.body[0] = core.Cell{X: 10, Y: 10}
	g.body[1] = core.Cell{X: 11, Y: 10}
	g.body[2] = core.Cell{X: 11, Y: 11}
	g.body[3] = core.Cell{X: 10, Y: 11}
	g.dir = dirDown
	g.pending = dirDown
	g.food = core.Cell{X: 10, Y: 11}

	if !step(g) {
		t.Error("moving into an occupied tail cell on a growth move must kill")
	}
}

func TestSpeedRampsEveryFivePoints(t *testing.T) {
	g := newTestGame()
	start := g.interval

	// Feed the snake by planting food directly ahead on its straight run.
	for i := 0; i < 5; i++ {
		head := g.body[0]
		g.food = core.Cell{X: head.X + 1, Y: head.Y}
		if step(g) {
			t.Fatal("unexpected death while feeding")
		}
	}

	if g.score != 5 {
		t.Fatalf("score = %d, expected 5", g.score)
	}
	if g.interval != start-g.cfg.Step() {
		t.Errorf("interval = %v, expected one ramp step down from %v", g.interval, start)
	}
}

func TestGrowthCapsAtMaxLength(t *testing.T) {
	cfg := config.Default().Snake
	cfg.MaxLength = 4
	g := New(cfg, 32, 16, 1)
	g.Reset(t0)

	// One growth reaches the cap; eating again scores but cannot grow.
	for i := 0; i < 2; i++ {
		head := g.body[0]
		g.food = core.Cell{X: head.X + 1, Y: head.Y}
		if step(g) {
			t.Fatal("unexpected death while feeding")
		}
	}

	if len(g.body) != 4 {
		t.Errorf("length = %d, expected the cap of 4", len(g.body))
	}
	if g.score != 2 {
		t.Errorf("score = %d, expected eating at the cap to still score", g.score)
	}
}

func TestFoodPlacementGivesUpOnCrowdedBoard(t *testing.T) {
	cfg := config.Default().Snake
	g := New(cfg, 2, 2, 1)
	g.Reset(t0)
	g.body = g.backing[:4]
	g.body[0] = core.Cell{X: 0, Y: 0}
	g.body[1] = core.Cell{X: 1, Y: 0}
	g.body[2] = core.Cell{X: 1, Y: 1}
	g.body[3] = core.Cell{X: 0, Y: 1}

	g.placeFood()
	if g.food != noFood {
		t.Errorf("food = %v on a full board, expected the unplaced marker", g.food)
	}
}
