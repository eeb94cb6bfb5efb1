package dino

import (
	"testing"
	"time"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/input"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGame() *Game {
	g := New(config.Default().Dino, 32, 16, 1)
	g.Reset(t0)
	return g
}

func jumpEdge() input.Edges {
	var e input.Edges
	// Only the dispatcher builds edges in production; tests synthesize
	// them through a one-line poll.
	d := input.NewDispatcher(t0)
	var lv input.Levels
	lv.Lines[input.Up] = true
	e = d.Poll(t0, lv)
	return e
}

// advanceTo steps the engine's clock one frame interval at a time until
// the obstacle reaches the given column.
func advanceTo(t *testing.T, g *Game, col int, jumping bool) (died bool, now time.Time) {
	t.Helper()
	now = t0
	for i := 0; i < 200; i++ {
		now = now.Add(g.interval)
		if jumping {
			// Re-arm the jump right before each step so the player is
			// airborne when the obstacle arrives.
			g.jumping = true
			g.jumpStart = now
		}
		if died = g.Advance(now); died || g.obstacleX == col {
			return died, now
		}
	}
	t.Fatal("obstacle never reached target column")
	return false, now
}

func TestGroundObstacleHitsGroundedPlayer(t *testing.T) {
	g := newTestGame()
	g.obstacleAir = false

	died, _ := advanceTo(t, g, playerCol, false)
	if !died {
		t.Error("ground obstacle at player column should kill a grounded player")
	}
}

func TestGroundObstacleMissesAirbornePlayer(t *testing.T) {
	g := newTestGame()
	g.obstacleAir = false

	died, _ := advanceTo(t, g, playerCol, true)
	if died {
		t.Error("ground obstacle must not hit an airborne player")
	}
}

func TestAirObstacleHitsAirbornePlayer(t *testing.T) {
	g := newTestGame()
	g.obstacleAir = true

	died, _ := advanceTo(t, g, playerCol, true)
	if !died {
		t.Error("air obstacle at player column should hit an airborne player")
	}
}

func TestAirObstacleMissesGroundedPlayer(t *testing.T) {
	g := newTestGame()
	g.obstacleAir = true

	died, _ := advanceTo(t, g, playerCol, false)
	if died {
		t.Error("air obstacle must not hit a grounded player")
	}
}

func TestJumpHasFixedDurationAndIgnoresInputsWhileAirborne(t *testing.T) {
	g := newTestGame()

	g.Control(t0, jumpEdge())
	if !g.jumping {
		t.Fatal("jump did not start")
	}
	start := g.jumpStart

	// Further input mid-jump must not restart the timer.
	g.Control(t0.Add(200*time.Millisecond), jumpEdge())
	if !g.jumpStart.Equal(start) {
		t.Error("input during jump restarted the jump timer")
	}

	// Still airborne just before the duration elapses.
	g.Advance(t0.Add(g.cfg.Jump() - time.Millisecond))
	if !g.jumping {
		t.Error("jump ended early")
	}

	// Auto-lands once the duration is exceeded, input or not.
	g.Advance(t0.Add(g.cfg.Jump()))
	if g.jumping {
		t.Error("jump did not auto-end after its fixed duration")
	}
}

func TestIntervalRampsDownToFloor(t *testing.T) {
	g := newTestGame()
	start := g.interval

	// Run far enough that the floor must be reached; stay airborne when
	// needed by teleporting the obstacle away from the player column.
	now := t0
	for passes := 0; passes < 100; passes++ {
		for {
			now = now.Add(g.interval)
			if g.obstacleX == playerCol+1 && g.obstacleAir == g.jumping {
				// Dodge by flipping state; the test targets speed, not skill.
				g.jumping = !g.jumping
				g.jumpStart = now.Add(time.Hour)
			}
			before := g.obstacleX
			if g.Advance(now); g.obstacleX > before {
				break // respawned, one pass complete
			}
		}
	}

	if g.interval >= start {
		t.Error("interval never decreased")
	}
	if g.interval != g.cfg.MinInterval() {
		t.Errorf("interval = %v, expected floor %v after 100 passes", g.interval, g.cfg.MinInterval())
	}
	if g.score != 100 {
		t.Errorf("score = %d, expected one point per passed obstacle", g.score)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame()
	advanceTo(t, g, 10, true)
	g.score = 42
	g.interval = g.cfg.MinInterval()

	g.Reset(t0.Add(time.Hour))

	if g.score != 0 {
		t.Error("score not reset")
	}
	if g.interval != g.cfg.StartInterval() {
		t.Error("interval not reset")
	}
	if g.obstacleX != g.w-1 {
		t.Error("obstacle not respawned at the right edge")
	}
	if g.jumping {
		t.Error("jump flag survived reset")
	}
}
