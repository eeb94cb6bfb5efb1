// Package device implements the clock's cooperative core: one scheduler
// tick samples the input lines, derives edges and button gestures, runs
// exactly one mode handler and flushes the display. There is no locking
// anywhere because there is exactly one control flow; the only pauses are
// the bounded flash sequences.
package device

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/display"
	"github.com/vovakirdan/pixelclock/internal/equation"
	"github.com/vovakirdan/pixelclock/internal/games"
	"github.com/vovakirdan/pixelclock/internal/games/dino"
	"github.com/vovakirdan/pixelclock/internal/games/dodge"
	"github.com/vovakirdan/pixelclock/internal/games/snake"
	"github.com/vovakirdan/pixelclock/internal/input"
	"github.com/vovakirdan/pixelclock/internal/rtc"
)

// ScoreStore is the persistence consumed by the device: difficulty and
// per-game scores. Implemented by the storage package.
type ScoreStore interface {
	Difficulty() (int, error)
	SetDifficulty(v int) error
	BestScore(gameID string) (int, error)
	RecordScore(gameID string, score int) (improved bool, err error)
}

// Options wires a device together. Adapter, Sampler, Clock and Store are
// required; the rest default sensibly.
type Options struct {
	Config  config.Config
	Adapter display.Adapter
	Sampler input.Sampler
	Clock   rtc.Source
	Store   ScoreStore
	Logger  *log.Logger
	Sleep   func(time.Duration) // flash pause primitive; defaults to time.Sleep
	Seed    int64               // game and quiz RNG seed; 0 means time-based
}

// Device is the single context object holding all mode, game and timer
// state. Constructed once, mutated only through Tick.
type Device struct {
	cfg     config.Config
	canvas  display.Canvas
	sampler input.Sampler
	disp    *input.Dispatcher
	button  *input.Button
	clock   rtc.Source
	store   ScoreStore
	logger  *log.Logger
	sleep   func(time.Duration)

	mode Mode

	engines  [3]games.Engine
	selected int

	difficulty int
	menu       menuItem
	edit       editState

	quizRNG  *rand.Rand
	quiz     equation.Quiz
	quizSlot int64
}

// New constructs a device. Call Boot before the first Tick.
func New(opts Options) *Device {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	w, h := opts.Config.Matrix.Width, opts.Config.Matrix.Height
	d := &Device{
		cfg:     opts.Config,
		canvas:  display.NewCanvas(opts.Adapter, w, h),
		sampler: opts.Sampler,
		clock:   opts.Clock,
		store:   opts.Store,
		logger:  opts.Logger,
		sleep:   opts.Sleep,
		button: input.NewButton(input.Thresholds{
			Short:  opts.Config.Button.Short(),
			Medium: opts.Config.Button.Medium(),
			Long:   opts.Config.Button.Long(),
		}),
		difficulty: 3,
		quizRNG:    rand.New(rand.NewSource(opts.Seed + 3)),
	}
	d.engines[0] = dino.New(opts.Config.Dino, w, h, opts.Seed)
	d.engines[1] = dodge.New(opts.Config.Dodge, w, h, opts.Seed+1)
	d.engines[2] = snake.New(opts.Config.Snake, w, h, opts.Seed+2)
	return d
}

// Mode returns the active mode.
func (d *Device) Mode() Mode { return d.mode }

// Boot loads persisted settings and verifies the time source. A missing
// time source shows a full-grid indicator for a fixed delay and the device
// carries on with whatever the source returns later.
func (d *Device) Boot(now time.Time) {
	d.disp = input.NewDispatcher(now)
	d.mode = ModeClock

	if v, err := d.store.Difficulty(); err != nil {
		d.logger.Warn("difficulty unavailable, using default", "err", err)
	} else {
		d.difficulty = v
	}

	if _, err := d.clock.Now(); err != nil {
		d.logger.Error("time source unavailable", "err", err)
		d.canvas.Clear()
		d.canvas.Fill(display.Red)
		d.canvas.Flush()
		d.sleep(2 * time.Second)
	}

	d.logger.Info("booted", "difficulty", d.difficulty)
}

// Tick runs one scheduler cycle: sample, edge-detect, gesture-detect,
// dispatch to the active mode, flush. Edges produced here are consumed
// here; nothing carries over to the next tick.
func (d *Device) Tick(now time.Time) {
	lv := d.sampler.Sample(now)
	edges := d.disp.Poll(now, lv)
	if lv.Button {
		d.disp.Touch(now)
	}
	gesture := d.button.Poll(now, lv.Button, d.mode.allowsLongHold())
	if gesture != input.GestureNone {
		d.disp.Touch(now)
	}

	switch d.mode {
	case ModeClock:
		d.tickClock(now, edges, gesture)
	case ModeGameSelect:
		d.tickGameSelect(now, edges, gesture)
	case ModeSettings:
		d.tickSettings(now, edges, gesture)
	case ModeSetTime, ModeSetDate:
		d.tickEdit(now, edges, gesture)
	default:
		d.tickGame(now, edges)
	}

	d.canvas.Flush()
}

// setMode performs an atomic mode transition. In-flight state of the mode
// being left is simply abandoned.
func (d *Device) setMode(m Mode, now time.Time) {
	if m == d.mode {
		return
	}
	d.logger.Debug("mode", "from", d.mode, "to", m)
	d.mode = m
}

// launchGame resets the selected engine and enters its mode. The game
// activity clock restarts so the time spent in menus does not count
// against the in-game idle window.
func (d *Device) launchGame(index int, now time.Time) {
	eng := d.engines[index]
	eng.Reset(now)
	d.disp.ResetGameClock(now)
	d.setMode(ModeDino+Mode(index), now)
	d.logger.Info("game launched", "game", eng.ID())
}

// tickClock handles the home screen. Game lines launch their game
// directly; Options or a medium hold opens Settings; Ok or a short press
// opens the game picker.
func (d *Device) tickClock(now time.Time, e input.Edges, g input.Gesture) {
	switch {
	case e.Has(input.Game1):
		d.launchGame(0, now)
		return
	case e.Has(input.Game2):
		d.launchGame(1, now)
		return
	case e.Has(input.Game3):
		d.launchGame(2, now)
		return
	case e.Has(input.Options) || g == input.GestureMedium:
		d.menu = menuDifficulty
		d.setMode(ModeSettings, now)
		return
	case e.Has(input.Ok) || g == input.GestureShort:
		d.selected = 0
		d.setMode(ModeGameSelect, now)
		return
	}
	d.drawClock(now)
}

// tickGameSelect handles the game picker. A short press cycles like
// Up/Down so the picker stays usable from the single physical button.
func (d *Device) tickGameSelect(now time.Time, e input.Edges, g input.Gesture) {
	switch {
	case e.Has(input.Return):
		d.setMode(ModeClock, now)
		return
	case e.Has(input.Up):
		d.selected = (d.selected + 2) % 3
	case e.Has(input.Down) || g == input.GestureShort:
		d.selected = (d.selected + 1) % 3
	case e.Has(input.Ok) || g == input.GestureLong:
		d.launchGame(d.selected, now)
		return
	}
	if now.Sub(d.disp.LastInput()) > d.cfg.Timeouts.GameSelect() {
		d.setMode(ModeClock, now)
		return
	}
	d.drawGameSelect()
}

// tickGame runs the active engine. Return or the game idle timeout quits
// to Clock; death persists the score, plays the flash and resumes a fresh
// run in the same mode.
func (d *Device) tickGame(now time.Time, e input.Edges) {
	index, ok := d.mode.game()
	if !ok {
		d.setMode(ModeClock, now)
		return
	}
	eng := d.engines[index]

	if e.Has(input.Return) {
		d.setMode(ModeClock, now)
		return
	}
	if now.Sub(d.disp.LastGameInput()) > d.cfg.Timeouts.GameIdle() {
		d.logger.Info("game idle timeout", "game", eng.ID())
		d.setMode(ModeClock, now)
		return
	}

	eng.Control(now, e)
	if eng.Advance(now) {
		score := eng.Score()
		improved, err := d.store.RecordScore(eng.ID(), score)
		if err != nil {
			d.logger.Warn("cannot persist score", "game", eng.ID(), "err", err)
		} else if improved {
			d.logger.Info("new best score", "game", eng.ID(), "score", score)
		}
		eng.Flash(d.canvas, d.sleep)
		// The fresh run keeps the current idle window: deaths are not
		// player activity, so an unattended game still times out.
		eng.Reset(now)
		return
	}
	eng.Draw(d.canvas)
}

// drawGameSelect renders the picker: title on top, selection below.
func (d *Device) drawGameSelect() {
	d.canvas.Clear()
	d.canvas.DrawText(display.Top, "PLAY?", display.White)
	d.canvas.DrawText(display.Bottom, d.engines[d.selected].Title(), display.Amber)
}
