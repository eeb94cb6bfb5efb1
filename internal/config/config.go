// Package config provides YAML-based configuration for the clock: matrix
// geometry, scheduler tick rate, button gesture thresholds, idle timeouts
// and per-game tuning. Everything has an embedded default so the device
// runs with no config file at all.
package config

import "time"

// Config is the full device configuration.
type Config struct {
	Matrix   MatrixConfig  `yaml:"matrix"`
	TickRate int           `yaml:"tick_rate"` // scheduler ticks per second
	Button   ButtonConfig  `yaml:"button"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	Dino     DinoConfig    `yaml:"dino"`
	Dodge    DodgeConfig   `yaml:"dodge"`
	Snake    SnakeConfig   `yaml:"snake"`
}

// MatrixConfig is the LED panel geometry. Height must be even; the panel
// is addressed as two stacked halves.
type MatrixConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ButtonConfig holds the press-duration thresholds in milliseconds.
type ButtonConfig struct {
	ShortMS  int `yaml:"short_ms"`
	MediumMS int `yaml:"medium_ms"`
	LongMS   int `yaml:"long_ms"`
}

// Short returns the short-press threshold.
func (b ButtonConfig) Short() time.Duration { return ms(b.ShortMS) }

// Medium returns the medium-hold threshold.
func (b ButtonConfig) Medium() time.Duration { return ms(b.MediumMS) }

// Long returns the long-hold threshold.
func (b ButtonConfig) Long() time.Duration { return ms(b.LongMS) }

// TimeoutConfig holds the per-mode idle windows in seconds. Clock mode
// never times out.
type TimeoutConfig struct {
	GameIdleS   int `yaml:"game_idle_s"`
	GameSelectS int `yaml:"game_select_s"`
	SettingsS   int `yaml:"settings_s"`
	EditS       int `yaml:"edit_s"`
}

// GameIdle returns the in-game idle window, measured against the game
// activity clock.
func (t TimeoutConfig) GameIdle() time.Duration { return sec(t.GameIdleS) }

// GameSelect returns the game picker idle window.
func (t TimeoutConfig) GameSelect() time.Duration { return sec(t.GameSelectS) }

// Settings returns the settings menu idle window.
func (t TimeoutConfig) Settings() time.Duration { return sec(t.SettingsS) }

// Edit returns the time/date editor idle window.
func (t TimeoutConfig) Edit() time.Duration { return sec(t.EditS) }

// DinoConfig tunes the runner engine.
type DinoConfig struct {
	StartIntervalMS int `yaml:"start_interval_ms"`
	StepMS          int `yaml:"step_ms"` // interval reduction per passed obstacle
	MinIntervalMS   int `yaml:"min_interval_ms"`
	JumpMS          int `yaml:"jump_ms"` // fixed airborne duration
}

// StartInterval returns the initial frame interval.
func (d DinoConfig) StartInterval() time.Duration { return ms(d.StartIntervalMS) }

// Step returns the per-obstacle interval reduction.
func (d DinoConfig) Step() time.Duration { return ms(d.StepMS) }

// MinInterval returns the frame interval floor.
func (d DinoConfig) MinInterval() time.Duration { return ms(d.MinIntervalMS) }

// Jump returns the fixed jump duration.
func (d DinoConfig) Jump() time.Duration { return ms(d.JumpMS) }

// DodgeConfig tunes the falling-blocks engine.
type DodgeConfig struct {
	StartIntervalMS int `yaml:"start_interval_ms"`
	StepMS          int `yaml:"step_ms"` // interval reduction per retired block
	MinIntervalMS   int `yaml:"min_interval_ms"`
}

// StartInterval returns the initial frame interval.
func (d DodgeConfig) StartInterval() time.Duration { return ms(d.StartIntervalMS) }

// Step returns the per-block interval reduction.
func (d DodgeConfig) Step() time.Duration { return ms(d.StepMS) }

// MinInterval returns the frame interval floor.
func (d DodgeConfig) MinInterval() time.Duration { return ms(d.MinIntervalMS) }

// SnakeConfig tunes the snake engine.
type SnakeConfig struct {
	StartIntervalMS int `yaml:"start_interval_ms"`
	StepMS          int `yaml:"step_ms"` // interval reduction per five points
	MinIntervalMS   int `yaml:"min_interval_ms"`
	MaxLength       int `yaml:"max_length"`
	FoodRetries     int `yaml:"food_retries"`
}

// StartInterval returns the initial move interval.
func (s SnakeConfig) StartInterval() time.Duration { return ms(s.StartIntervalMS) }

// Step returns the per-five-points interval reduction.
func (s SnakeConfig) Step() time.Duration { return ms(s.StepMS) }

// MinInterval returns the move interval floor.
func (s SnakeConfig) MinInterval() time.Duration { return ms(s.MinIntervalMS) }

func ms(v int) time.Duration  { return time.Duration(v) * time.Millisecond }
func sec(v int) time.Duration { return time.Duration(v) * time.Second }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Matrix:   MatrixConfig{Width: 32, Height: 16},
		TickRate: 50,
		Button: ButtonConfig{
			ShortMS:  500,
			MediumMS: 800,
			LongMS:   2000,
		},
		Timeouts: TimeoutConfig{
			GameIdleS:   60,
			GameSelectS: 10,
			SettingsS:   30,
			EditS:       30,
		},
		Dino: DinoConfig{
			StartIntervalMS: 400,
			StepMS:          10,
			MinIntervalMS:   150,
			JumpMS:          600,
		},
		Dodge: DodgeConfig{
			StartIntervalMS: 350,
			StepMS:          10,
			MinIntervalMS:   120,
		},
		Snake: SnakeConfig{
			StartIntervalMS: 400,
			StepMS:          20,
			MinIntervalMS:   120,
			MaxLength:       64,
			FoodRetries:     32,
		},
	}
}

// Normalize substitutes safe defaults for out-of-range values so a broken
// config file degrades instead of failing.
func (c *Config) Normalize() {
	def := Default()

	if c.Matrix.Width < 8 || c.Matrix.Width > 256 {
		c.Matrix.Width = def.Matrix.Width
	}
	if c.Matrix.Height < 8 || c.Matrix.Height > 256 || c.Matrix.Height%2 != 0 {
		c.Matrix.Height = def.Matrix.Height
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		c.TickRate = def.TickRate
	}
	if c.Button.ShortMS <= 0 {
		c.Button.ShortMS = def.Button.ShortMS
	}
	if c.Button.MediumMS <= c.Button.ShortMS {
		c.Button.MediumMS = def.Button.MediumMS
	}
	if c.Button.LongMS <= c.Button.MediumMS {
		c.Button.LongMS = def.Button.LongMS
	}
	if c.Timeouts.GameIdleS <= 0 {
		c.Timeouts.GameIdleS = def.Timeouts.GameIdleS
	}
	if c.Timeouts.GameSelectS <= 0 {
		c.Timeouts.GameSelectS = def.Timeouts.GameSelectS
	}
	if c.Timeouts.SettingsS <= 0 {
		c.Timeouts.SettingsS = def.Timeouts.SettingsS
	}
	if c.Timeouts.EditS <= 0 {
		c.Timeouts.EditS = def.Timeouts.EditS
	}

	normalizeInterval(&c.Dino.StartIntervalMS, &c.Dino.StepMS, &c.Dino.MinIntervalMS,
		def.Dino.StartIntervalMS, def.Dino.StepMS, def.Dino.MinIntervalMS)
	if c.Dino.JumpMS <= 0 {
		c.Dino.JumpMS = def.Dino.JumpMS
	}
	normalizeInterval(&c.Dodge.StartIntervalMS, &c.Dodge.StepMS, &c.Dodge.MinIntervalMS,
		def.Dodge.StartIntervalMS, def.Dodge.StepMS, def.Dodge.MinIntervalMS)
	normalizeInterval(&c.Snake.StartIntervalMS, &c.Snake.StepMS, &c.Snake.MinIntervalMS,
		def.Snake.StartIntervalMS, def.Snake.StepMS, def.Snake.MinIntervalMS)
	if c.Snake.MaxLength < 4 || c.Snake.MaxLength > c.Matrix.Width*c.Matrix.Height {
		c.Snake.MaxLength = def.Snake.MaxLength
	}
	if c.Snake.FoodRetries <= 0 {
		c.Snake.FoodRetries = def.Snake.FoodRetries
	}
}

func normalizeInterval(start, step, floor *int, defStart, defStep, defFloor int) {
	if *floor <= 0 {
		*floor = defFloor
	}
	if *start < *floor {
		*start = defStart
	}
	if *step <= 0 {
		*step = defStep
	}
}
