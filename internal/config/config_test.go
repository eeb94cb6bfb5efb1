package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	cfg.Normalize()
	if cfg != Default() {
		t.Errorf("embedded default diverged from Default():\n%+v\nvs\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("tick_rate: 25\nsnake:\n  max_length: 32\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 25 {
		t.Errorf("TickRate = %d, expected 25", cfg.TickRate)
	}
	if cfg.Snake.MaxLength != 32 {
		t.Errorf("Snake.MaxLength = %d, expected 32", cfg.Snake.MaxLength)
	}
	// Unspecified values must be filled in by normalization.
	if cfg.Matrix.Width != 32 || cfg.Button.MediumMS != 800 {
		t.Error("unspecified fields not normalized to defaults")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestNormalizeSubstitutesBadValues(t *testing.T) {
	cfg := Config{
		Matrix:   MatrixConfig{Width: 0, Height: 15}, // odd height invalid
		TickRate: -3,
		Button:   ButtonConfig{ShortMS: 500, MediumMS: 200, LongMS: 100},
		Snake:    SnakeConfig{MaxLength: 100000},
	}
	cfg.Normalize()

	def := Default()
	if cfg.Matrix != def.Matrix {
		t.Errorf("matrix not normalized: %+v", cfg.Matrix)
	}
	if cfg.TickRate != def.TickRate {
		t.Errorf("tick rate not normalized: %d", cfg.TickRate)
	}
	if cfg.Button.MediumMS <= cfg.Button.ShortMS || cfg.Button.LongMS <= cfg.Button.MediumMS {
		t.Errorf("button thresholds not ordered after normalize: %+v", cfg.Button)
	}
	if cfg.Snake.MaxLength != def.Snake.MaxLength {
		t.Errorf("snake max length not normalized: %d", cfg.Snake.MaxLength)
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()

	if cfg.Button.Medium() != 800*time.Millisecond {
		t.Errorf("Button.Medium() = %v", cfg.Button.Medium())
	}
	if cfg.Timeouts.GameSelect() != 10*time.Second {
		t.Errorf("Timeouts.GameSelect() = %v", cfg.Timeouts.GameSelect())
	}
	if cfg.Dino.Jump() != 600*time.Millisecond {
		t.Errorf("Dino.Jump() = %v", cfg.Dino.Jump())
	}
}
