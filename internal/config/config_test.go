package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := DefaultSnakeConfig()

	w, h := cfg.WindowSize()
	if w != 640 || h != 480 {
		t.Errorf("WindowSize() = %dx%d, expected 640x480", w, h)
	}
	if cfg.TickInterval() != time.Second/15 {
		t.Errorf("TickInterval() = %v, expected %v", cfg.TickInterval(), time.Second/15)
	}
	if cfg.ResetPause() != 500*time.Millisecond {
		t.Errorf("ResetPause() = %v, expected 500ms", cfg.ResetPause())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 10\n  height: 10\nobstacles:\n  count: 0\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Height != 10 || cfg.Obstacles.Count != 0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Timing.TickRate != 15 {
		t.Errorf("unset tick_rate should keep default 15, got %d", cfg.Timing.TickRate)
	}
	if cfg.Board.CellSize != 20 {
		t.Errorf("unset cell_size should keep default 20, got %d", cfg.Board.CellSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"tiny board", func(c *SnakeConfig) { c.Board.Width = 1 }, false},
		{"zero cell size", func(c *SnakeConfig) { c.Board.CellSize = 0 }, false},
		{"negative obstacles", func(c *SnakeConfig) { c.Obstacles.Count = -1 }, false},
		{"capacity exactly met", func(c *SnakeConfig) {
			c.Board.Width, c.Board.Height = 3, 3
			c.Obstacles.Count = 6
		}, true},
		{"capacity exceeded", func(c *SnakeConfig) {
			c.Board.Width, c.Board.Height = 3, 3
			c.Obstacles.Count = 7
		}, false},
		{"zero tick rate", func(c *SnakeConfig) { c.Timing.TickRate = 0 }, false},
		{"huge tick rate", func(c *SnakeConfig) { c.Timing.TickRate = 1000 }, false},
		{"negative pause", func(c *SnakeConfig) { c.Timing.ResetPauseMS = -5 }, false},
		{"bad colour", func(c *SnakeConfig) { c.Palette.Food = "gold" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Obstacles.Count != 5 {
		t.Errorf("Obstacles.Count = %d, expected 5", cfg.Obstacles.Count)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("obstacles: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("Load() of malformed yaml should fail")
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crowded.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 100000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() = %v, expected ErrInvalid", err)
	}

	cfg.Obstacles.Count = 5
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after override = %v, expected nil", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Obstacles.Count = 3

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: %+v vs %+v", back, cfg)
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA("#FFD700")
	if c.R != 0xff || c.G != 0xd7 || c.B != 0x00 || c.A != 0xff {
		t.Errorf("RGBA(#FFD700) = %+v", c)
	}
	if bad := RGBA("nope"); bad.R != 0xff || bad.B != 0xff || bad.G != 0 {
		t.Errorf("RGBA of invalid input should be magenta, got %+v", bad)
	}
}
