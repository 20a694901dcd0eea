package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.TickInterval() != parameter.DefaultTickInterval {
		t.Errorf("Expected default tick %v, got %v", parameter.DefaultTickInterval, cfg.TickInterval())
	}
	if d, _ := cfg.Direction(); !d.IsZero() {
		t.Errorf("Expected stationary default direction, got %v", d)
	}
}

func TestLoadBytes(t *testing.T) {
	data := []byte(`
tick_ms = 120
lerp_rate = 25.5
seed_length = 3
initial_direction = "up"
grid_half_size = 12
treat_count = 2
rng_seed = 99
debug_addr = "127.0.0.1:7777"
sound = true

[keys]
left = ["y"]
quit = ["x"]
`)
	cfg, err := LoadBytes(data)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.TickMS != 120 || cfg.LerpRate != 25.5 || cfg.SeedLength != 3 || cfg.GridHalfSize != 12 {
		t.Errorf("Unexpected numeric fields: %+v", cfg)
	}
	if cfg.RNGSeed != 99 || cfg.DebugAddr != "127.0.0.1:7777" || !cfg.Sound {
		t.Errorf("Unexpected fields: %+v", cfg)
	}
	if d, _ := cfg.Direction(); d != (core.Point{Y: 1}) {
		t.Errorf("Expected up (0,1), got %v", d)
	}

	km, err := cfg.KeyMap()
	if err != nil {
		t.Fatalf("KeyMap: %v", err)
	}
	if a := km.Lookup(tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)); a != input.ActionLeft {
		t.Errorf("Expected 'y' bound to left, got %v", a)
	}

	presets := cfg.PresetTreats()
	if len(presets) != 2 || presets[0] != (core.Point{X: -4, Y: -4}) || presets[1] != (core.Point{X: 8, Y: 4}) {
		t.Errorf("Unexpected presets %v", presets)
	}
}

func TestLoadBytes_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadBytes([]byte(`lerp_rate = 3`))
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if cfg.LerpRate != 3 || cfg.TickMS != parameter.DefaultTickInterval.Milliseconds() {
		t.Errorf("Unexpected %+v", cfg)
	}
	if cfg.PresetTreats() != nil {
		t.Error("Presets only apply with two or more treats")
	}
}

func TestLoadBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", `speed = 3`},
		{"syntax", `tick_ms = = 3`},
		{"wrong type", `tick_ms = "fast"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBytes([]byte(tt.data)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"tick too small", func(c *Config) { c.TickMS = 1 }},
		{"tick too large", func(c *Config) { c.TickMS = 60000 }},
		{"negative lerp", func(c *Config) { c.LerpRate = -1 }},
		{"zero seed", func(c *Config) { c.SeedLength = 0 }},
		{"seed exceeds grid", func(c *Config) { c.GridHalfSize = 2; c.SeedLength = 5 }},
		{"zero grid", func(c *Config) { c.GridHalfSize = 0 }},
		{"too many treats", func(c *Config) { c.TreatCount = parameter.MaxTreatCount + 1 }},
		{"bad direction", func(c *Config) { c.InitialDirection = "sideways" }},
		{"bad key action", func(c *Config) { c.Keys = map[string][]string{"jump": {"x"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridsnake.toml")
	if err := os.WriteFile(path, []byte("treat_count = 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TreatCount != 4 {
		t.Errorf("Expected treat_count 4, got %d", cfg.TreatCount)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
	if cfg, err := Load(""); err != nil || cfg.TreatCount != parameter.DefaultTreatCount {
		t.Errorf("Empty path should yield defaults, got %+v %v", cfg, err)
	}
}
