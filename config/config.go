package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Config holds bootstrap settings, loaded from TOML and overridden by flags
type Config struct {
	TickMS           int64   `toml:"tick_ms"`
	LerpRate         float64 `toml:"lerp_rate"`
	SeedLength       int     `toml:"seed_length"`
	InitialDirection string  `toml:"initial_direction"`
	GridHalfSize     int     `toml:"grid_half_size"`
	TreatCount       int     `toml:"treat_count"`
	RNGSeed          uint64  `toml:"rng_seed"`
	DebugAddr        string  `toml:"debug_addr"`
	Sound            bool    `toml:"sound"`

	// Keys maps action names to extra bindings applied over the defaults
	Keys map[string][]string `toml:"keys"`
}

// Direction names accepted by initial_direction
const (
	DirectionNone  = "none"
	DirectionLeft  = "left"
	DirectionRight = "right"
	DirectionUp    = "up"
	DirectionDown  = "down"
)

var directionDeltas = map[string]core.Point{
	DirectionNone:  {},
	DirectionLeft:  {X: 1},
	DirectionRight: {X: -1},
	DirectionUp:    {Y: 1},
	DirectionDown:  {Y: -1},
}

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration
func Default() Config {
	return Config{
		TickMS:           parameter.DefaultTickInterval.Milliseconds(),
		LerpRate:         parameter.DefaultLerpRate,
		SeedLength:       parameter.DefaultSeedLength,
		InitialDirection: DirectionNone,
		GridHalfSize:     parameter.DefaultGridHalfSize,
		TreatCount:       parameter.DefaultTreatCount,
		RNGSeed:          1,
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := LoadBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadBytes decodes TOML over the defaults and rejects unknown keys
func LoadBytes(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	return cfg, nil
}

// Validate checks ranges; tuning values outside live bounds are errors here
// rather than clamped, since they come from the user at startup
func (c Config) Validate() error {
	tick := c.TickInterval()
	if tick < parameter.MinTickInterval || tick > parameter.MaxTickInterval {
		return fmt.Errorf("tick_ms %d outside [%d, %d]: %w", c.TickMS,
			parameter.MinTickInterval.Milliseconds(), parameter.MaxTickInterval.Milliseconds(), ErrInvalidConfig)
	}
	if c.LerpRate < parameter.MinLerpRate || c.LerpRate > parameter.MaxLerpRate || math.IsNaN(c.LerpRate) {
		return fmt.Errorf("lerp_rate %v outside [%v, %v]: %w", c.LerpRate,
			parameter.MinLerpRate, parameter.MaxLerpRate, ErrInvalidConfig)
	}
	if c.SeedLength < 1 || c.SeedLength > parameter.MaxSeedLength {
		return fmt.Errorf("seed_length %d outside [1, %d]: %w", c.SeedLength, parameter.MaxSeedLength, ErrInvalidConfig)
	}
	if c.GridHalfSize < 1 || c.GridHalfSize > parameter.MaxGridHalfSize {
		return fmt.Errorf("grid_half_size %d outside [1, %d]: %w", c.GridHalfSize, parameter.MaxGridHalfSize, ErrInvalidConfig)
	}
	if c.SeedLength > c.GridHalfSize+1 {
		return fmt.Errorf("seed_length %d does not fit grid_half_size %d: %w", c.SeedLength, c.GridHalfSize, ErrInvalidConfig)
	}
	if c.TreatCount < 0 || c.TreatCount > parameter.MaxTreatCount {
		return fmt.Errorf("treat_count %d outside [0, %d]: %w", c.TreatCount, parameter.MaxTreatCount, ErrInvalidConfig)
	}
	if _, err := c.Direction(); err != nil {
		return err
	}
	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalidConfig)
	}
	return nil
}

// KeyMap builds the key bindings: defaults plus the [keys] table
func (c Config) KeyMap() (*input.KeyMap, error) {
	return input.LoadKeyConfig(c.Keys)
}

// TickInterval returns tick_ms as a duration
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Direction resolves initial_direction to a grid step
func (c Config) Direction() (core.Point, error) {
	d, ok := directionDeltas[strings.ToLower(strings.TrimSpace(c.InitialDirection))]
	if !ok {
		return core.Point{}, fmt.Errorf("initial_direction %q: %w", c.InitialDirection, ErrInvalidConfig)
	}
	return d, nil
}

// PresetTreats returns the fixed treat cells used when at least two treats are configured
func (c Config) PresetTreats() []core.Point {
	if c.TreatCount < 2 {
		return nil
	}
	out := make([]core.Point, 0, len(parameter.PresetTreatCells))
	for _, p := range parameter.PresetTreatCells {
		out = append(out, core.Point{X: p.X, Y: p.Y})
	}
	return out
}
