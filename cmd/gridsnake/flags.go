package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/gridsnake/config"
)

// options holds parsed command-line flags
type options struct {
	configPath string
	debug      bool

	fs *flag.FlagSet

	tickMS     int64
	lerpRate   float64
	seedLength int
	treats     int
	seed       uint64
	debugAddr  string
	sound      bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.configPath, "config", "", "path to TOML config file")
	fs.BoolVar(&o.debug, "debug", false, "write logs to logs/gridsnake.log")
	fs.Int64Var(&o.tickMS, "tick", 0, "step interval in milliseconds")
	fs.Float64Var(&o.lerpRate, "rate", 0, "visual interpolation rate per second")
	fs.IntVar(&o.seedLength, "seed-length", 0, "initial chain length")
	fs.IntVar(&o.treats, "treats", 0, "number of treats kept on the plane")
	fs.Uint64Var(&o.seed, "seed", 0, "treat placement RNG seed")
	fs.StringVar(&o.debugAddr, "debug-addr", "", "debug tuning server address, empty disables")
	fs.BoolVar(&o.sound, "sound", false, "play a chime on growth")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.fs = fs
	return o, nil
}

// apply overrides cfg with every flag set explicitly on the command line
func (o *options) apply(cfg *config.Config) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.TickMS = o.tickMS
		case "rate":
			cfg.LerpRate = o.lerpRate
		case "seed-length":
			cfg.SeedLength = o.seedLength
		case "treats":
			cfg.TreatCount = o.treats
		case "seed":
			cfg.RNGSeed = o.seed
		case "debug-addr":
			cfg.DebugAddr = o.debugAddr
		case "sound":
			cfg.Sound = o.sound
		}
	})
}

// loadConfig reads the config file, applies flag overrides and validates the result
func (o *options) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	o.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
