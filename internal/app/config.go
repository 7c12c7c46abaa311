package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/MichaelDuPlessis/game-of-life/internal/core"
	"github.com/MichaelDuPlessis/game-of-life/pkg/pattern"

	"github.com/caarlos0/env/v11"
)

// Config represents the parameters shared by the terminal and GUI shells.
// Values come from defaults, then GOL_* environment variables, then flags.
type Config struct {
	Width       int    `env:"GOL_WIDTH"`
	Height      int    `env:"GOL_HEIGHT"`
	Scale       int    `env:"GOL_SCALE"`
	TPS         int    `env:"GOL_TPS"`
	Seed        int64  `env:"GOL_SEED"`
	Pattern     string `env:"GOL_PATTERN"`
	Workers     int    `env:"GOL_WORKERS"`
	Generations int    `env:"GOL_GENERATIONS"`
	Paused      bool   `env:"GOL_PAUSED"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 30, Height: 30, Scale: 12, TPS: 10, Seed: 42}
}

// LoadEnv overrides fields whose environment variable is set.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to load instead of a random board")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row-parallel workers per generation (0 or 1 is serial)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "run this many generations headless and exit")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// Validate rejects values no shell can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Pattern == "" && (c.Width < 0 || c.Height < 0) {
		errs = append(errs, fmt.Errorf("dimensions %dx%d must not be negative", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations %d must not be negative", c.Generations))
	}
	return errors.Join(errs...)
}

// Session builds the session described by the config: the pattern file when
// one is set, otherwise a random Width*Height board.
func (c *Config) Session() (*core.Session, error) {
	var s *core.Session
	if c.Pattern != "" {
		g, err := pattern.Load(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("load pattern: %w", err)
		}
		s = core.FromGrid(g, c.Seed)
	} else {
		s = core.NewSession(c.Width, c.Height, c.Seed)
	}
	s.SetWorkers(c.Workers)
	return s, nil
}
