// Package config loads command-line defaults from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidEnv indicates an environment value outside its allowed range.
var ErrInvalidEnv = errors.New("config: invalid environment value")

// Env holds defaults for the bayesgrid command. Flags override them.
type Env struct {
	// Seed for posterior draws; 0 means the model file's seed.
	Seed uint64 `env:"BAYESGRID_SEED"`
	// Draws per run; 0 means the model file's count.
	Draws int `env:"BAYESGRID_DRAWS"`
	// Workers for posterior evaluation and sampling; 0 means the model
	// file's setting.
	Workers int `env:"BAYESGRID_WORKERS"`
	// PlotDir receives PNG plots when non-empty.
	PlotDir string `env:"BAYESGRID_PLOT_DIR"`
	// Widths of the credible intervals, comma separated.
	Widths []float64 `env:"BAYESGRID_WIDTHS" envSeparator:","`
}

// ParseEnv parses environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Env from the process environment and validates it.
func Load() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, e.Validate()
}

// LoadFrom is Load over an explicit variable map instead of the process
// environment.
func LoadFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, e.Validate()
}

// Validate checks ranges that the types alone do not enforce.
func (e Env) Validate() error {
	if e.Draws < 0 {
		return fmt.Errorf("%w: BAYESGRID_DRAWS=%d", ErrInvalidEnv, e.Draws)
	}
	if e.Workers < 0 {
		return fmt.Errorf("%w: BAYESGRID_WORKERS=%d", ErrInvalidEnv, e.Workers)
	}
	for _, w := range e.Widths {
		if !(w > 0 && w <= 1) {
			return fmt.Errorf("%w: BAYESGRID_WIDTHS contains %v", ErrInvalidEnv, w)
		}
	}
	return nil
}
