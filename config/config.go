// Package config loads optimizer run settings from TOML.
//
// Every key is optional; an absent key keeps its default. Explicit zeros are
// honored where they are legal (max_iterations = 0, eps = 0).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/twoopt/tsp"
)

// DefaultRuns is the number of timed repetitions per instance.
const DefaultRuns = 10

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid")

	// ErrUnknownKey reports TOML keys that map to no field.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the decoded form of a run configuration file.
type Config struct {
	Runs             int     `toml:"runs" validate:"min=1"`
	MaxIterations    int     `toml:"max_iterations" validate:"min=0"`
	Eps              float64 `toml:"eps" validate:"min=0"`
	RequireSymmetric bool    `toml:"require_symmetric"`
	Progress         bool    `toml:"progress"`
	Verbose          bool    `toml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Runs:          DefaultRuns,
		MaxIterations: tsp.DefaultMaxIterations,
		Eps:           tsp.DefaultEps,
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	cfg := Default()
	md, err := toml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	ApplyDefaults(&cfg)
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ApplyDefaults fills fields whose zero value is not a legal setting.
func ApplyDefaults(c *Config) {
	if c.Runs == 0 {
		c.Runs = DefaultRuns
	}
}

// Options maps the configuration onto optimizer options.
func (c Config) Options() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.MaxIterations = c.MaxIterations
	opts.Eps = c.Eps
	opts.RequireSymmetric = c.RequireSymmetric

	return opts
}

// Validate checks field ranges. Messages name the TOML keys.
func (c Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	// min=0 admits +Inf, which TOML can spell.
	if math.IsNaN(c.Eps) || math.IsInf(c.Eps, 0) {
		return fmt.Errorf("%w: eps must be finite, got %v", ErrInvalidConfig, c.Eps)
	}

	return nil
}
