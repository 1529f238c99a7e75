// SPDX-License-Identifier: MIT

// Package config holds the settings shared by the le, lsq and lc commands.
// Settings come from Default(), optionally overlaid by a TOML file; command
// flags given explicitly on the command line win over both.
//
// Example file:
//
//	log_level = "info"
//	verbose   = true
//
//	[lsq]
//	degree   = 3
//	weighted = true
package config

import (
	"errors"
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/pelletier/go-toml/v2"
)

// Defaults (single source of truth for flag defaults too).
const (
	DefaultLogLevel = "warn"
	DefaultDegree   = 1
)

// ErrInvalid is returned when a loaded setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the complete configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Verbose prints input (and, for lc, reduced) matrices.
	Verbose bool `toml:"verbose"`

	LSQ LSQ `toml:"lsq"`
}

// LSQ configures the least-squares tool.
type LSQ struct {
	Degree   int  `toml:"degree"`   // polynomial degree, >= 1
	Weighted bool `toml:"weighted"` // local weighted fit per evaluation point
	Diff     bool `toml:"diff"`     // print differences in the approximation report
	NoStdin  bool `toml:"no_stdin"` // do not read evaluation points from stdin
	Check    bool `toml:"check"`    // cross-check the fit against QR
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		LSQ:      LSQ{Degree: DefaultDegree},
	}
}

// Load returns Default() overlaid with the TOML file at path. An empty path
// returns the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := logging.LevelFromString(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.LSQ.Degree < 1 {
		return fmt.Errorf("%w: lsq.degree %d", ErrInvalid, c.LSQ.Degree)
	}

	return nil
}
