// SPDX-License-Identifier: MIT

// Package cli holds the plumbing shared by the command-line tools: the
// --config / --log-level / -v flags, logger levels, and the verbose dump.
package cli

import (
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/config"
	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/mtxio"
)

var log = logging.Logger("cli")

// Flag names shared by every tool.
const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagVerbose  = "verbose"
)

// DefaultVerboseUsage is the -v help text when a tool sets none.
const DefaultVerboseUsage = "verbose output"

// Common are the flags every tool accepts.
type Common struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool

	// VerboseUsage is the tool's help text for -v (what it prints).
	VerboseUsage string
}

// Register adds the common flags to cmd.
func (c *Common) Register(cmd *cobra.Command) {
	usage := c.VerboseUsage
	if usage == "" {
		usage = DefaultVerboseUsage
	}
	fs := cmd.Flags()
	fs.StringVar(&c.ConfigPath, FlagConfig, "", "TOML configuration file")
	fs.StringVar(&c.LogLevel, FlagLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.BoolVarP(&c.Verbose, FlagVerbose, "v", false, usage)
}

// Resolve loads the configuration file, lets explicitly set flags override
// it, and applies the log level to every logger.
func (c *Common) Resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed(FlagLogLevel) {
		cfg.LogLevel = c.LogLevel
	}
	if fs.Changed(FlagVerbose) {
		cfg.Verbose = c.Verbose
	}

	level, err := logging.LevelFromString(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logging.SetAllLoggers(level)
	log.Debugf("configuration: %+v", cfg)

	return cfg, nil
}

// DumpMatrix prints m when verbose is set.
func DumpMatrix(w io.Writer, m *matrix.Matrix, verbose bool) error {
	if !verbose {
		return nil
	}

	return mtxio.WriteMatrix(w, m)
}
