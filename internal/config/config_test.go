// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultDegree, cfg.LSQ.Degree)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
log_level = "debug"
verbose = true

[lsq]
degree = 3
weighted = true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 3, cfg.LSQ.Degree)
	assert.True(t, cfg.LSQ.Weighted)
	assert.False(t, cfg.LSQ.Diff, "unset keys keep their defaults")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "colour = \"red\"\n"))
		var strict *toml.StrictMissingError
		require.True(t, errors.As(err, &strict), "got %v", err)
	})
	t.Run("bad degree", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "[lsq]\ndegree = 0\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("bad log level", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "log_level = \"loud\"\n"))
		require.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("syntax", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "degree = = 1\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "none.toml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
