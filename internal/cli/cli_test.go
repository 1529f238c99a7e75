// SPDX-License-Identifier: MIT

package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/internal/cli"
	"github.com/katalvlaran/lineq/internal/config"
	"github.com/katalvlaran/lineq/matrix"
)

// resolveWith parses args into a fresh command and resolves the settings.
func resolveWith(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	var (
		common cli.Common
		cfg    config.Config
		err    error
	)
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err = common.Resolve(cmd)
			return nil
		},
	}
	common.Register(cmd)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return cfg, err
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"error\"\nverbose = true\n"), 0o600))

	cfg, err := resolveWith(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Verbose)

	cfg, err = resolveWith(t, "--config", path, "--log-level", "warn", "-v=false")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestResolve_Errors(t *testing.T) {
	_, err := resolveWith(t, "--log-level", "shout")
	require.Error(t, err)

	_, err = resolveWith(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDumpMatrix(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, cli.DumpMatrix(&sb, m, false))
	assert.Empty(t, sb.String())

	require.NoError(t, cli.DumpMatrix(&sb, m, true))
	assert.Equal(t, " 1.000000e+00  2.000000e+00 \n", sb.String())
}

func TestRegister_VerboseUsage(t *testing.T) {
	tests := []struct {
		name  string
		usage string
		want  string
	}{
		{"default", "", cli.DefaultVerboseUsage},
		{"tool specific", "print the fitted value at every sample point", "print the fitted value at every sample point"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			common := cli.Common{VerboseUsage: tc.usage}
			cmd := &cobra.Command{Use: "test"}
			common.Register(cmd)

			f := cmd.Flags().Lookup(cli.FlagVerbose)
			require.NotNil(t, f)
			assert.Equal(t, "v", f.Shorthand)
			assert.Equal(t, tc.want, f.Usage)
		})
	}
}
