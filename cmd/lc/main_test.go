// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/lincode"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "code.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

func TestLc_Verbose(t *testing.T) {
	got, err := execute(t, "-v", writeFile(t, "1 1 0\n2 2 0\n"))
	require.NoError(t, err)
	assert.Equal(t,
		" 1.000000e+00  1.000000e+00  0.000000e+00 \n"+
			" 2.000000e+00  2.000000e+00  0.000000e+00 \n"+
			"\n"+
			" 1.000000e+00  1.000000e+00  0.000000e+00 \n",
		got)
}

func TestLc_Quiet(t *testing.T) {
	for _, flag := range []string{"-c", "-g"} {
		got, err := execute(t, flag, writeFile(t, "1 0 1\n0 1 1\n"))
		require.NoError(t, err, flag)
		assert.Empty(t, got, flag)
	}
}

func TestLc_Errors(t *testing.T) {
	_, err := execute(t, "-c", "-g", writeFile(t, "1 0\n"))
	require.Error(t, err, "-c and -g are exclusive")

	_, err = execute(t, writeFile(t, ""))
	require.Error(t, err, "an empty matrix cannot be reduced")

	_, err = execute(t)
	require.Error(t, err)
}

func TestRun_Kinds(t *testing.T) {
	var out bytes.Buffer
	path := writeFile(t, "1 0 1\n0 1 1\n")
	require.NoError(t, run(&out, path, lincode.Control, false))
	require.NoError(t, run(&out, path, lincode.Generator, true))
	assert.NotEmpty(t, out.String())
}
