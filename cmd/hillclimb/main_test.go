package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/internal/config"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newCommand(&out, io.Discard).Run(context.Background(), append([]string{"hillclimb"}, args...))
	return out.String(), err
}

func TestCLI_PositionalInput(t *testing.T) {
	out, err := runCLI(t, writeFile(t, "input.txt", sample))
	require.NoError(t, err)
	assert.Equal(t, "part 1: 31\npart 2: 29\n", out)
}

func TestCLI_FlagsOverrideProfile(t *testing.T) {
	input := writeFile(t, "input.txt", sample)
	profile := writeFile(t, "run.hcl", `
input       = "`+filepath.ToSlash(input)+`"
strategy    = "per-start"
step_budget = 2
`)

	_, err := runCLI(t, "--config", profile)
	require.Error(t, err, "the profile budget is too small")

	out, err := runCLI(t, "--config", profile, "--step-budget", "0", "--strategy", "reverse")
	require.NoError(t, err, "an explicit zero clears the profile budget")
	assert.Equal(t, "part 1: 31\npart 2: 29\n", out)

	out, err = runCLI(t, "--config", profile, "--step-budget", "1000", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "part 1: 31\npart 2: 29\n", out)
}

func TestCLI_Environment(t *testing.T) {
	t.Setenv("HILLCLIMB_INPUT", writeFile(t, "input.txt", sample))
	t.Setenv("HILLCLIMB_STRATEGY", "reverse")

	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Equal(t, "part 1: 31\npart 2: 29\n", out)
}

func TestCLI_Errors(t *testing.T) {
	_, err := runCLI(t)
	assert.ErrorContains(t, err, "no input")

	_, err = runCLI(t, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = runCLI(t, "--strategy", "sideways", writeFile(t, "input.txt", sample))
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
}

func TestCLI_ExitCodes(t *testing.T) {
	input := writeFile(t, "input.txt", sample)

	tests := []struct {
		name string
		args []string
		code int
		is   error
	}{
		{"invalid strategy", []string{"--strategy", "sideways", input}, exitUsage, config.ErrInvalidProfile},
		{"negative workers", []string{"--workers=-1", input}, exitUsage, config.ErrInvalidProfile},
		{"no input", nil, exitUsage, nil},
		{"budget exhausted", []string{"--step-budget", "2", input}, exitFailure, climb.ErrBudgetExhausted},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt")}, exitFailure, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
			msg, code := exitStatus(err)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestCLI_InvalidStrategyExitError(t *testing.T) {
	_, err := runCLI(t, "--strategy", "sideways", writeFile(t, "input.txt", sample))

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, exitUsage, exitErr.Code)
	assert.Contains(t, exitErr.Message, "sideways")
}
