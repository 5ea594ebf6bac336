package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/internal/config"
)

const full = `
input       = "input.txt"
strategy    = "reverse"
workers     = 4
step_budget = 1000
max_depth   = 50

log {
  level  = "debug"
  format = "json"
}
`

func TestParse_Full(t *testing.T) {
	p, err := config.Parse([]byte(full), "full.hcl")
	require.NoError(t, err)

	assert.Equal(t, "input.txt", p.Input)
	assert.Equal(t, "reverse", p.Strategy)
	assert.Equal(t, 4, p.Workers)
	assert.Equal(t, 1000, p.StepBudget)
	assert.Equal(t, 50, p.MaxDepth)
	require.NotNil(t, p.Log)
	assert.Equal(t, "debug", p.Log.Level)
	assert.Equal(t, "json", p.Log.Format)
	assert.NoError(t, p.Validate())
	assert.Len(t, p.Options(), 4)
}

// TestParse_PartialMergesOverDefault keeps defaults for omitted attributes.
func TestParse_PartialMergesOverDefault(t *testing.T) {
	p, err := config.Parse([]byte(`workers = 8`), "partial.hcl")
	require.NoError(t, err)
	assert.Nil(t, p.Log)

	merged := config.Merge(config.Default(), p)
	assert.Equal(t, 8, merged.Workers)
	assert.Equal(t, "per-start", merged.Strategy)
	require.NotNil(t, merged.Log)
	assert.Equal(t, "info", merged.Log.Level)
	assert.Equal(t, "text", merged.Log.Format)
}

// TestMerge_LogBlockIsLayered overrides only the fields that are set.
func TestMerge_LogBlockIsLayered(t *testing.T) {
	over := config.Profile{Log: &config.Log{Format: "json"}}
	merged := config.Merge(config.Default(), over)
	assert.Equal(t, "info", merged.Log.Level)
	assert.Equal(t, "json", merged.Log.Format)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte(`workers = `), "broken.hcl")
	assert.Error(t, err)

	_, err = config.Parse([]byte(`unknown = 1`), "unknown.hcl")
	assert.Error(t, err)

	_, err = config.Parse([]byte(`workers = "many"`), "type.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	bad := config.Profile{
		Strategy:   "sideways",
		Workers:    -1,
		StepBudget: -1,
		MaxDepth:   -1,
		Log:        &config.Log{Level: "loud", Format: "xml"},
	}
	err := bad.Validate()
	require.ErrorIs(t, err, config.ErrInvalidProfile)
	for _, want := range []string{"sideways", "workers", "step_budget", "max_depth", "loud", "xml"} {
		assert.Contains(t, err.Error(), want)
	}

	assert.NoError(t, config.Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "reverse", p.Strategy)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
