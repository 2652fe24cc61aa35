package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Env-driven tests mutate process state via t.Setenv, so none of them run in
// parallel.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Initial)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOLD_INITIAL", "42")
	t.Setenv("HOLD_FORMAT", "plain")
	t.Setenv("HOLD_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Initial)
	assert.Equal(t, FormatPlain, cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	t.Setenv("HOLD_FORMAT", "yaml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Config{Format: FormatText}.Validate())
	assert.NoError(t, Config{Format: FormatPlain}.Validate())
	assert.Error(t, Config{Format: ""}.Validate())
}
