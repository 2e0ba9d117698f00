package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Greater(t, cfg.Step, 0.0)
	assert.GreaterOrEqual(t, cfg.TMax, cfg.TMin)
	assert.NotEmpty(t, cfg.Steps)
	require.NoError(t, cfg.RunConfig().Validate())
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.A = 0.5
	cfg.TMax = 12
	cfg.Steps = []float64{0.2, 0.1}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "unstable")

	for _, name := range names {
		p := GetPreset(name)
		require.NotNil(t, p, name)
		require.NoError(t, p.RunConfig().Validate(), name)
	}

	assert.Nil(t, GetPreset("bogus"))
}

func TestUnstablePresetIsBeyondLimit(t *testing.T) {
	p := GetPreset("unstable")
	require.NotNil(t, p)
	assert.Greater(t, p.Step, 1/p.A, "unstable preset must step past 1/A")
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("default")
	a.Steps[0] = 99

	b := GetPreset("default")
	assert.NotEqual(t, 99.0, b.Steps[0])
}
