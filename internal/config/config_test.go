package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8010, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20, cfg.MaxQubits)
	assert.Equal(t, 3, cfg.DefaultDepth)
	assert.Equal(t, 4096, cfg.DefaultShots)
	assert.Equal(t, int64(42), cfg.DefaultSeed)
	assert.Equal(t, "neldermead", cfg.OptimizerMode)
	assert.Equal(t, 90, cfg.RetentionDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("QAOA_MAX_QUBITS", "12")
	t.Setenv("QAOA_OPTIMIZER", "random")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("QAOA_SEED", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, 12, cfg.MaxQubits)
	assert.Equal(t, "random", cfg.OptimizerMode)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, int64(7), cfg.DefaultSeed)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          8010,
			MaxQubits:     20,
			DefaultDepth:  3,
			DefaultShots:  4096,
			OptimizerMode: "neldermead",
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.MaxQubits = 30
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.DefaultDepth = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.OptimizerMode = "annealing"
	assert.Error(t, cfg.Validate())
}
