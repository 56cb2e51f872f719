package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gridline", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, -150, cfg.Engine.OddsBandMin)
	assert.Equal(t, 400, cfg.Engine.OddsBandMax)
	assert.Equal(t, 0.85, cfg.Engine.ConservativeFactor)
	assert.Equal(t, 10, cfg.Engine.TopN)
	assert.True(t, cfg.Engine.DedupPlayers)
	assert.Equal(t, 1, cfg.Engine.MaxReceiversPerTeam)
	assert.Equal(t, 0.85, cfg.Settlement.MatchThreshold)
	assert.Equal(t, 100.0, cfg.Settlement.StakeUnits)
	assert.False(t, cfg.Metrics.Enabled)

	assert.NoError(t, Validate(cfg))
}

func TestLoadWithDefaultsFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  log_level: debug
engine:
  top_n: 5
  conservative_factor: 0.9
settlement:
  match_threshold: 0.9
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.Engine.TopN)
	assert.Equal(t, 0.9, cfg.Engine.ConservativeFactor)
	assert.Equal(t, 0.9, cfg.Settlement.MatchThreshold)
	// Untouched values keep their defaults
	assert.Equal(t, -150, cfg.Engine.OddsBandMin)
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_GRIDLINE_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  name: gridline
  environment: staging
  log_level: ${TEST_GRIDLINE_LOG_LEVEL}
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "staging", cfg.App.Environment)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
	cfg.App.LogLevel = "info"

	cfg.App.Environment = "qa"
	assert.Error(t, Validate(cfg))
	cfg.App.Environment = "production"

	cfg.Engine.ConservativeFactor = 1.5
	assert.Error(t, Validate(cfg))
	cfg.Engine.ConservativeFactor = 0.85

	cfg.Metrics.Enabled = true
	cfg.Metrics.Address = ""
	assert.Error(t, Validate(cfg))

	cfg.Metrics.Address = ":9090"
	assert.NoError(t, Validate(cfg))
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{App: AppConfig{Environment: "production"}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
}
