package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppConfigOmittedFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
tracking:
  staleThresholdMs: 5000
`)

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(5000), cfg.Tracking.StaleThresholdMs)

	want := Default()
	want.StaleThresholdMs = 5000
	if diff := cmp.Diff(want, cfg.Tracking); diff != "" {
		t.Errorf("tracking config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAppConfigDefaultPort(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, "tracking: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, 17181, cfg.Server.Port)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadAppConfigRejectsInvalidThresholds(t *testing.T) {
	_, err := LoadAppConfig(writeConfig(t, `
tracking:
  staleThresholdMs: 30000
  offlineThresholdMs: 30000
`))
	assert.Error(t, err)
}

func TestLoadAppConfigProfileOverrides(t *testing.T) {
	cfg, err := LoadAppConfig(writeConfig(t, `
profiles:
  - name: drones
    tracking:
      predictionWindowMs: 500
  - name: buses
    tracking:
      stationaryDurationMs: 60000
`))
	require.NoError(t, err)
	require.Len(t, cfg.Profiles, 2)

	// Profiles only name their overrides; everything else stays default.
	drones := cfg.SelectProfile("drones")
	assert.Equal(t, int64(500), drones.PredictionWindowMs)
	assert.Equal(t, Default().StaleThresholdMs, drones.StaleThresholdMs)
	assert.True(t, drones.EnableAnimation)
}

func TestLoadAppConfigRejectsUnnamedProfile(t *testing.T) {
	_, err := LoadAppConfig(writeConfig(t, `
profiles:
  - tracking:
      predictionWindowMs: 500
`))
	assert.Error(t, err)
}

func TestSelectProfileFallbacks(t *testing.T) {
	cfg := AppConfig{
		Tracking: Default(),
		Profiles: []Profile{
			{Name: "first", Tracking: Default()},
			{Name: "second", Tracking: Default()},
		},
	}
	cfg.Profiles[0].Tracking.PredictionWindowMs = 1
	cfg.Profiles[1].Tracking.PredictionWindowMs = 2
	cfg.Tracking.PredictionWindowMs = 3

	assert.Equal(t, int64(2), cfg.SelectProfile("second").PredictionWindowMs)
	// Unknown names fall back to the first profile.
	assert.Equal(t, int64(1), cfg.SelectProfile("ghost").PredictionWindowMs)

	// With no profiles at all, the top-level section applies.
	cfg.Profiles = nil
	assert.Equal(t, int64(3), cfg.SelectProfile("ghost").PredictionWindowMs)
}

func TestValidateExpiryOrdering(t *testing.T) {
	cfg := Default()
	cfg.ExpiredThresholdMs = cfg.OfflineThresholdMs
	assert.Error(t, cfg.Validate())

	cfg.ExpiredThresholdMs = cfg.OfflineThresholdMs + 1
	assert.NoError(t, cfg.Validate())

	cfg.ExpiredThresholdMs = 0
	assert.NoError(t, cfg.Validate())
}
