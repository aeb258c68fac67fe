package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultPollInterval, cfg.PollInterval)
	assert.Equal(t, defaultPollConcurrency, cfg.PollConcurrency)
	assert.Equal(t, defaultProvider, cfg.Provider)
	assert.Equal(t, defaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, defaultSnapshotDir, cfg.SnapshotDir)
	assert.Equal(t, defaultAPIFootballBaseURL, cfg.APIFootball.BaseURL)
	assert.Empty(t, cfg.APIFootball.APIKey)
	assert.Equal(t, defaultProviderRateInterval, cfg.APIFootball.RateInterval)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultMetricsPort, cfg.Metrics.Port)
	assert.Equal(t, defaultServiceName, cfg.Metrics.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("POLL_INTERVAL", "45s")
	t.Setenv("POLL_CONCURRENCY", "4")
	t.Setenv("PROVIDER", "apifootball")
	t.Setenv("CATALOG_FILE", "/etc/leagues.yaml")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("APIFOOTBALL_BASE_URL", "http://example.com/api")
	t.Setenv("APIFOOTBALL_API_KEY", "secret-key")
	t.Setenv("APIFOOTBALL_MAX_PAGES", "7")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SNAPSHOT_RETENTION_SEASONS", "5")
	t.Setenv("ADMIN_TOKEN", "admin-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.PollInterval)
	assert.Equal(t, 4, cfg.PollConcurrency)
	assert.Equal(t, "apifootball", cfg.Provider)
	assert.Equal(t, "/etc/leagues.yaml", cfg.CatalogFile)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "http://example.com/api", cfg.APIFootball.BaseURL)
	assert.Equal(t, "secret-key", cfg.APIFootball.APIKey)
	assert.Equal(t, 7, cfg.APIFootball.MaxPages)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5, cfg.SnapshotSeasons)
	assert.Equal(t, "admin-secret", cfg.AdminToken)
}

func TestLoadInvalidDurationErrors(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "0s")
	t.Setenv("POLL_CONCURRENCY", "-1")
	t.Setenv("SESSION_TTL", "-5m")
	t.Setenv("APIFOOTBALL_MAX_PAGES", "0")
	t.Setenv("SNAPSHOT_RETENTION_SEASONS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPollInterval, cfg.PollInterval)
	assert.Equal(t, defaultPollConcurrency, cfg.PollConcurrency)
	assert.Equal(t, defaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, defaultAPIFootballPages, cfg.APIFootball.MaxPages)
	assert.Equal(t, defaultSnapshotSeasons, cfg.SnapshotSeasons)
}
