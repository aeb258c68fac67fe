package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string        `env:"PORT" envDefault:"4000"`
	PollInterval    time.Duration `env:"POLL_INTERVAL" envDefault:"6h"`
	PollConcurrency int           `env:"POLL_CONCURRENCY" envDefault:"2"`
	Provider        string        `env:"PROVIDER" envDefault:"fixture"`
	CatalogFile     string        `env:"CATALOG_FILE"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SnapshotDir     string        `env:"SNAPSHOT_DIR" envDefault:"data/snapshots"`
	// SnapshotSeasons is how many seasons of roster snapshots stay on disk.
	SnapshotSeasons int               `env:"SNAPSHOT_RETENTION_SEASONS" envDefault:"2"`
	AdminToken      string            `env:"ADMIN_TOKEN"`
	LogLevel        string            `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string            `env:"LOG_FORMAT" envDefault:"text"`
	APIFootball     APIFootballConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Malformed values are reported; non-positive durations and counts fall back to defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.PollConcurrency <= 0 {
		c.PollConcurrency = defaultPollConcurrency
	}
	if c.Provider == "" {
		c.Provider = defaultProvider
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = defaultSessionTTL
	}
	if c.SnapshotDir == "" {
		c.SnapshotDir = defaultSnapshotDir
	}
	if c.SnapshotSeasons <= 0 {
		c.SnapshotSeasons = defaultSnapshotSeasons
	}
	c.APIFootball.normalize()
	c.Metrics.normalize()
}
