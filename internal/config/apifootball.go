package config

import "time"

// APIFootballConfig controls how we talk to the API-Football service.
type APIFootballConfig struct {
	BaseURL      string        `env:"APIFOOTBALL_BASE_URL" envDefault:"https://v3.football.api-sports.io"`
	APIKey       string        `env:"APIFOOTBALL_API_KEY"`
	MaxPages     int           `env:"APIFOOTBALL_MAX_PAGES" envDefault:"3"`
	RateInterval time.Duration `env:"PROVIDER_RATE_INTERVAL" envDefault:"6s"`
}

func (c *APIFootballConfig) normalize() {
	if c.BaseURL == "" {
		c.BaseURL = defaultAPIFootballBaseURL
	}
	if c.MaxPages <= 0 {
		c.MaxPages = defaultAPIFootballPages
	}
	if c.RateInterval <= 0 {
		c.RateInterval = defaultProviderRateInterval
	}
}
