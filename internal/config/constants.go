package config

import "time"

const (
	defaultPort = "4000"
	// Rosters change slowly; a few refreshes a day keeps well inside upstream quotas.
	defaultPollInterval    = 6 * time.Hour
	defaultPollConcurrency = 2
	defaultProvider        = "fixture"
	defaultSessionTTL      = 30 * time.Minute
	defaultMetricsPort     = "9090"
	defaultServiceName     = "roster-filter-service"
	defaultSnapshotDir     = "data/snapshots"
	defaultSnapshotSeasons = 2

	defaultAPIFootballBaseURL = "https://v3.football.api-sports.io"
	defaultAPIFootballPages   = 3
	// Free API-Football plans allow 10 requests/minute.
	defaultProviderRateInterval = 6 * time.Second
)
