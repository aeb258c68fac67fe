package apifootball

import "time"

const (
	// ProviderName identifies API-Football data in logs and metrics.
	ProviderName = "apifootball"

	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 3
	apiKeyHeader       = "x-apisports-key"
	remainingHeader    = "x-ratelimit-requests-remaining"
)
