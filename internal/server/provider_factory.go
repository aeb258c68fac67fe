package server

import (
	"log/slog"

	"github.com/preston-bernstein/roster-filter-service/internal/config"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
	"github.com/preston-bernstein/roster-filter-service/internal/providers"
	"github.com/preston-bernstein/roster-filter-service/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.RosterProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider, base)
	if _, local := base.(*fixture.Provider); local {
		return providers.NewRetryingProvider(base, f.logger, f.metrics, name, 0, 0)
	}
	// Upstream quotas are per minute; every league request goes through one shared limiter.
	limited := providers.NewRateLimitedProvider(base, cfg.APIFootball.RateInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, 0, 0)
}
