package server

import (
	"log/slog"

	"github.com/preston-bernstein/roster-filter-service/internal/config"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
	"github.com/preston-bernstein/roster-filter-service/internal/providers"
	"github.com/preston-bernstein/roster-filter-service/internal/providers/apifootball"
	"github.com/preston-bernstein/roster-filter-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.RosterProvider {
	switch cfg.Provider {
	case fixture.ProviderName, "":
		return fixture.New()
	case apifootball.ProviderName:
		return apifootball.NewClient(apifootball.Config{
			BaseURL:  cfg.APIFootball.BaseURL,
			APIKey:   cfg.APIFootball.APIKey,
			MaxPages: cfg.APIFootball.MaxPages,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
