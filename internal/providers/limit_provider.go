package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
)

const defaultRateInterval = 6 * time.Second

// rateLimitedProvider wraps a RosterProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     RosterProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a RosterProvider that allows one call per interval.
// The first call passes immediately; later calls block until a token is available.
func NewRateLimitedProvider(next RosterProvider, interval time.Duration, logger *slog.Logger) RosterProvider {
	if interval <= 0 {
		interval = defaultRateInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled",
			slog.String(logging.FieldLeague, league.Code), "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch",
		slog.String(logging.FieldSeason, season), slog.String(logging.FieldLeague, league.Code))
	return p.next.FetchPlayers(ctx, season, league)
}
