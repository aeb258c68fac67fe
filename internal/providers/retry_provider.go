package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 30 * time.Second
)

// retryingProvider wraps a RosterProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        RosterProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	base         time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/base are <= 0, defaults are used.
// Generic failures back off exponentially with jitter; rate limited responses wait for their Retry-After.
// Errors marked with backoff.Permanent are returned immediately.
func NewRetryingProvider(inner RosterProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, base time.Duration) RosterProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if base <= 0 {
		base = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		base:         base,
		sleep:        sleepContext,
	}
}

func newExponentialPolicy(base time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = base
	b.MaxInterval = maxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0.5
	b.Reset()
	return b
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	// Each call owns its policy; leagues are fetched concurrently.
	policy := newExponentialPolicy(r.base)
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		roster, err := r.inner.FetchPlayers(ctx, season, league)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return roster, nil
		}
		lastErr = err

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}

		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			r.logWarn(ctx, "provider fetch failed permanently", league, "err", permanent.Err)
			return nil, permanent.Err
		}

		if attempt == r.maxAttempts {
			break
		}

		delay := computeDelay(policy, err)
		r.logWarn(ctx, "provider fetch retry", league,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay.String(),
			"err", err,
		)

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}

	r.logWarn(ctx, "provider fetch failed", league, "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

// computeDelay prefers the upstream Retry-After hint over the exponential policy.
func computeDelay(policy backoff.BackOff, err error) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	delay := policy.NextBackOff()
	if delay == backoff.Stop || delay < 0 {
		return maxBackoff
	}
	return delay
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, league leagues.League, args ...any) {
	args = append(args, slog.String(logging.FieldLeague, league.Code))
	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, msg, args...)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
