package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
	"github.com/preston-bernstein/roster-filter-service/internal/providers"
)

const (
	defaultInterval    = 6 * time.Hour
	defaultConcurrency = 2
)

// RosterSink receives freshly loaded league rosters.
type RosterSink interface {
	ReplaceLeague(code string, roster []players.Player)
}

// SnapshotWriter persists league roster snapshots to disk.
type SnapshotWriter interface {
	WriteRoster(season, league string, snapshot players.RosterSnapshot) error
}

// Config selects what the poller loads and how often.
type Config struct {
	Season       string
	Leagues      []leagues.League
	Interval     time.Duration
	Concurrency  int
	ProviderName string
}

// Poller loads every configured league on an interval, replacing each league's
// roster on success and leaving the previous one in place on failure.
type Poller struct {
	provider providers.RosterProvider
	sink     RosterSink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	cfg      Config
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	FailedLeagues       []string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.RosterProvider, sink RosterSink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		cfg:      cfg,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.cfg.Interval)
	p.startMu.Unlock()

	go func() {
		p.logInfo("poller started",
			slog.Int64(logging.FieldDurationMS, p.cfg.Interval.Milliseconds()),
			slog.String(logging.FieldSeason, p.cfg.Season),
		)
		// Initial fetch to warm data on boot.
		_ = p.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				_ = p.Refresh(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one polling cycle across every league, at most Concurrency at a time.
// The cycle counts as a success when at least one league loaded. The returned error
// joins the failures of individual leagues.
func (p *Poller) Refresh(ctx context.Context) error {
	start := p.now()
	p.recordAttempt(start)

	errs := make([]error, len(p.cfg.Leagues))
	var g errgroup.Group
	g.SetLimit(p.cfg.Concurrency)
	for i, league := range p.cfg.Leagues {
		g.Go(func() error {
			errs[i] = p.loadLeague(ctx, league)
			return nil
		})
	}
	_ = g.Wait()

	var failed []string
	for i, err := range errs {
		if err != nil {
			failed = append(failed, p.cfg.Leagues[i].Code)
		}
	}
	cycleErr := errors.Join(errs...)
	elapsed := time.Since(start)

	if len(p.cfg.Leagues) > 0 && len(failed) == len(p.cfg.Leagues) {
		p.metrics.RecordPollerCycle(elapsed, cycleErr)
		p.logError("poller refresh failed", cycleErr, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
		p.recordFailure(cycleErr, failed, start)
		return cycleErr
	}

	p.metrics.RecordPollerCycle(elapsed, nil)
	p.recordSuccess(cycleErr, failed, start)
	p.logInfo("poller refreshed rosters",
		logging.FieldCount, len(p.cfg.Leagues)-len(failed),
		"failed_leagues", failed,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return cycleErr
}

func (p *Poller) loadLeague(ctx context.Context, league leagues.League) error {
	if p.provider == nil {
		return providers.ErrProviderUnavailable
	}
	roster, err := p.provider.FetchPlayers(ctx, p.cfg.Season, league)
	if err != nil {
		p.logError("league fetch failed", err, slog.String(logging.FieldLeague, league.Code))
		return fmt.Errorf("league %s: %w", league.Code, err)
	}

	if p.sink != nil {
		p.sink.ReplaceLeague(league.Code, roster)
	}

	if p.writer != nil {
		snap := players.NewRosterSnapshot(p.cfg.Season, league.Code, p.cfg.ProviderName, p.now(), roster)
		if writeErr := p.writer.WriteRoster(p.cfg.Season, league.Code, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr, slog.String(logging.FieldLeague, league.Code))
		}
	}
	return nil
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	logging.Info(p.logger, msg, args...)
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	logging.Error(p.logger, msg, err, attrs...)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(partial error, failed []string, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	if partial != nil {
		p.status.LastError = partial.Error()
	}
	p.status.FailedLeagues = failed
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, failed []string, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.FailedLeagues = failed
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	st := p.status
	st.FailedLeagues = append([]string(nil), p.status.FailedLeagues...)
	return st
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.RosterProvider {
	return p.provider
}
