package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
	"github.com/preston-bernstein/roster-filter-service/internal/store"
	"github.com/preston-bernstein/roster-filter-service/internal/teststubs"
)

var testLeagues = []leagues.League{
	{ID: 39, Code: "ENG", Name: "Premier League"},
	{ID: 61, Code: "FRA", Name: "Ligue 1"},
	{ID: 78, Code: "GER", Name: "Bundesliga"},
}

func testConfig(interval time.Duration) Config {
	return Config{
		Season:       "2024",
		Leagues:      testLeagues,
		Interval:     interval,
		Concurrency:  2,
		ProviderName: "stub",
	}
}

func sampleRosters() map[string][]players.Player {
	return map[string][]players.Player{
		"ENG": {{ID: 2, Name: "Harry Kane", Position: players.PositionAttacker}},
		"FRA": {{ID: 1, Name: "Neymar Jr.", Position: players.PositionAttacker}},
		"GER": {{ID: 3, Name: "Manuel Neuer", Position: players.PositionGoalkeeper}},
	}
}

func waitForFetch(t *testing.T, provider *teststubs.StubProvider) {
	t.Helper()
	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		require.FailNow(t, "timed out waiting for initial fetch")
	}
}

func newRosterService() *roster.Service {
	return roster.NewService(store.NewMemoryStore(), catalog.Default(), nil)
}

func TestPollerFetchesAndWritesSnapshots(t *testing.T) {
	provider := &teststubs.StubProvider{
		Rosters: sampleRosters(),
		Notify:  make(chan struct{}),
	}
	writer := &teststubs.StubSnapshotWriter{}
	svc := newRosterService()

	p := New(provider, svc, writer, nil, nil, testConfig(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	waitForFetch(t, provider)

	deadline := time.Now().Add(time.Second)
	for !p.Status().IsReady() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	_ = p.Stop(context.Background())

	for _, code := range []string{"ENG", "FRA", "GER"} {
		snap, ok := writer.Get("2024", code)
		require.True(t, ok, "expected snapshot written for %s", code)
		assert.Equal(t, 1, snap.Count, code)
		assert.Equal(t, "stub", snap.Provider, code)
	}
	assert.Len(t, svc.AllPlayers(), 3)
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	provider := &teststubs.StubProvider{Notify: make(chan struct{})}

	p := New(provider, newRosterService(), nil, nil, nil, testConfig(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	waitForFetch(t, provider)

	cancel()
	_ = p.Stop(context.Background())
	time.Sleep(20 * time.Millisecond)

	callsAfterStop := provider.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, callsAfterStop, provider.Calls.Load(), "no fetches after stop")
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, testConfig(time.Hour))

	require.NoError(t, p.Stop(context.Background()))
	require.NoError(t, p.Stop(context.Background()))
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, testConfig(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx)

	require.NoError(t, p.Stop(context.Background()))
}

func TestPollerDefaults(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, Config{})
	assert.Equal(t, defaultInterval, p.cfg.Interval)
	assert.Equal(t, defaultConcurrency, p.cfg.Concurrency)
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, nil, testConfig(time.Hour))
	p.started = true
	p.Start(context.Background())
	assert.Nil(t, p.ticker, "ticker should not be created when already started")
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("boom")}
	p := New(provider, newRosterService(), nil, nil, nil, testConfig(time.Minute))

	require.Error(t, p.Refresh(context.Background()), "every league fails")
	status := p.Status()
	assert.Equal(t, 1, status.ConsecutiveFailures)
	assert.NotEmpty(t, status.LastError)
	assert.Len(t, status.FailedLeagues, 3)
	assert.False(t, status.IsReady())

	provider.Err = nil
	provider.Rosters = sampleRosters()
	require.NoError(t, p.Refresh(context.Background()))
	status = p.Status()
	assert.Zero(t, status.ConsecutiveFailures)
	assert.False(t, status.LastSuccess.IsZero())
	assert.True(t, status.IsReady())
}

func TestPollerPartialFailureKeepsPreviousRoster(t *testing.T) {
	provider := &teststubs.StubProvider{Rosters: sampleRosters()}
	svc := newRosterService()
	p := New(provider, svc, nil, nil, nil, testConfig(time.Minute))

	require.NoError(t, p.Refresh(context.Background()))

	provider.Rosters = map[string][]players.Player{
		"ENG": {{ID: 20, Name: "New Signing"}},
		"GER": {},
	}
	provider.Errs = map[string]error{"FRA": errors.New("upstream down")}

	require.Error(t, p.Refresh(context.Background()), "expected joined league error")

	status := p.Status()
	assert.True(t, status.IsReady(), "partial success keeps readiness")
	assert.Zero(t, status.ConsecutiveFailures)
	assert.Equal(t, []string{"FRA"}, status.FailedLeagues)

	fra, _ := svc.League("FRA")
	require.Len(t, fra, 1)
	assert.Equal(t, "Neymar Jr.", fra[0].Name, "previous FRA roster kept")
	eng, _ := svc.League("ENG")
	require.Len(t, eng, 1)
	assert.Equal(t, "New Signing", eng[0].Name)
}

type peakTracker struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	mu       sync.Mutex
}

func (c *peakTracker) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	n := c.inFlight.Add(1)
	c.mu.Lock()
	if n > c.peak.Load() {
		c.peak.Store(n)
	}
	c.mu.Unlock()
	time.Sleep(10 * time.Millisecond)
	c.inFlight.Add(-1)
	return nil, nil
}

func TestPollerLimitsConcurrency(t *testing.T) {
	tracker := &peakTracker{}
	cfg := testConfig(time.Minute)
	cfg.Leagues = append(cfg.Leagues,
		leagues.League{ID: 135, Code: "ITA"},
		leagues.League{ID: 140, Code: "ESP"},
	)
	p := New(tracker, nil, nil, nil, nil, cfg)

	require.NoError(t, p.Refresh(context.Background()))
	assert.LessOrEqual(t, tracker.peak.Load(), int32(2))
}

func TestPollerWriteErrorLogsButContinues(t *testing.T) {
	provider := &teststubs.StubProvider{Rosters: sampleRosters()}
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("write failed")}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	p := New(provider, newRosterService(), writer, logger, metrics.NewRecorder(), testConfig(time.Minute))
	require.NoError(t, p.Refresh(context.Background()), "write errors should not fail the cycle")
	assert.Zero(t, p.Status().ConsecutiveFailures)
}

func TestPollerNilProviderFails(t *testing.T) {
	p := New(nil, nil, nil, nil, nil, testConfig(time.Minute))
	assert.Error(t, p.Refresh(context.Background()))
	assert.Nil(t, p.Provider())
}

func TestPollerProviderExposesWrappedProvider(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, nil, nil, nil, nil, testConfig(time.Minute))
	assert.Same(t, provider, p.Provider())
}

func BenchmarkPollerRefresh(b *testing.B) {
	provider := &teststubs.StubProvider{Rosters: sampleRosters()}
	p := New(provider, newRosterService(), &teststubs.StubSnapshotWriter{}, nil, nil, testConfig(time.Second))
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Refresh(ctx)
	}
}
