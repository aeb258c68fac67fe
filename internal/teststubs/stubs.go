package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// StubProvider is a test double for providers.RosterProvider.
// Rosters and Errs are keyed by league code; Err applies to every league.
type StubProvider struct {
	Rosters map[string][]players.Player
	Errs    map[string]error
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	notifyOnce sync.Once
}

// FetchPlayers returns the configured roster and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	_ = ctx
	_ = season
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.Errs[league.Code]; err != nil {
		return nil, err
	}
	return s.Rosters[league.Code], nil
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Rosters map[string]players.RosterSnapshot // keyed by season/league
	LoadErr error
}

// LoadRoster returns the snapshot stored under season/league if present.
func (s *StubSnapshotStore) LoadRoster(season, league string) (players.RosterSnapshot, error) {
	if s.LoadErr != nil {
		return players.RosterSnapshot{}, s.LoadErr
	}
	snap, ok := s.Rosters[Key(season, league)]
	if !ok {
		return players.RosterSnapshot{}, errors.New("snapshot not found")
	}
	return snap, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter. Safe for concurrent use.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[string]players.RosterSnapshot // keyed by season/league
	Err     error
}

// WriteRoster records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteRoster(season, league string, snapshot players.RosterSnapshot) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written == nil {
		w.Written = make(map[string]players.RosterSnapshot)
	}
	w.Written[Key(season, league)] = snapshot
	return nil
}

// Get returns a recorded snapshot.
func (w *StubSnapshotWriter) Get(season, league string) (players.RosterSnapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap, ok := w.Written[Key(season, league)]
	return snap, ok
}

// Key builds the season/league map key used by the stubs.
func Key(season, league string) string {
	return season + "/" + league
}
