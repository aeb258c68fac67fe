package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

func simpleSnapshot(names ...string) players.RosterSnapshot {
	roster := make([]players.Player, 0, len(names))
	for i, n := range names {
		roster = append(roster, players.Player{ID: i + 1, Name: n, Position: players.PositionAttacker})
	}
	return players.NewRosterSnapshot("", "", "fixture", time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), roster)
}

func writeRoster(t *testing.T, w *Writer, season, league string, snap players.RosterSnapshot) {
	t.Helper()
	require.NotNil(t, w, "writer is nil for %s/%s", season, league)
	require.NoError(t, w.WriteRoster(season, league, snap), "write snapshot %s/%s", season, league)
}

func requireSnapshotExists(t *testing.T, w *Writer, season, league string) {
	t.Helper()
	_, err := os.Stat(RosterSnapshotPath(w.BasePath(), season, league))
	require.NoError(t, err, "expected snapshot for %s/%s to be written", season, league)
}

type recordingSink struct {
	leagues map[string][]players.Player
}

func (s *recordingSink) ReplaceLeague(code string, roster []players.Player) {
	if s.leagues == nil {
		s.leagues = make(map[string][]players.Player)
	}
	s.leagues[code] = roster
}
