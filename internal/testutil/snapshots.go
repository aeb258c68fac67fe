package testutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a roster snapshot for one season and league.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, season, league string, roster []players.Player) {
	t.Helper()
	require.NoError(t, writeSnapshotPayload(w, season, league, roster), "write snapshot %s/%s", season, league)
}

func writeSnapshotPayload(w *snapshots.Writer, season, league string, roster []players.Player) error {
	if w == nil {
		return errors.New("nil snapshot writer")
	}
	snap := players.NewRosterSnapshot(season, league, "test", time.Now(), roster)
	return w.WriteRoster(season, league, snap)
}

// SnapshotPath returns the expected file path for a league snapshot.
func SnapshotPath(w *snapshots.Writer, season, league string) string {
	return snapshots.RosterSnapshotPath(w.BasePath(), season, league)
}
