package server

import (
	"log/slog"

	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/config"
	"github.com/preston-bernstein/roster-filter-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.SnapshotDir),
		writer: snapshots.NewWriter(cfg.SnapshotDir, cfg.SnapshotSeasons),
	}
}

// warmStart loads the last persisted roster of every league so requests can be served before the first poll.
func warmStart(snaps snapshotComponents, sink snapshots.RosterSink, cat catalog.Catalog, logger *slog.Logger) int {
	return snapshots.Restore(snaps.store, sink, cat.Season, cat.Codes(), logger)
}
