package snapshots

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
)

// RosterSink receives league rosters restored from disk.
type RosterSink interface {
	ReplaceLeague(code string, roster []players.Player)
}

// Restore loads every available league snapshot for the season into sink and
// returns how many leagues were restored. Missing snapshots are skipped quietly;
// unreadable ones are logged and skipped.
func Restore(store Store, sink RosterSink, season string, leagues []string, logger *slog.Logger) int {
	restored := 0
	for _, code := range leagues {
		snap, err := store.LoadRoster(season, code)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logging.Warn(logger, "snapshot restore failed",
					logging.FieldSeason, season,
					logging.FieldLeague, code,
					"error", err,
				)
			}
			continue
		}
		sink.ReplaceLeague(code, snap.Players)
		restored++
	}
	if restored > 0 {
		logging.Info(logger, "restored rosters from snapshots", logging.FieldSeason, season, logging.FieldCount, restored)
	}
	return restored
}
