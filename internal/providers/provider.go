package providers

import (
	"context"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// RosterProvider defines how upstream player data is fetched and normalized.
// Each call returns the roster of one league for the given season. Positions
// must already be mapped onto the canonical labels.
type RosterProvider interface {
	FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error)
}
