package testutil

import (
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// SamplePlayer returns a minimal player fixture with an assigned shirt number.
func SamplePlayer(id int, name, nationality, position string, age, number int) players.Player {
	return players.Player{
		ID:          id,
		Name:        name,
		Age:         age,
		Nationality: nationality,
		Position:    position,
		ShirtNumber: players.Number(number),
	}
}

// SampleRosters returns three single-player league rosters keyed by league code,
// ranked Neymar, Kane, Neuer.
func SampleRosters() map[string][]players.Player {
	return map[string][]players.Player{
		"FRA": {ranked(SamplePlayer(1, "Neymar Jr.", "Brasil", players.PositionAttacker, 31, 10), 1)},
		"ENG": {ranked(SamplePlayer(2, "Harry Kane", "Inglaterra", players.PositionAttacker, 30, 9), 2)},
		"GER": {ranked(SamplePlayer(3, "Manuel Neuer", "Alemanha", players.PositionGoalkeeper, 37, 1), 3)},
	}
}

func ranked(p players.Player, order int) players.Player {
	p.Order = order
	return p
}
