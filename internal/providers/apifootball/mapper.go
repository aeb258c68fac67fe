package apifootball

import (
	"strings"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

var positionLabels = map[string]string{
	"goalkeeper": players.PositionGoalkeeper,
	"defender":   players.PositionDefender,
	"midfielder": players.PositionMidfielder,
	"attacker":   players.PositionAttacker,
}

// mapPosition translates an upstream position onto the canonical labels.
func mapPosition(raw string) (string, bool) {
	label, ok := positionLabels[strings.ToLower(strings.TrimSpace(raw))]
	return label, ok
}

// mapPlayer normalizes one upstream entry. Entries without a usable position are dropped.
// The first statistics block is the player's club in the requested league.
func mapPlayer(env playerEnvelope) (players.Player, bool) {
	var stats statisticsResponse
	if len(env.Statistics) > 0 {
		stats = env.Statistics[0]
	}

	position, ok := mapPosition(stats.Games.Position)
	if !ok || env.Player.ID == 0 {
		return players.Player{}, false
	}

	p := players.Player{
		ID:          env.Player.ID,
		Name:        strings.TrimSpace(env.Player.Name),
		Nationality: strings.TrimSpace(env.Player.Nationality),
		Position:    position,
		Photo:       env.Player.Photo,
		TeamLogo:    stats.Team.Logo,
	}
	if env.Player.Age != nil {
		p.Age = *env.Player.Age
	}
	if stats.Games.Number != nil {
		p.ShirtNumber = players.Number(*stats.Games.Number)
	}
	if p.Photo == "" {
		p.Photo = players.PhotoURL(env.Player.ID)
	}
	if p.TeamLogo == "" && stats.Team.ID != 0 {
		p.TeamLogo = players.TeamLogoURL(stats.Team.ID)
	}
	return p, true
}
