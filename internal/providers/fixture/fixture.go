package fixture

import (
	"context"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// ProviderName identifies fixture data in logs and metrics.
const ProviderName = "fixture"

// Provider returns a static roster useful for local testing and bootstrapping.
// Players are partitioned by the league of the club in their team logo and
// ranked in the order the sample listing shows them.
type Provider struct {
	rosters map[string][]players.Player
}

// New creates a fixture provider with the sample players.
func New() *Provider {
	return &Provider{rosters: sampleRosters()}
}

// FetchPlayers returns the sample players of the league. Unknown leagues yield an empty roster.
func (p *Provider) FetchPlayers(ctx context.Context, season string, league leagues.League) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = season

	src := p.rosters[league.Code]
	out := make([]players.Player, len(src))
	copy(out, src)
	return out, nil
}

func sampleRosters() map[string][]players.Player {
	return map[string][]players.Player{
		"FRA": {
			{
				ID:          1,
				Name:        "Neymar Jr.",
				Age:         31,
				Nationality: "Brasil",
				Position:    players.PositionAttacker,
				ShirtNumber: players.Number(10),
				Order:       1,
				Photo:       players.PhotoURL(276),
				TeamLogo:    players.TeamLogoURL(85),
			},
		},
		"ENG": {
			{
				ID:          2,
				Name:        "Harry Kane",
				Age:         30,
				Nationality: "Inglaterra",
				Position:    players.PositionAttacker,
				ShirtNumber: players.Number(9),
				Order:       2,
				Photo:       players.PhotoURL(19088),
				TeamLogo:    players.TeamLogoURL(47),
			},
		},
		"GER": {
			{
				ID:          3,
				Name:        "Manuel Neuer",
				Age:         37,
				Nationality: "Alemanha",
				Position:    players.PositionGoalkeeper,
				ShirtNumber: players.Number(1),
				Order:       3,
				Photo:       players.PhotoURL(28),
				TeamLogo:    players.TeamLogoURL(157),
			},
		},
	}
}
