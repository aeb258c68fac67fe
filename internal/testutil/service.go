package testutil

import (
	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/store"
)

// NewRosterService builds a roster service over the default catalog, preloaded with the given league rosters.
func NewRosterService(rosters map[string][]players.Player) *roster.Service {
	ms := store.NewMemoryStore()
	for code, r := range rosters {
		ms.SetLeague(code, r)
	}
	return roster.NewService(ms, catalog.Default(), nil)
}
