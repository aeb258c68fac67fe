package roster

import (
	"time"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/filter"
	"github.com/preston-bernstein/roster-filter-service/internal/metrics"
)

// Store defines the contract for persisting and retrieving league rosters.
type Store interface {
	SetLeague(code string, roster []players.Player)
	League(code string) ([]players.Player, bool)
	Players(codes []string) []players.Player
	Codes() []string
}

// Orderer puts selected league codes into a stable display order.
type Orderer interface {
	Codes() []string
	OrderedCodes(selected []string) []string
}

// View is the result of evaluating a filter state against the current roster.
type View struct {
	State         filter.State     `json:"state"`
	Players       []players.Player `json:"players"`
	Count         int              `json:"count"`
	Nationalities []string         `json:"nationalities"`
}

// Service coordinates roster reads and filter evaluation over a Store.
type Service struct {
	store   Store
	order   Orderer
	metrics *metrics.Recorder
}

// NewService constructs a Service with the provided Store and league ordering.
func NewService(store Store, order Orderer, recorder *metrics.Recorder) *Service {
	return &Service{store: store, order: order, metrics: recorder}
}

// Roster assembles the roster of the selected leagues in catalog order.
func (s *Service) Roster(codes []string) []players.Player {
	return s.store.Players(s.order.OrderedCodes(codes))
}

// AllPlayers returns the roster across every configured league.
func (s *Service) AllPlayers() []players.Player {
	return s.store.Players(s.order.Codes())
}

// ReplaceLeague swaps one league's roster with a fresh load.
func (s *Service) ReplaceLeague(code string, roster []players.Player) {
	s.store.SetLeague(code, roster)
	s.metrics.RecordLeagueLoad(code, len(roster))
}

// League returns the stored roster of one league.
func (s *Service) League(code string) ([]players.Player, bool) {
	return s.store.League(code)
}

// Loaded reports whether any league roster has been stored.
func (s *Service) Loaded() bool {
	return len(s.store.Codes()) > 0
}

// Evaluate filters the roster of the state's leagues. The result is recomputed on every call.
func (s *Service) Evaluate(state filter.State) View {
	start := time.Now()
	engine := filter.NewEngine(s.Roster(state.Leagues), state)
	filtered := engine.Filtered()
	s.metrics.RecordFilterRun(len(engine.Roster()), len(filtered), time.Since(start))

	return View{
		State:         engine.State(),
		Players:       filtered,
		Count:         len(filtered),
		Nationalities: engine.Nationalities(),
	}
}
