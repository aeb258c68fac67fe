package store

import (
	"sort"
	"sync"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe set of league rosters in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	leagues map[string][]players.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		leagues: make(map[string][]players.Player),
	}
}

// SetLeague replaces the roster partition of one league.
func (s *MemoryStore) SetLeague(code string, roster []players.Player) {
	cp := make([]players.Player, len(roster))
	copy(cp, roster)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leagues[code] = cp
}

// League returns a copy of one league's roster.
func (s *MemoryStore) League(code string) ([]players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, ok := s.leagues[code]
	if !ok {
		return nil, false
	}
	cp := make([]players.Player, len(roster))
	copy(cp, roster)
	return cp, true
}

// Players concatenates the partitions of codes in the given order, then
// restores the providers' listing order for ranked players. Unranked players
// keep their partition order after the ranked ones.
// A player ID seen in an earlier partition wins over later duplicates.
// Unknown codes contribute nothing.
func (s *MemoryStore) Players(codes []string) []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	result := make([]players.Player, 0)
	for _, code := range codes {
		for _, p := range s.leagues[code] {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Before(result[j])
	})
	return result
}

// Codes returns the loaded league codes, sorted.
func (s *MemoryStore) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.leagues))
	for code := range s.leagues {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
