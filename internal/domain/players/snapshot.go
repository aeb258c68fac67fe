package players

import "time"

// RosterSnapshot is the persisted form of one league's roster for a season.
type RosterSnapshot struct {
	Season    string    `json:"season"`
	League    string    `json:"league"`
	Provider  string    `json:"provider,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
	Count     int       `json:"count"`
	Players   []Player  `json:"players"`
}

// NewRosterSnapshot builds a snapshot with a count that always matches its players.
func NewRosterSnapshot(season, league, provider string, fetchedAt time.Time, roster []Player) RosterSnapshot {
	if roster == nil {
		roster = []Player{}
	}
	return RosterSnapshot{
		Season:    season,
		League:    league,
		Provider:  provider,
		FetchedAt: fetchedAt.UTC(),
		Count:     len(roster),
		Players:   roster,
	}
}
