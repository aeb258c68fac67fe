package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadRoster(season, league string) (players.RosterSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadRoster reads one league's roster snapshot for a season.
// Files are expected at {basePath}/rosters/{season}/{league}.json.
func (s *FSStore) LoadRoster(season, league string) (players.RosterSnapshot, error) {
	if s == nil {
		return players.RosterSnapshot{}, errors.New("snapshot store not configured")
	}
	if season == "" || league == "" {
		return players.RosterSnapshot{}, errors.New("snapshot season and league required")
	}
	snap, err := decodeRoster(RosterSnapshotPath(s.basePath, season, league))
	if err != nil {
		return players.RosterSnapshot{}, err
	}
	if snap.Season == "" {
		snap.Season = season
	}
	if snap.League == "" {
		snap.League = league
	}
	if snap.Players == nil {
		snap.Players = []players.Player{}
	}
	return snap, nil
}

func decodeRoster(path string) (players.RosterSnapshot, error) {
	var payload players.RosterSnapshot
	f, err := os.Open(path)
	if err != nil {
		return payload, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&payload)
	return payload, err
}
