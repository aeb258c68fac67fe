package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

const defaultRetentionSeasons = 2

// Writer persists roster snapshots and the manifest, keeping the most recent seasons.
type Writer struct {
	mu               sync.Mutex
	basePath         string
	retentionSeasons int
	now              func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string, retentionSeasons int) *Writer {
	if retentionSeasons <= 0 {
		retentionSeasons = defaultRetentionSeasons
	}
	return &Writer{
		basePath:         basePath,
		retentionSeasons: retentionSeasons,
		now:              time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRoster writes one league's roster for a season. Player order is preserved.
// Unchanged content leaves the file untouched.
func (w *Writer) WriteRoster(season, league string, snapshot players.RosterSnapshot) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if season == "" || league == "" {
		return fmt.Errorf("season and league required")
	}
	snapshot.Season = season
	snapshot.League = league
	if snapshot.Players == nil {
		snapshot.Players = []players.Player{}
	}
	snapshot.Count = len(snapshot.Players)

	w.mu.Lock()
	defer w.mu.Unlock()

	target := RosterSnapshotPath(w.basePath, season, league)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if !w.sameRoster(target, snapshot) {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, data, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, target); err != nil {
			return err
		}
	}

	return w.updateManifest(season, league, snapshot.Count)
}

// sameRoster compares everything except the fetch timestamp, which changes on every poll.
func (w *Writer) sameRoster(path string, next players.RosterSnapshot) bool {
	existing, err := decodeRoster(path)
	if err != nil {
		return false
	}
	existing.FetchedAt = time.Time{}
	next.FetchedAt = time.Time{}
	a, errA := json.Marshal(existing)
	b, errB := json.Marshal(next)
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

func (w *Writer) updateManifest(season, league string, count int) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionSeasons)
	m.Retention.Seasons = w.retentionSeasons

	meta := m.Seasons[season]
	if meta.Leagues == nil {
		meta.Leagues = map[string]LeagueMeta{}
	}
	meta.Leagues[league] = LeagueMeta{Count: count, LastRefreshed: w.now().UTC()}
	m.Seasons[season] = meta

	kept, err := w.pruneOldSeasons()
	if err != nil {
		return err
	}
	for s := range m.Seasons {
		if !containsString(kept, s) {
			delete(m.Seasons, s)
		}
	}

	return writeManifest(w.basePath, m)
}

// listSeasons returns the season directories present on disk, sorted ascending.
func (w *Writer) listSeasons() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, rostersDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	seasons := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			seasons = append(seasons, e.Name())
		}
	}
	sort.Strings(seasons)
	return seasons, nil
}

func (w *Writer) pruneOldSeasons() ([]string, error) {
	seasons, err := w.listSeasons()
	if err != nil {
		return nil, err
	}
	if len(seasons) <= w.retentionSeasons {
		return seasons, nil
	}
	drop := seasons[:len(seasons)-w.retentionSeasons]
	for _, s := range drop {
		if err := os.RemoveAll(seasonDir(w.basePath, s)); err != nil {
			return nil, err
		}
	}
	return seasons[len(seasons)-w.retentionSeasons:], nil
}

func containsString(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
