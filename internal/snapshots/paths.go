package snapshots

import (
	"fmt"
	"path/filepath"
)

const rostersDir = "rosters"

// RosterSnapshotPath builds the path to one league's roster snapshot for a season.
func RosterSnapshotPath(basePath, season, league string) string {
	return filepath.Join(basePath, rostersDir, season, fmt.Sprintf("%s.json", league))
}

func seasonDir(basePath, season string) string {
	return filepath.Join(basePath, rostersDir, season)
}
