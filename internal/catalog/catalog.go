// Package catalog loads the static league and position configuration.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/filter"
)

//go:embed leagues.yaml
var defaultCatalog []byte

// Catalog is the configured season, leagues and canonical positions.
type Catalog struct {
	Season    string           `json:"season" yaml:"season"`
	Leagues   []leagues.League `json:"leagues" yaml:"leagues"`
	Positions []string         `json:"positions" yaml:"positions"`
}

// Default returns the embedded catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default invalid: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the embedded default when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalog.
func Parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	if c.Season == "" {
		return errors.New("catalog: season required")
	}
	if len(c.Leagues) == 0 {
		return errors.New("catalog: at least one league required")
	}
	if len(c.Positions) == 0 {
		return errors.New("catalog: at least one position required")
	}
	seen := make(map[string]struct{}, len(c.Leagues))
	for _, l := range c.Leagues {
		if l.Code == "" {
			return fmt.Errorf("catalog: league %d has no code", l.ID)
		}
		if _, ok := seen[l.Code]; ok {
			return fmt.Errorf("catalog: duplicate league code %q", l.Code)
		}
		seen[l.Code] = struct{}{}
	}
	return nil
}

// League looks up a league by code.
func (c Catalog) League(code string) (leagues.League, bool) {
	for _, l := range c.Leagues {
		if l.Code == code {
			return l, true
		}
	}
	return leagues.League{}, false
}

// Codes returns the league codes in catalog order.
func (c Catalog) Codes() []string {
	return leagues.Codes(c.Leagues)
}

// OrderedCodes returns the selected codes that exist in the catalog, in catalog order.
// Selections without a catalog entry are dropped; they have no roster to contribute.
func (c Catalog) OrderedCodes(selected []string) []string {
	out := make([]string, 0, len(selected))
	for _, l := range c.Leagues {
		if slices.Contains(selected, l.Code) {
			out = append(out, l.Code)
		}
	}
	return out
}

// DefaultState selects every league and every catalog position.
func (c Catalog) DefaultState() filter.State {
	st := filter.DefaultState(c.Codes())
	st.Positions = slices.Clone(c.Positions)
	return st
}
