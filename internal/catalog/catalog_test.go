package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/filter"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, "2024", c.Season)
	assert.Equal(t, []string{"ENG", "FRA", "ITA", "ESP", "GER", "BRA"}, c.Codes())
	assert.Equal(t, []string{"Goleiro", "Defensor", "Meia", "Atacante"}, c.Positions)

	eng, ok := c.League("ENG")
	require.True(t, ok)
	assert.Equal(t, 39, eng.ID)
	_, ok = c.League("USA")
	assert.False(t, ok)
}

func TestDefaultStateFromCatalog(t *testing.T) {
	st := Default().DefaultState()

	assert.Equal(t, Default().Codes(), st.Leagues)
	assert.Equal(t, Default().Positions, st.Positions)
	assert.Empty(t, st.Nationalities)
	assert.Equal(t, filter.Range{Min: 16, Max: 45}, st.Age)
	assert.Equal(t, filter.Range{Min: 1, Max: 99}, st.ShirtNumber)
}

func TestOrderedCodes(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"ENG", "GER"}, c.OrderedCodes([]string{"GER", "XXX", "ENG"}))
	assert.Empty(t, c.OrderedCodes(nil))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.yaml")
	body := "season: \"2025\"\nleagues:\n  - {id: 1, code: AAA, name: Alpha}\npositions: [Meia]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2025", c.Season)
	assert.Equal(t, []string{"AAA"}, c.Codes())
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "season: [",
		"no season":      "leagues: [{id: 1, code: A}]\npositions: [Meia]",
		"no leagues":     "season: \"1\"\npositions: [Meia]",
		"no positions":   "season: \"1\"\nleagues: [{id: 1, code: A}]",
		"empty code":     "season: \"1\"\nleagues: [{id: 1}]\npositions: [Meia]",
		"duplicate code": "season: \"1\"\nleagues: [{id: 1, code: A}, {id: 2, code: A}]\npositions: [Meia]",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.Error(t, err)
		})
	}
}
