package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/snapshots"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeView(t *testing.T, raw string) roster.View {
	t.Helper()
	var view roster.View
	require.NoError(t, json.Unmarshal([]byte(raw), &view))
	return view
}

func names(view roster.View) []string {
	out := make([]string, 0, len(view.Players))
	for _, p := range view.Players {
		out = append(out, p.Name)
	}
	return out
}

func TestLeaguesCommandPrintsCatalog(t *testing.T) {
	out, err := execute(t, "leagues")
	require.NoError(t, err)
	assert.Contains(t, out, "ENG")
	assert.Contains(t, out, "Bundesliga (Alemanha)")
	assert.Contains(t, out, "season 2024")
}

func TestPlayersCommandDefaultsToFixture(t *testing.T) {
	out, err := execute(t, "players", "-o", "json")
	require.NoError(t, err)

	view := decodeView(t, out)
	assert.Equal(t, []string{"Neymar Jr.", "Harry Kane", "Manuel Neuer"}, names(view))
	assert.Equal(t, []string{"Brasil", "Inglaterra", "Alemanha"}, view.Nationalities)
}

func TestPlayersCommandAppliesFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{name: "position", args: []string{"--position", "Goleiro"}, want: []string{"Manuel Neuer"}},
		{name: "leagues", args: []string{"--league", "GER", "--league", "FRA"}, want: []string{"Neymar Jr.", "Manuel Neuer"}},
		{name: "attackers", args: []string{"--position", "Atacante"}, want: []string{"Neymar Jr.", "Harry Kane"}},
		{name: "nationality", args: []string{"--nationality", "Inglaterra"}, want: []string{"Harry Kane"}},
		{name: "age", args: []string{"--age-min", "31", "--age-max", "35"}, want: []string{"Neymar Jr."}},
		{name: "number", args: []string{"--number-max", "9"}, want: []string{"Harry Kane", "Manuel Neuer"}},
		{name: "inverted", args: []string{"--number-min", "20", "--number-max", "2"}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"players", "-o", "json"}, tc.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			view := decodeView(t, out)
			assert.Equal(t, tc.want, names(view))
			assert.Equal(t, len(tc.want), view.Count)
		})
	}
}

func TestPlayersCommandRendersTable(t *testing.T) {
	out, err := execute(t, "players", "--position", "Goleiro")
	require.NoError(t, err)
	assert.Contains(t, out, "Manuel Neuer")
	assert.Contains(t, out, "1 players; nationalities: Brasil, Inglaterra, Alemanha")
}

func TestPlayersCommandReadsSnapshots(t *testing.T) {
	dir := t.TempDir()
	w := snapshots.NewWriter(dir, 2)
	squad := []players.Player{{ID: 9, Name: "Marquinhos", Age: 29, Nationality: "Brasil", Position: players.PositionDefender, ShirtNumber: players.Number(5)}}
	require.NoError(t, w.WriteRoster("2024", "FRA", players.NewRosterSnapshot("2024", "FRA", "test", time.Now(), squad)))

	out, err := execute(t, "players", "--source", "snapshots", "--snapshot-dir", dir, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Marquinhos"}, names(decodeView(t, out)))

	_, err = execute(t, "players", "--source", "snapshots", "--snapshot-dir", t.TempDir())
	assert.Error(t, err)
}

func TestPlayersCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "players", "--source", "carrier-pigeon")
	assert.ErrorContains(t, err, "unknown source")

	_, err = execute(t, "players", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output format")

	t.Setenv("APIFOOTBALL_API_KEY", "")
	_, err = execute(t, "players", "--source", "apifootball")
	assert.ErrorContains(t, err, "APIFOOTBALL_API_KEY")
}

func TestCustomCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := "season: \"2023\"\nleagues:\n  - id: 61\n    code: FRA\n    name: Ligue 1\npositions: [Goleiro, Defensor, Meia, Atacante]\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	out, err := execute(t, "--catalog", path, "players", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Neymar Jr."}, names(decodeView(t, out)))
}
