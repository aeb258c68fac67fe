package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/roster-filter-service/internal/testutil"
)

func createSession(t *testing.T, h *Handler) sessionResponse {
	t.Helper()
	rr := testutil.Serve(http.HandlerFunc(h.CreateSession), http.MethodPost, "/sessions", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var created sessionResponse
	testutil.DecodeJSON(t, rr, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "/sessions/"+created.ID, rr.Header().Get("Location"))
	return created
}

func TestCreateSessionStartsWithDefaults(t *testing.T) {
	h := newTestHandler(t, nil)
	created := createSession(t, h)

	assert.Equal(t, 3, created.Count)
	assert.Len(t, created.State.Leagues, 6)
	assert.Empty(t, created.State.Nationalities)
	assert.Equal(t, []string{"Neymar Jr.", "Harry Kane", "Manuel Neuer"}, playerNames(created))
	assert.Equal(t, []string{"Brasil", "Inglaterra", "Alemanha"}, created.Nationalities)
}

func TestToggleSession(t *testing.T) {
	h := newTestHandler(t, nil)
	id := createSession(t, h).ID

	rr := serveSession(h.ToggleSession, http.MethodPost, id, strings.NewReader(`{"dimension":"position","value":"Goleiro"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view sessionResponse
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, []string{"Neymar Jr.", "Harry Kane"}, playerNames(view), "goalkeepers removed")

	rr = serveSession(h.ToggleSession, http.MethodPost, id, strings.NewReader(`{"dimension":"position","value":"Goleiro"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	view = sessionResponse{}
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, 3, view.Count, "toggle restores goalkeepers")
	require.NotEmpty(t, view.State.Positions)
	assert.Equal(t, "Goleiro", view.State.Positions[len(view.State.Positions)-1], "re-added value is appended")

	rr = serveSession(h.ToggleSession, http.MethodPost, id, strings.NewReader(`{"dimension":"nationality","value":"Brasil"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	view = sessionResponse{}
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, []string{"Neymar Jr."}, playerNames(view))
}

func TestToggleSessionRejectsBadInput(t *testing.T) {
	h := newTestHandler(t, nil)
	id := createSession(t, h).ID

	bodies := []string{
		`{"dimension":"age","value":"30"}`,
		`{"dimension":"club","value":"x"}`,
		`{"dimension":`,
		`{"dimension":"position","value":"Meia","extra":true}`,
	}
	for _, body := range bodies {
		rr := serveSession(h.ToggleSession, http.MethodPost, id, strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestSetSessionRange(t *testing.T) {
	h := newTestHandler(t, nil)
	id := createSession(t, h).ID

	rr := serveSession(h.SetSessionRange, http.MethodPut, id, strings.NewReader(`{"dimension":"age","min":31}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view sessionResponse
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, 31, view.State.Age.Min)
	assert.Equal(t, 45, view.State.Age.Max, "only min updated")
	assert.Equal(t, []string{"Neymar Jr.", "Manuel Neuer"}, playerNames(view))

	rr = serveSession(h.SetSessionRange, http.MethodPut, id, strings.NewReader(`{"dimension":"shirtNumber","min":50,"max":5}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	view = sessionResponse{}
	testutil.DecodeJSON(t, rr, &view)
	assert.Zero(t, view.Count, "inverted range matches nothing")

	rr = serveSession(h.SetSessionRange, http.MethodPut, id, strings.NewReader(`{"dimension":"height","min":1}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestResetSession(t *testing.T) {
	h := newTestHandler(t, nil)
	id := createSession(t, h).ID

	serveSession(h.SetSessionRange, http.MethodPut, id, strings.NewReader(`{"dimension":"age","max":18}`))
	rr := serveSession(h.ResetSession, http.MethodPost, id, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view sessionResponse
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, 45, view.State.Age.Max)
}

func TestSessionPlayersAndLifecycle(t *testing.T) {
	h := newTestHandler(t, nil)
	id := createSession(t, h).ID

	rr := serveSession(h.SessionPlayers, http.MethodGet, id, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body playersResponse
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Players, 3)

	rr = serveSession(h.GetSession, http.MethodGet, id, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = serveSession(h.DeleteSession, http.MethodDelete, id, nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)

	for _, fn := range []http.HandlerFunc{h.GetSession, h.DeleteSession, h.ResetSession, h.SessionPlayers} {
		rr = serveSession(fn, http.MethodGet, id, nil)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	}
	rr = serveSession(h.ToggleSession, http.MethodPost, id, strings.NewReader(`{"dimension":"league","value":"ENG"}`))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
