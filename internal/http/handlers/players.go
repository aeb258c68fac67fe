package handlers

import (
	"net/http"

	"github.com/preston-bernstein/roster-filter-service/internal/filter"
	"github.com/preston-bernstein/roster-filter-service/internal/http/requestutil"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
)

// Query parameter names accepted by Players.
const (
	paramLeague      = "league"
	paramPosition    = "position"
	paramNationality = "nationality"
	paramAgeMin      = "ageMin"
	paramAgeMax      = "ageMax"
	paramNumberMin   = "numberMin"
	paramNumberMax   = "numberMax"
)

// Players evaluates a filter described entirely by the query string against the roster.
// Set parameters repeat once per value. An omitted parameter keeps its default and a
// bare "?league=" replaces the set with an empty one, which selects nothing for league
// and position and accepts everyone for nationality.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	state, err := h.stateFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	view := h.roster.Evaluate(state)
	logging.Info(loggerFromContext(r, h.logger), "served filtered players", logging.FieldCount, view.Count)
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Nationalities lists the distinct nationalities of the full roster in first-seen order.
func (h *Handler) Nationalities(w http.ResponseWriter, r *http.Request) {
	all := h.roster.AllPlayers()
	writeJSON(w, http.StatusOK, map[string][]string{
		"nationalities": filter.DistinctNationalities(all),
	}, h.logger)
}

func (h *Handler) stateFromQuery(r *http.Request) (filter.State, error) {
	q := r.URL.Query()
	state := h.catalog.DefaultState()

	if v, ok := requestutil.StringList(q, paramLeague); ok {
		state.Leagues = v
	}
	if v, ok := requestutil.StringList(q, paramPosition); ok {
		state.Positions = v
	}
	if v, ok := requestutil.StringList(q, paramNationality); ok {
		state.Nationalities = v
	}

	ranges := []struct {
		dim      filter.RangeDimension
		min, max string
	}{
		{filter.DimensionAge, paramAgeMin, paramAgeMax},
		{filter.DimensionShirtNumber, paramNumberMin, paramNumberMax},
	}
	for _, rg := range ranges {
		lo, err := requestutil.OptionalInt(q, rg.min)
		if err != nil {
			return filter.State{}, err
		}
		hi, err := requestutil.OptionalInt(q, rg.max)
		if err != nil {
			return filter.State{}, err
		}
		state.SetRange(rg.dim, lo, hi)
	}
	return state, nil
}
