package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/app/sessions"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
	"github.com/preston-bernstein/roster-filter-service/internal/filter"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
)

type sessionResponse struct {
	ID string `json:"id"`
	roster.View
}

type playersResponse struct {
	Players []players.Player `json:"players"`
	Count   int              `json:"count"`
}

type toggleRequest struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

type rangeRequest struct {
	Dimension string `json:"dimension"`
	Min       *int   `json:"min"`
	Max       *int   `json:"max"`
}

// CreateSession starts a session with the default selection.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	w.Header().Set("Location", "/sessions/"+s.ID)
	writeJSON(w, http.StatusCreated, h.sessionView(s), h.logger)
}

// GetSession returns the selection, the filtered players and the nationality options.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(s), h.logger)
}

// DeleteSession ends a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		h.sessionError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleSession flips one value in a set dimension.
func (h *Handler) ToggleSession(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	dim, ok := filter.ParseSetDimension(req.Dimension)
	if !ok {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown set dimension %q", req.Dimension), h.logger)
		return
	}

	s, err := h.sessions.Toggle(chi.URLParam(r, "id"), dim, req.Value)
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "session toggled",
		logging.FieldSession, s.ID,
		"dimension", string(dim),
	)
	writeJSON(w, http.StatusOK, h.sessionView(s), h.logger)
}

// SetSessionRange updates the given bounds of a range dimension; omitted bounds are kept.
func (h *Handler) SetSessionRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	dim, ok := filter.ParseRangeDimension(req.Dimension)
	if !ok {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("unknown range dimension %q", req.Dimension), h.logger)
		return
	}

	s, err := h.sessions.SetRange(chi.URLParam(r, "id"), dim, req.Min, req.Max)
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(s), h.logger)
}

// ResetSession restores the default selection.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Reset(chi.URLParam(r, "id"))
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.sessionView(s), h.logger)
}

// SessionPlayers returns only the filtered players of a session.
func (h *Handler) SessionPlayers(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	view := h.roster.Evaluate(s.State)
	writeJSON(w, http.StatusOK, playersResponse{Players: view.Players, Count: view.Count}, h.logger)
}

func (h *Handler) sessionView(s sessions.Session) sessionResponse {
	return sessionResponse{ID: s.ID, View: h.roster.Evaluate(s.State)}
}

func (h *Handler) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, sessions.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "session not found", h.logger)
		return
	}
	logging.Error(loggerFromContext(r, h.logger), "session operation failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
}
