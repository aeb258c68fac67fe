package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/roster-filter-service/internal/app/roster"
	"github.com/preston-bernstein/roster-filter-service/internal/app/sessions"
	"github.com/preston-bernstein/roster-filter-service/internal/catalog"
	"github.com/preston-bernstein/roster-filter-service/internal/domain/leagues"
	"github.com/preston-bernstein/roster-filter-service/internal/poller"
)

// Handler wires HTTP routes to the roster service and session manager.
type Handler struct {
	roster   *roster.Service
	sessions *sessions.Manager
	catalog  catalog.Catalog
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the service always reports ready.
func NewHandler(rosterSvc *roster.Service, sessionMgr *sessions.Manager, cat catalog.Catalog, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		roster:   rosterSvc,
		sessions: sessionMgr,
		catalog:  cat,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes readiness checks).
// Rosters restored from snapshots count as ready even before the first poll.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() || (status.LastSuccess.IsZero() && status.LastAttempt.IsZero() && h.roster.Loaded()) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

type leaguesResponse struct {
	Season  string           `json:"season"`
	Leagues []leagues.League `json:"leagues"`
}

// Leagues lists the configured season and leagues.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, leaguesResponse{Season: h.catalog.Season, Leagues: h.catalog.Leagues}, h.logger)
}

// Positions lists the canonical positions in display order.
func (h *Handler) Positions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"positions": h.catalog.Positions}, h.logger)
}

// NotFound renders unmatched routes as JSON errors.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders method mismatches as JSON errors.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
