package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/roster-filter-service/internal/http/requestutil"
	"github.com/preston-bernstein/roster-filter-service/internal/logging"
	"github.com/preston-bernstein/roster-filter-service/internal/poller"
)

// Refresher runs an on-demand roster load and reports its outcome.
type Refresher interface {
	Refresh(ctx context.Context) error
	Status() poller.Status
}

// AdminHandler exposes admin-only endpoints (e.g., forcing a roster refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables every admin route.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

type refreshResponse struct {
	Status        string    `json:"status"`
	FailedLeagues []string  `json:"failedLeagues"`
	RefreshedAt   time.Time `json:"refreshedAt"`
}

// RefreshRosters reloads every league now. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshRosters(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", logger)
		return
	}

	err := h.refresher.Refresh(r.Context())
	status := h.refresher.Status()
	if err != nil && status.ConsecutiveFailures > 0 {
		logging.Warn(logger, "admin refresh failed", "err", err)
		writeError(w, r, http.StatusBadGateway, "failed to refresh rosters", logger)
		return
	}

	failed := status.FailedLeagues
	if failed == nil {
		failed = []string{}
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		Status:        "ok",
		FailedLeagues: failed,
		RefreshedAt:   status.LastSuccess,
	}, logger)
	logging.Info(logger, "admin refresh complete", "failed_leagues", failed)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := []byte(r.Header.Get("Authorization"))
	want := []byte("Bearer " + h.token)
	return subtle.ConstantTimeCompare(got, want) == 1
}
