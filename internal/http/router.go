package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/roster-filter-service/internal/http/handlers"
	"github.com/preston-bernstein/roster-filter-service/internal/http/middleware"
)

// NewRouter registers HTTP routes on a chi router. admin may be nil to leave /admin unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder middleware.HTTPRecorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(logger, recorder))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/leagues", handler.Leagues)
	r.Get("/positions", handler.Positions)
	r.Get("/players", handler.Players)
	r.Get("/nationalities", handler.Nationalities)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetSession)
			r.Delete("/", handler.DeleteSession)
			r.Get("/players", handler.SessionPlayers)
			r.Post("/toggle", handler.ToggleSession)
			r.Put("/range", handler.SetSessionRange)
			r.Post("/reset", handler.ResetSession)
		})
	})

	if admin != nil {
		r.Post("/admin/refresh", admin.RefreshRosters)
	}
	return r
}
