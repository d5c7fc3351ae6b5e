package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notifyads/internal/core/domain"
	"notifyads/internal/core/port"
)

// AdStore is the part of a directory adapter the HTTP layer uses to manage
// ads directly.
type AdStore interface {
	Lookup(ctx context.Context, placementID string) (*domain.AdSnapshot, error)
	Save(ctx context.Context, ad domain.NotificationAd) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the event handler and the ad directory. Routes are registered on a
// chi.Router.
type Handler struct {
	events port.EventHandler
	ads    AdStore
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(events port.EventHandler, ads AdStore, logger *slog.Logger) *Handler {
	h := &Handler{events: events, ads: ads, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1/notification-ads/{placementID}", func(r chi.Router) {
		r.Put("/", h.handleSaveAd)
		r.Get("/", h.handleGetAd)
		r.Post("/events/{eventType}", h.handleFireEvent)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
