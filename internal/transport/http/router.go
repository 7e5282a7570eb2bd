package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the API surface. Every /api/v1 route requires the
// X-Owner-ID header; auth itself lives in front of this service.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Get("/health", HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireOwner)

		r.Route("/bottles", func(r chi.Router) {
			r.Get("/", h.ListBottles)
			r.Post("/", h.CreateBottle)
			r.Get("/{id}", h.GetBottle)
			r.Patch("/{id}", h.PatchBottle)
			r.Delete("/{id}", h.DeleteBottle)
			r.Post("/{id}/transitions", h.TransitionBottle)
			r.Post("/{id}/favorite", h.ToggleFavorite)
			r.Get("/{id}/history", h.BottleHistory)
		})

		r.Get("/stats", h.Stats)
		r.Get("/export", h.Export)

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.ListLocations)
			r.Post("/", h.CreateLocation)
			r.Delete("/{id}", h.DeleteLocation)
		})
	})

	return r
}

func requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := strings.TrimSpace(r.Header.Get("X-Owner-ID"))
		if owner == "" {
			writeBadRequest(r.Context(), w, errMissingOwner.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ownerKey{}, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
