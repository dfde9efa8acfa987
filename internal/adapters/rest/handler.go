package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/charanteja2729/mood-based-song-recommender/internal/core/ports"
	"github.com/charanteja2729/mood-based-song-recommender/internal/core/services"
)

// Handler manages the HTTP interface for the application.
type Handler struct {
	svc     *services.Recommender // Dependency on the Core Service
	journal ports.Journal         // optional, nil disables journaling
	router  chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Recommender, journal ports.Journal) *Handler {
	h := &Handler{
		svc:     svc,
		journal: journal,
		router:  chi.NewRouter(),
	}

	h.router.Use(middleware.RequestID)
	h.router.Use(middleware.RealIP)
	h.router.Use(middleware.Logger)
	h.router.Use(middleware.Recoverer)
	h.router.Use(middleware.Timeout(15 * time.Second))

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Get("/health", h.HealthCheck)
	h.router.Post("/api/predict", h.Predict)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
