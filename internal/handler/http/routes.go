package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

const (
	rateLimitWindow  = time.Minute
	compressionLevel = 5
)

// Init builds the router. Public routes are registration, login, the pseudo
// check, the version and /metrics; everything else under /api needs a bearer
// token. An unknown method answers 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if len(h.cfg.CORSOrigins) > 0 {
		router.Use(cors.Handler(h.corsOptions()))
	}
	if h.cfg.RateLimit > 0 {
		router.Use(httprate.LimitByIP(h.cfg.RateLimit, rateLimitWindow))
	}
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/users/pseudo/{pseudo}/available", h.pseudoAvailable)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.me)
			r.Get("/dashboard", h.dashboard)
			r.Get("/profiles/{userID}", h.profilePage)

			r.Get("/cols", h.listCols)
			r.Get("/cols/count", h.countCols)
			r.Get("/map", h.mapView)
			r.Get("/users/{userID}/climbed", h.climbedCols)

			r.Get("/pins", h.listPins)
			r.Put("/pins/{colID}", h.pin)
			r.Patch("/pins/{colID}", h.updatePinNote)
			r.Delete("/pins/{colID}", h.unpin)

			r.Get("/ascensions", h.listAscensions)
			r.Post("/ascensions", h.logAscension)
			r.Delete("/ascensions/{ascensionID}", h.deleteAscension)

			r.Get("/explorer", h.explorer)
			r.Put("/favorites/{userID}", h.addFavorite)
			r.Delete("/favorites/{userID}", h.removeFavorite)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// corsOptions allows the configured origins and exposes the Authorization
// and trace id headers.
func (h *Handler) corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
