package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS())
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/auth/authorize", h.authorize)
		r.Get("/api/auth/callback", h.callback)
		r.Post("/api/auth/refresh", h.refreshToken)

		r.Post("/api/webhook/contact-creation", h.contactCreationWebhook)

		r.Get("/api/version/", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// routes that forward the caller's CRM token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/contacts", h.listContacts)
		r.Post("/api/contacts", h.createContact)
		r.Post("/api/contacts/batch", h.createContactsBatch)
		r.Get("/api/contacts/{contactId}", h.getContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS allows the configured origins. Without any configured origin
// every origin is allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader, signatureHeader},
		ExposedHeaders: []string{traceIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}
