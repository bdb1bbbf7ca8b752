package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}
