package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not hit a registered route, which
// keeps the label set bounded.
const unmatchedRoute = "unmatched"

// withMetrics observes every request under its chi route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.IncActiveRequests()
		defer metrics.DecActiveRequests()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		metrics.ObserveHTTPRequest(r.Method, routePattern(r), strconv.Itoa(rw.Status()), time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
