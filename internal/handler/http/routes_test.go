package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/service"
	"github.com/MKhiriev/hubspot-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Route registration
// ─────────────────────────────────────────────

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := map[string][]string{}
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	want := map[string]string{
		"/api/auth/authorize":           http.MethodGet,
		"/api/auth/callback":            http.MethodGet,
		"/api/auth/refresh":             http.MethodPost,
		"/api/webhook/contact-creation": http.MethodPost,
		"/api/version/":                 http.MethodGet,
		"/metrics":                      http.MethodGet,
		"/api/contacts/batch":           http.MethodPost,
		"/api/contacts/{contactId}":     http.MethodGet,
	}
	for pattern, method := range want {
		assert.Contains(t, registered[pattern], method, "route %s %s", method, pattern)
	}
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPost}, registered["/api/contacts"])
}

func TestInit_VersionRoute(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.0.0"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_MetricsRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/version/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ContactRoutesRequireAuthorization(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/contacts"},
		{http.MethodPost, "/api/contacts"},
		{http.MethodPost, "/api/contacts/batch"},
		{http.MethodGet, "/api/contacts/42"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func TestInit_CORSAllowsConfiguredOrigin(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{AllowedOrigins: []string{"https://app.example.com"}}, logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_CORSRejectsOtherOrigin(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{AllowedOrigins: []string{"https://app.example.com"}}, logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := serve(h, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
