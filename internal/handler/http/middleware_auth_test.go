package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/stretchr/testify/assert"
)

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", want: "Bearer abc"},
		{name: "lowercase bearer", header: "bearer abc", want: "Bearer abc"},
		{name: "bare token", header: "abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "Bearer abc"},
		{name: "other scheme kept", header: "Basic dXNlcjpwYXNz", want: "Basic dXNlcjpwYXNz"},
		{name: "double space", header: "Bearer  abc", want: "Bearer abc"},
		{name: "scheme without token", header: "Bearer    ", wantErr: ErrEmptyToken},
		{name: "lowercase scheme without token", header: "bearer", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---- auth middleware ----

func TestAuth_StoresTokenInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var got string
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = utils.GetAuthTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	req.Header.Set("Authorization", "Bearer crm-token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, found)
	assert.Equal(t, "Bearer crm-token", got)
}

func TestAuth_MissingHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
	assert.False(t, called)
}
