// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpCRMAdapter pointed at the test server for
// both the API and the token endpoint.
func newTestAdapter(t *testing.T, serverURL string) *httpCRMAdapter {
	t.Helper()
	hubspotCfg := config.HubSpot{
		APIBaseURL: serverURL,
		TokenURL:   serverURL + "/oauth/v1/token",
	}
	adapterCfg := config.Adapter{RequestTimeout: 5 * time.Second}

	a, err := NewHTTPCRMAdapter(hubspotCfg, adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpCRMAdapter)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPCRMAdapter_InvalidURLs(t *testing.T) {
	_, err := NewHTTPCRMAdapter(config.HubSpot{TokenURL: "https://api.hubapi.com/oauth/v1/token"}, config.Adapter{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPCRMAdapter(config.HubSpot{APIBaseURL: "https://api.hubapi.com"}, config.Adapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://api.hubapi.com/", want: "https://api.hubapi.com"},
		{name: "no scheme", raw: "api.hubapi.com", want: "https://api.hubapi.com"},
		{name: "with path", raw: " http://localhost:9000/oauth/v1/token ", want: "http://localhost:9000/oauth/v1/token"},
		{name: "empty", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListContacts ─────────────────────────────────────────────────────────────

func TestListContacts_Success(t *testing.T) {
	body := `{"results":[{"id":"1"}],"paging":{"next":{"after":"1"}}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("after"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListContacts(context.Background(), "abc", 20, 10)

	require.NoError(t, err)
	assert.JSONEq(t, body, string(got))
}

func TestListContacts_KeepsExistingBearerPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListContacts(context.Background(), "Bearer abc", 0, 10)
	require.NoError(t, err)
}

func TestListContacts_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"expired"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListContacts(context.Background(), "abc", 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var statusErr *RemoteStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, `{"message":"expired"}`, statusErr.Body)
}

// ── GetContact ───────────────────────────────────────────────────────────────

func TestGetContact_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/contacts/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":"a/b"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetContact(context.Background(), "abc", "a/b")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a/b"}`, string(got))
}

func TestGetContact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetContact(context.Background(), "abc", "42")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── CreateContact ────────────────────────────────────────────────────────────

func TestCreateContact_SendsProperties(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.ContactInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, map[string]string{"email": "a@b.c"}, in.Properties)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"7"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateContact(context.Background(), "abc", models.ContactInput{Properties: map[string]string{"email": "a@b.c"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(got))
}

func TestCreateContact_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("contact already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateContact(context.Background(), "abc", models.ContactInput{})

	assert.ErrorIs(t, err, ErrConflict)
}

// ── SendContactsBatch ────────────────────────────────────────────────────────

func TestSendContactsBatch_SendsPayloadVerbatim(t *testing.T) {
	payload := []byte(`{"inputs":[{"properties":{"email":"a@b.c"}}]}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crm/v3/objects/contacts/batch/create", r.URL.Path)

		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, got)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"COMPLETE"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.SendContactsBatch(context.Background(), "abc", payload)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"status":"COMPLETE"}`, string(resp.Body))
}

func TestSendContactsBatch_ReturnsErrorStatusWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.SendContactsBatch(context.Background(), "abc", []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "5", resp.Header.Get("Retry-After"))
}

func TestSendContactsBatch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendContactsBatch(ctx, "abc", []byte(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── ExchangeToken ────────────────────────────────────────────────────────────

func TestExchangeToken_PostsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/v1/token", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"bearer","expires_in":1800}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.ExchangeToken(context.Background(), url.Values{
		"grant_type": {"authorization_code"},
		"code":       {"the-code"},
	})

	require.NoError(t, err)
	assert.Equal(t, models.TokenResponse{AccessToken: "at", RefreshToken: "rt", TokenType: "bearer", ExpiresIn: 1800}, token)
}

func TestExchangeToken_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ExchangeToken(context.Background(), url.Values{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestExchangeToken_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ExchangeToken(context.Background(), url.Values{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode token response")
}

// ── RemoteStatusError ────────────────────────────────────────────────────────

func TestRemoteStatusError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrRemoteServer},
		{http.StatusServiceUnavailable, ErrRemoteServer},
		{http.StatusTeapot, ErrRemoteStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := error(&RemoteStatusError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRemoteStatusError_Error(t *testing.T) {
	assert.Equal(t, "http 404: Not Found", (&RemoteStatusError{StatusCode: 404}).Error())
	assert.Equal(t, "http 400: bad input", (&RemoteStatusError{StatusCode: 400, Body: "bad input"}).Error())
}
