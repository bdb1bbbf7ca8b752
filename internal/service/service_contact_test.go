// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/validators"
	"github.com/MKhiriev/hubspot-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── ListContacts ─────────────────────────────────────────────────────────────

func TestListContacts_PassesPageThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().ListContacts(gomock.Any(), "token", 20, 10).
		Return(json.RawMessage(`{"results":[]}`), nil)

	got, err := svc.ListContacts(context.Background(), "token", models.ContactsPage{Offset: 20, Limit: 10})

	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(got))
}

func TestListContacts_InvalidPage(t *testing.T) {
	tests := []struct {
		name    string
		page    models.ContactsPage
		wantErr error
	}{
		{name: "negative offset", page: models.ContactsPage{Offset: -1, Limit: 10}, wantErr: validators.ErrInvalidOffset},
		{name: "zero limit", page: models.ContactsPage{Offset: 0, Limit: 0}, wantErr: validators.ErrInvalidLimit},
		{name: "limit over max", page: models.ContactsPage{Offset: 0, Limit: 101}, wantErr: validators.ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestContactSvc(t, ctrl)

			_, err := svc.ListContacts(context.Background(), "token", tt.page)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListContacts_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestContactSvc(t, ctrl)

	_, err := svc.ListContacts(context.Background(), "", models.ContactsPage{Limit: 10})

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestListContacts_RemoteStatusIsMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().ListContacts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &adapter.RemoteStatusError{StatusCode: http.StatusUnauthorized, Body: `{"message":"expired"}`})

	_, err := svc.ListContacts(context.Background(), "token", models.ContactsPage{Limit: 10})

	var requestErr *RemoteRequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Equal(t, http.StatusUnauthorized, requestErr.StatusCode)
	assert.Equal(t, `{"message":"expired"}`, requestErr.Body)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── GetContact ───────────────────────────────────────────────────────────────

func TestGetContact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().GetContact(gomock.Any(), "token", "42").
		Return(json.RawMessage(`{"id":"42"}`), nil)

	got, err := svc.GetContact(context.Background(), "token", " 42 ")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42"}`, string(got))
}

func TestGetContact_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestContactSvc(t, ctrl)

	_, err := svc.GetContact(context.Background(), "token", "   ")

	assert.ErrorIs(t, err, validators.ErrEmptyContactID)
}

func TestGetContact_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().GetContact(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &adapter.RemoteStatusError{StatusCode: http.StatusNotFound})

	_, err := svc.GetContact(context.Background(), "token", "404")

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestGetContact_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().GetContact(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, context.Canceled)

	_, err := svc.GetContact(context.Background(), "token", "1")

	assert.ErrorIs(t, err, ErrInterrupted)
}

// ── CreateContact ────────────────────────────────────────────────────────────

func TestCreateContact_MapsFieldsToRemoteProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	want := models.ContactInput{Properties: map[string]string{
		"email":     "a@b.c",
		"firstname": "Ann",
		"lifecycle": "lead",
	}}
	mockAdapter.EXPECT().CreateContact(gomock.Any(), "token", want).
		Return(json.RawMessage(`{"id":"1"}`), nil)

	got, err := svc.CreateContact(context.Background(), "token", models.Contact{
		Email:      "a@b.c",
		FirstName:  "Ann",
		Properties: map[string]any{"lifecycle": "lead"},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(got))
}

func TestCreateContact_EmptyContactIsForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().CreateContact(gomock.Any(), "token", models.ContactInput{Properties: map[string]string{}}).
		Return(json.RawMessage(`{"id":"2"}`), nil)

	_, err := svc.CreateContact(context.Background(), "token", models.Contact{})

	require.NoError(t, err)
}

func TestCreateContact_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestContactSvc(t, ctrl)

	mockAdapter.EXPECT().CreateContact(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: no route to host"))

	_, err := svc.CreateContact(context.Background(), "token", models.Contact{Email: "a@b.c"})

	var requestErr *RemoteRequestError
	require.ErrorAs(t, err, &requestErr)
	assert.Zero(t, requestErr.StatusCode)
}
