// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the HubSpot CRM and
// OAuth endpoints.
//
// The primary abstraction is [CRMAdapter], which decouples the service layer
// from the wire protocol. The package ships a resty based implementation
// ([NewHTTPCRMAdapter]) that paces every call through a token bucket limiter.
//
// Single round-trip calls map non-2xx responses to [*RemoteStatusError],
// which unwraps to the sentinels in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429). The batch call
// returns the raw response instead: deciding what a status means there is the
// retry policy's job.
package adapter

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/MKhiriev/hubspot-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crm_adapter_mock.go -package=mock

// CRMAdapter defines communication with the HubSpot API. token is the
// caller's access token, with or without the "Bearer " prefix.
type CRMAdapter interface {
	// ListContacts fetches one page of contacts. offset is passed as the
	// remote "after" cursor. The remote JSON body is returned verbatim.
	ListContacts(ctx context.Context, token string, offset, limit int) (json.RawMessage, error)

	// GetContact fetches a single contact by its remote id.
	GetContact(ctx context.Context, token, contactID string) (json.RawMessage, error)

	// CreateContact creates a single contact in one round trip.
	CreateContact(ctx context.Context, token string, input models.ContactInput) (json.RawMessage, error)

	// SendContactsBatch posts an already serialised batch create payload and
	// returns the remote status, headers and body whatever the status is.
	// An error is returned only when no response was received.
	SendContactsBatch(ctx context.Context, token string, payload []byte) (models.RemoteResponse, error)

	// ExchangeToken posts form to the OAuth token endpoint and decodes the
	// token response.
	ExchangeToken(ctx context.Context, form url.Values) (models.TokenResponse, error)
}
