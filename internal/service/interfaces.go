package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/hubspot-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ContactService forwards contact operations to the CRM. token is the
// caller's access token as received in the Authorization header.
type ContactService interface {
	ListContacts(ctx context.Context, token string, page models.ContactsPage) (json.RawMessage, error)
	GetContact(ctx context.Context, token string, contactID string) (json.RawMessage, error)
	CreateContact(ctx context.Context, token string, contact models.Contact) (json.RawMessage, error)

	// CreateContactsBatch submits up to 100 contacts in one logical call,
	// retrying rate-limited and server-failed attempts.
	CreateContactsBatch(ctx context.Context, token string, contacts []models.Contact) (json.RawMessage, error)
}

// OAuthService runs the authorization-code flow against the CRM.
type OAuthService interface {
	// AuthorizationURL returns the URL the user must visit to grant access.
	AuthorizationURL(ctx context.Context) (string, error)
	ExchangeCode(ctx context.Context, code, state string) (models.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (models.TokenResponse, error)
}

// WebhookService authenticates inbound CRM callbacks.
type WebhookService interface {
	// Verify reports whether signature matches body under the configured
	// secret. A nil body counts as absent.
	Verify(ctx context.Context, body []byte, signature string) bool
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
