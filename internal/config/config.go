// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// hubspot-bridge service. It aggregates all sub-configurations and is
// populated by merging values from environment variables (optionally seeded
// from a .env file), command-line flags, and an optional JSON file.
//
// Once built, the value is treated as immutable: components receive the
// sub-configuration they need by value at construction time.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// shared secrets used by the webhook verifier and OAuth state signer.
	App App `envPrefix:"APP_"`

	// HubSpot holds the OAuth client credentials and the remote endpoints.
	HubSpot HubSpot `envPrefix:"HUBSPOT_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Retry holds the retry budget of the batch submission client.
	Retry Retry `envPrefix:"RETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// WebhookSecret is the shared secret used to verify X-HubSpot-Signature.
	// When empty every webhook fails verification.
	// Env: APP_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// StateSignKey signs the OAuth state parameter. When empty no state is
	// issued and none is checked on callback.
	// Env: APP_STATE_SIGN_KEY
	StateSignKey string `env:"STATE_SIGN_KEY"`
}

// HubSpot holds the OAuth application credentials and remote endpoints.
type HubSpot struct {
	// Env: HUBSPOT_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: HUBSPOT_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
	// RedirectURL is the OAuth redirect_uri registered for the application.
	// Env: HUBSPOT_REDIRECT_URL
	RedirectURL string `env:"REDIRECT_URL"`
	// AuthURL is the authorization page users are redirected to.
	// Env: HUBSPOT_AUTH_URL
	AuthURL string `env:"AUTH_URL"`
	// TokenURL is the OAuth token endpoint.
	// Env: HUBSPOT_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`
	// Scopes is the space-separated scope list requested on authorization.
	// Env: HUBSPOT_SCOPES
	Scopes string `env:"SCOPES"`
	// APIBaseURL is the base of the CRM REST API.
	// Env: HUBSPOT_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080" or ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request's headers and body.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma-separated in the environment.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds settings for the outbound CRM transport.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RequestsPerSecond paces outbound calls. Zero disables pacing.
	// Env: ADAPTER_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`

	// Burst is the pacing bucket size, used only when RequestsPerSecond > 0.
	// Env: ADAPTER_BURST
	Burst int `env:"BURST"`
}

// Retry holds the retry budget of the batch submission client.
type Retry struct {
	// MaxAttempts is the attempt ceiling, including the first attempt.
	// Env: RETRY_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// DefaultBackoff is the wait used after a rate-limited attempt when the
	// remote gives no Retry-After hint.
	// Env: RETRY_DEFAULT_BACKOFF
	DefaultBackoff time.Duration `env:"DEFAULT_BACKOFF"`

	// ServerErrorBackoff is the linear base for 5xx retries. When zero the
	// current rate-limit backoff is used as the base.
	// Env: RETRY_SERVER_ERROR_BACKOFF
	ServerErrorBackoff time.Duration `env:"SERVER_ERROR_BACKOFF"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultHTTPAddress      = ":8080"
	DefaultServerTimeout    = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultAdapterTimeout   = 30 * time.Second
	DefaultAPIBaseURL       = "https://api.hubapi.com"
	DefaultAuthURL          = "https://app.hubspot.com/oauth/authorize"
	DefaultTokenURL         = "https://api.hubapi.com/oauth/v1/token"
	DefaultRetryMaxAttempts = 3
	DefaultRetryBackoff     = 10 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.HubSpot.APIBaseURL == "" {
		cfg.HubSpot.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.HubSpot.AuthURL == "" {
		cfg.HubSpot.AuthURL = DefaultAuthURL
	}
	if cfg.HubSpot.TokenURL == "" {
		cfg.HubSpot.TokenURL = DefaultTokenURL
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = DefaultRetryMaxAttempts
	}
	if cfg.Retry.DefaultBackoff == 0 {
		cfg.Retry.DefaultBackoff = DefaultRetryBackoff
	}
}
