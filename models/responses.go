package models

import "time"

// AuthURLResponse carries the URL a user must be redirected to in order to
// start the OAuth authorization-code flow.
type AuthURLResponse struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Message          string `json:"message"`
}

// CallbackResponse is returned after a successful code-for-token exchange.
type CallbackResponse struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	Token         TokenResponse `json:"token"`
	Authorization string        `json:"authorization"`
}

// ErrorResponse is the structured error body returned by the JSON endpoints.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	// Error is a stable machine-readable error kind, e.g. "rate_limit_exceeded".
	Error   string `json:"error"`
	Message string `json:"message"`
	// RetryAfter is the hint in milliseconds; set only for rate limit errors.
	RetryAfter *int64 `json:"retryAfter,omitempty"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
