package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidHubSpotConfigs indicates missing OAuth client credentials or
	// remote endpoints.
	ErrInvalidHubSpotConfigs = errors.New("invalid hubspot configuration")
	// ErrInvalidRetryConfigs indicates a non-positive attempt ceiling or
	// backoff.
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound transport settings
	// (for example, a negative pacing rate).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
