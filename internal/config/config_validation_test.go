package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() StructuredConfig {
	cfg := *credentialsConfig()
	cfg.applyDefaults()
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid with defaults",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:   "empty webhook secret is allowed",
			mutate: func(cfg *StructuredConfig) { cfg.App.WebhookSecret = "" },
		},
		{
			name:    "missing client id",
			mutate:  func(cfg *StructuredConfig) { cfg.HubSpot.ClientID = "  " },
			wantErr: ErrInvalidHubSpotConfigs,
		},
		{
			name:    "missing client secret",
			mutate:  func(cfg *StructuredConfig) { cfg.HubSpot.ClientSecret = "" },
			wantErr: ErrInvalidHubSpotConfigs,
		},
		{
			name:    "missing redirect url",
			mutate:  func(cfg *StructuredConfig) { cfg.HubSpot.RedirectURL = "" },
			wantErr: ErrInvalidHubSpotConfigs,
		},
		{
			name:    "relative token url",
			mutate:  func(cfg *StructuredConfig) { cfg.HubSpot.TokenURL = "/oauth/v1/token" },
			wantErr: ErrInvalidHubSpotConfigs,
		},
		{
			name:    "zero attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.Retry.MaxAttempts = 0 },
			wantErr: ErrInvalidRetryConfigs,
		},
		{
			name:    "negative backoff",
			mutate:  func(cfg *StructuredConfig) { cfg.Retry.DefaultBackoff = -time.Second },
			wantErr: ErrInvalidRetryConfigs,
		},
		{
			name:    "negative rate",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestsPerSecond = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
