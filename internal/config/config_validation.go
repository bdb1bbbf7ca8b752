// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults must have
// been applied already.
//
// An empty App.WebhookSecret is accepted: webhook verification then fails
// closed for every request.
func (cfg *StructuredConfig) validate() error {
	hs := cfg.HubSpot
	if strings.TrimSpace(hs.ClientID) == "" || strings.TrimSpace(hs.ClientSecret) == "" {
		return fmt.Errorf("%w: client id and client secret are required", ErrInvalidHubSpotConfigs)
	}
	if strings.TrimSpace(hs.RedirectURL) == "" {
		return fmt.Errorf("%w: redirect url is required", ErrInvalidHubSpotConfigs)
	}
	for name, raw := range map[string]string{
		"auth url":     hs.AuthURL,
		"token url":    hs.TokenURL,
		"api base url": hs.APIBaseURL,
	} {
		if !isAbsoluteURL(raw) {
			return fmt.Errorf("%w: %s %q must be an absolute URL", ErrInvalidHubSpotConfigs, name, raw)
		}
	}

	if cfg.Retry.MaxAttempts < 1 || cfg.Retry.DefaultBackoff <= 0 || cfg.Retry.ServerErrorBackoff < 0 {
		return ErrInvalidRetryConfigs
	}

	if cfg.Adapter.RequestsPerSecond < 0 || cfg.Adapter.Burst < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && u.Scheme != "" && u.Host != ""
}
