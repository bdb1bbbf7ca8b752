package service

import (
	"fmt"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/retry"
	"github.com/MKhiriev/hubspot-bridge/models"
)

type Services struct {
	ContactService ContactService
	OAuthService   OAuthService
	WebhookService WebhookService
	AppInfoService AppInfoService
}

func NewServices(crmAdapter adapter.CRMAdapter, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	policy := retry.Policy{
		MaxAttempts:        cfg.Retry.MaxAttempts,
		DefaultBackoff:     cfg.Retry.DefaultBackoff,
		ServerErrorBackoff: cfg.Retry.ServerErrorBackoff,
		Sleep:              retry.Sleep,
	}

	return &Services{
		ContactService: NewContactService(crmAdapter, policy, logger),
		OAuthService:   NewOAuthService(crmAdapter, cfg.HubSpot, cfg.App, logger),
		WebhookService: NewWebhookService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
