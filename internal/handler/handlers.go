package handler

import (
	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/handler/http"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
