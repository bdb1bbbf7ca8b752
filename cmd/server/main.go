package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/handler"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/server"
	"github.com/MKhiriev/hubspot-bridge/internal/service"
	"github.com/MKhiriev/hubspot-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("hubspot-bridge", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("api_base_url", cfg.HubSpot.APIBaseURL).
		Int("max_attempts", cfg.Retry.MaxAttempts).
		Dur("default_backoff", cfg.Retry.DefaultBackoff).
		Msg("received configs")

	crmAdapter, err := adapter.NewHTTPCRMAdapter(cfg.HubSpot, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating CRM adapter")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(crmAdapter, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", valueOrNA(buildVersion))
	fmt.Printf("Build date: %s\n", valueOrNA(buildDate))
	fmt.Printf("Build commit: %s\n", valueOrNA(buildCommit))
}

func valueOrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
