package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level minimum log level
//	-client-id HubSpot OAuth client id
//	-client-secret HubSpot OAuth client secret
//	-redirect-url OAuth redirect uri
//	-scopes space-separated OAuth scopes
//	-api-base-url CRM API base url
//	-webhook-secret webhook signature secret
//	-state-sign-key OAuth state signing key
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-adapter-timeout outbound request timeout
//	-rps outbound requests per second (0 = unlimited)
//	-max-attempts batch submission attempt ceiling
//	-backoff default rate-limit backoff
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var logLevel string
	var clientID, clientSecret, redirectURL, scopes, apiBaseURL string
	var webhookSecret, stateSignKey string
	var requestTimeout, adapterTimeout, backoff time.Duration
	var rps float64
	var maxAttempts int

	fs := flag.NewFlagSet("hubspot-bridge", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&clientID, "client-id", "", "HubSpot OAuth client id")
	fs.StringVar(&clientSecret, "client-secret", "", "HubSpot OAuth client secret")
	fs.StringVar(&redirectURL, "redirect-url", "", "OAuth redirect uri")
	fs.StringVar(&scopes, "scopes", "", "Space-separated OAuth scopes")
	fs.StringVar(&apiBaseURL, "api-base-url", "", "CRM API base url")
	fs.StringVar(&webhookSecret, "webhook-secret", "", "Webhook signature secret")
	fs.StringVar(&stateSignKey, "state-sign-key", "", "OAuth state signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&rps, "rps", 0, "Outbound requests per second, 0 for unlimited")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Batch submission attempt ceiling")
	fs.DurationVar(&backoff, "backoff", 0, "Default rate-limit backoff (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			WebhookSecret: webhookSecret,
			StateSignKey:  stateSignKey,
		},
		HubSpot: HubSpot{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			APIBaseURL:   apiBaseURL,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout:    adapterTimeout,
			RequestsPerSecond: rps,
		},
		Retry: Retry{
			MaxAttempts:    maxAttempts,
			DefaultBackoff: backoff,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range and checks IP correctness unless host is "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
