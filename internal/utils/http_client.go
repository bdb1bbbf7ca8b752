package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultHTTPClientTimeout is applied by NewHTTPClient when no positive
// timeout is given.
const DefaultHTTPClientTimeout = 30 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.hubapi.com", 10*time.Second)
//	resp, err := client.R().Get("/crm/v3/objects/contacts")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests resolve relative paths
// against baseURL (trailing slashes are trimmed) and are bounded by timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Resty's own retry support is
// left disabled; retries are decided by the caller.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultHTTPClientTimeout
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return &HTTPClient{Client: client}
}
