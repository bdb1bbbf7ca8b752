package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
		WebhookSecret string `json:"webhook_secret"`
		StateSignKey  string `json:"state_sign_key"`
	} `json:"app,omitempty"`

	HubSpot struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURL  string `json:"redirect_url"`
		AuthURL      string `json:"auth_url"`
		TokenURL     string `json:"token_url"`
		Scopes       string `json:"scopes"`
		APIBaseURL   string `json:"api_base_url"`
	} `json:"hubspot,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout    Duration `json:"request_timeout"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		Burst             int      `json:"burst"`
	} `json:"adapter,omitempty"`

	Retry struct {
		MaxAttempts        int      `json:"max_attempts"`
		DefaultBackoff     Duration `json:"default_backoff"`
		ServerErrorBackoff Duration `json:"server_error_backoff"`
	} `json:"retry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			WebhookSecret: jsonCfg.App.WebhookSecret,
			StateSignKey:  jsonCfg.App.StateSignKey,
		},
		HubSpot: HubSpot{
			ClientID:     jsonCfg.HubSpot.ClientID,
			ClientSecret: jsonCfg.HubSpot.ClientSecret,
			RedirectURL:  jsonCfg.HubSpot.RedirectURL,
			AuthURL:      jsonCfg.HubSpot.AuthURL,
			TokenURL:     jsonCfg.HubSpot.TokenURL,
			Scopes:       jsonCfg.HubSpot.Scopes,
			APIBaseURL:   jsonCfg.HubSpot.APIBaseURL,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			Burst:             jsonCfg.Adapter.Burst,
		},
		Retry: Retry{
			MaxAttempts:        jsonCfg.Retry.MaxAttempts,
			DefaultBackoff:     time.Duration(jsonCfg.Retry.DefaultBackoff),
			ServerErrorBackoff: time.Duration(jsonCfg.Retry.ServerErrorBackoff),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
