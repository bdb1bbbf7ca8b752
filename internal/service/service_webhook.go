package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/metrics"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
)

type webhookService struct {
	secret string

	logger *logger.Logger
}

// NewWebhookService returns a WebhookService bound to cfg.WebhookSecret.
// With an empty secret every verification fails.
func NewWebhookService(cfg config.App, logger *logger.Logger) WebhookService {
	if cfg.WebhookSecret == "" {
		logger.Warn().Msg("webhook secret is not configured, every webhook will be rejected")
	}

	return &webhookService{
		secret: cfg.WebhookSecret,
		logger: logger,
	}
}

func (s *webhookService) Verify(ctx context.Context, body []byte, signature string) bool {
	if body == nil {
		metrics.RecordWebhookVerification(false)
		return false
	}

	valid := VerifySignature(s.secret, string(body), signature)
	metrics.RecordWebhookVerification(valid)
	if !valid {
		logger.FromContext(ctx).Warn().Int("body_size", len(body)).Msg("webhook signature mismatch")
	}

	return valid
}

// VerifySignature reports whether signature equals the lowercase hex SHA-256
// of secret followed by body. The comparison ignores case and runs in
// constant time for equal-length inputs. Empty secret, body or signature
// yield false, and so does any panic during the computation.
func VerifySignature(secret, body, signature string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	if secret == "" || body == "" || signature == "" {
		return false
	}

	expected := utils.SHA256Hex([]byte(secret), []byte(body))
	got := strings.ToLower(signature)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
