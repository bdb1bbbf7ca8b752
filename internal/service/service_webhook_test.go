package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/stretchr/testify/assert"
)

// sha256("s3cr3thello")
const helloSignature = "4e8d9216f4332e05a53b3899a81079517baf95166a60a5c6c98e7c5d0f90a15c"

// ── VerifySignature ──────────────────────────────────────────────────────────

func TestVerifySignature(t *testing.T) {
	sig := helloSignature

	tests := []struct {
		name      string
		secret    string
		body      string
		signature string
		want      bool
	}{
		{name: "valid", secret: "s3cr3t", body: "hello", signature: sig, want: true},
		{name: "uppercase signature", secret: "s3cr3t", body: "hello", signature: strings.ToUpper(sig), want: true},
		{name: "one character altered", secret: "s3cr3t", body: "hello", signature: alterFirst(sig), want: false},
		{name: "wrong secret", secret: "other", body: "hello", signature: sig, want: false},
		{name: "wrong body", secret: "s3cr3t", body: "hello!", signature: sig, want: false},
		{name: "truncated", secret: "s3cr3t", body: "hello", signature: sig[:32], want: false},
		{name: "padded", secret: "s3cr3t", body: "hello", signature: " " + sig, want: false},
		{name: "empty secret", secret: "", body: "hello", signature: sig, want: false},
		{name: "empty body", secret: "s3cr3t", body: "", signature: sig, want: false},
		{name: "empty signature", secret: "s3cr3t", body: "hello", signature: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifySignature(tt.secret, tt.body, tt.signature))
		})
	}
}

func TestVerifySignature_Idempotent(t *testing.T) {
	sig := helloSignature

	for i := 0; i < 3; i++ {
		assert.True(t, VerifySignature("s3cr3t", "hello", sig))
	}
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestWebhookService_Verify(t *testing.T) {
	svc := NewWebhookService(config.App{WebhookSecret: "s3cr3t"}, logger.Nop())
	sig := helloSignature

	assert.True(t, svc.Verify(context.Background(), []byte("hello"), sig))
	assert.False(t, svc.Verify(context.Background(), []byte("hello"), alterFirst(sig)))
	assert.False(t, svc.Verify(context.Background(), nil, sig))
}

func TestWebhookService_NoSecret_RejectsEverything(t *testing.T) {
	svc := NewWebhookService(config.App{}, logger.Nop())

	assert.False(t, svc.Verify(context.Background(), []byte("hello"), helloSignature))
}

func alterFirst(sig string) string {
	if sig[0] == '0' {
		return "1" + sig[1:]
	}
	return "0" + sig[1:]
}
