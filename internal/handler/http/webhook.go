package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/hubspot-bridge/internal/app"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
)

const signatureHeader = "X-HubSpot-Signature"

// contactCreationWebhook verifies the CRM's contact-creation callback.
// The raw body is hashed exactly as received. Responses are plain text:
// 200 when the signature matches, 400 otherwise.
func (h *Handler) contactCreationWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		log.Warn().Msg("webhook without signature")
		http.Error(w, ErrMissingSignature.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, utils.MaxJSONBodySize))
	if err != nil {
		log.Err(err).Msg("error reading webhook body")
		http.Error(w, app.MsgInvalidBody, http.StatusBadRequest)
		return
	}

	if !h.services.WebhookService.Verify(r.Context(), body, signature) {
		http.Error(w, ErrInvalidSignature.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Int("size", len(body)).Msg("contact creation webhook accepted")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(app.MsgWebhookProcessed))
}
