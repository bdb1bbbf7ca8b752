package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hubspot-bridge/internal/app"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
)

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.services.OAuthService.AuthorizationURL(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthURLResponse{
		AuthorizationURL: authURL,
		Message:          app.MsgAuthorizeRedirect,
	}, http.StatusOK)
}

// callback receives the redirect from the CRM's consent screen. A denied
// consent arrives as ?error=..&error_description=.. and is reported as is.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	if oauthErr := query.Get("error"); oauthErr != "" {
		log.Warn().Str("error", oauthErr).Msg("authorization denied")

		message := query.Get("error_description")
		if message == "" {
			message = app.MsgAuthorizationFailed
		}
		utils.WriteJSON(w, map[string]string{"error": oauthErr, "message": message}, http.StatusBadRequest)
		return
	}

	token, err := h.services.OAuthService.ExchangeCode(r.Context(), query.Get("code"), query.Get("state"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CallbackResponse{
		Success:       true,
		Message:       app.MsgAuthorizationSuccessful,
		Token:         token,
		Authorization: token.Authorization(),
	}, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshTokenRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	token, err := h.services.OAuthService.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, token, http.StatusOK)
}
