package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
)

// auth requires an "Authorization" header and stores its value in the
// request context under [utils.AuthTokenCtxKey]. The token is not checked
// here; the CRM decides whether it is valid.
//
// Requests without a header, or with a scheme but no token, are rejected
// with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if masked := utils.MaskToken(token); masked == utils.MaskedShortToken {
			log.Warn().Msg("authorization token is suspiciously short")
		} else {
			log.Debug().Str("token", masked).Msg("forwarding caller token")
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthToken(r.Context(), token)))
	})
}

// getTokenFromAuthHeader accepts either "<scheme> <token>" or a bare token.
// A "Bearer" scheme is normalised to "Bearer <token>", anything else is
// returned as is. A lone "Bearer" yields [ErrEmptyToken].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if strings.EqualFold(authHeader, "bearer") {
		return "", ErrEmptyToken
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found {
		return authHeader, nil
	}
	if strings.EqualFold(scheme, "bearer") {
		return utils.NormalizeBearer(strings.TrimSpace(token)), nil
	}

	return authHeader, nil
}
