package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
)

const (
	stateIssuer = "hubspot-bridge"
	stateTTL    = 10 * time.Minute

	grantAuthorizationCode = "authorization_code"
	grantRefreshToken      = "refresh_token"
)

// oauthService is the concrete implementation of OAuthService.
// Each exchange is a single round trip; nothing is retried or stored.
type oauthService struct {
	adapter adapter.CRMAdapter

	clientID     string
	clientSecret string
	redirectURL  string
	authURL      string
	scopes       string

	// stateSignKey signs the OAuth state. Empty disables state handling.
	stateSignKey string

	logger *logger.Logger
}

func NewOAuthService(crmAdapter adapter.CRMAdapter, hubspotCfg config.HubSpot, appCfg config.App, logger *logger.Logger) OAuthService {
	return &oauthService{
		adapter:      crmAdapter,
		clientID:     hubspotCfg.ClientID,
		clientSecret: hubspotCfg.ClientSecret,
		redirectURL:  hubspotCfg.RedirectURL,
		authURL:      hubspotCfg.AuthURL,
		scopes:       hubspotCfg.Scopes,
		stateSignKey: appCfg.StateSignKey,
		logger:       logger,
	}
}

// AuthorizationURL builds
// <authURL>?client_id=..&redirect_uri=..&scope=..&response_type=code
// and appends a signed state when a state sign key is configured.
func (s *oauthService) AuthorizationURL(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("client_id", s.clientID)
	query.Set("redirect_uri", s.redirectURL)
	query.Set("scope", s.scopes)
	query.Set("response_type", "code")

	if s.stateSignKey != "" {
		state, err := utils.GenerateStateToken(stateIssuer, stateTTL, s.stateSignKey)
		if err != nil {
			return "", fmt.Errorf("error generating oauth state: %w", err)
		}
		query.Set("state", state)
	}

	separator := "?"
	if strings.Contains(s.authURL, "?") {
		separator = "&"
	}

	return s.authURL + separator + query.Encode(), nil
}

// ExchangeCode trades an authorization code for tokens. When a state sign
// key is configured the state must be one this service issued.
func (s *oauthService) ExchangeCode(ctx context.Context, code, state string) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(code) == "" {
		return models.TokenResponse{}, newValidationError(ErrMissingCode)
	}
	if s.stateSignKey != "" {
		if err := utils.ValidateStateToken(state, s.stateSignKey, stateIssuer); err != nil {
			log.Warn().Err(err).Msg("rejected oauth callback state")
			return models.TokenResponse{}, newValidationError(fmt.Errorf("%w: %w", ErrInvalidState, err))
		}
	}

	form := url.Values{}
	form.Set("grant_type", grantAuthorizationCode)
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("redirect_uri", s.redirectURL)
	form.Set("code", code)

	return s.exchange(ctx, "error exchanging code for token", form)
}

// RefreshToken trades a refresh token for a new token pair.
func (s *oauthService) RefreshToken(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return models.TokenResponse{}, newValidationError(ErrMissingRefreshToken)
	}

	form := url.Values{}
	form.Set("grant_type", grantRefreshToken)
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("refresh_token", refreshToken)

	return s.exchange(ctx, "error refreshing token", form)
}

func (s *oauthService) exchange(ctx context.Context, op string, form url.Values) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	token, err := s.adapter.ExchangeToken(ctx, form)
	if err != nil {
		if ctxErr := contextError(err); ctxErr != nil {
			return models.TokenResponse{}, ctxErr
		}
		log.Err(err).Str("grant_type", form.Get("grant_type")).Msg("token exchange failed")
		return models.TokenResponse{}, &OAuthError{Op: op, Err: err}
	}

	if token.AccessToken == "" {
		return models.TokenResponse{}, &OAuthError{Op: op, Err: errors.New("token response has no access_token")}
	}

	log.Info().
		Str("grant_type", form.Get("grant_type")).
		Str("access_token", utils.MaskToken(token.AccessToken)).
		Int("expires_in", token.ExpiresIn).
		Msg("token obtained")

	return token, nil
}
