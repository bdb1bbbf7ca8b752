package models

// TokenResponse is the token record returned by the OAuth token endpoint.
// Fields map 1:1 onto the remote JSON.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// Authorization renders the token as an Authorization header value,
// e.g. "bearer abc". An empty token type falls back to "Bearer".
func (t TokenResponse) Authorization() string {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.AccessToken
}

// RefreshTokenRequest is the body of the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
