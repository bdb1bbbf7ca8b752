package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateStateToken creates a signed HMAC-SHA256 JWT used as the OAuth
// "state" parameter.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the state
//   - ID        (jti): a random nonce so every state is unique
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	state, err := utils.GenerateStateToken("hubspot-bridge", 10*time.Minute, "secret")
func GenerateStateToken(issuer string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating state token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing state token: %w", err)
	}

	return signed, nil
}

// ValidateStateToken verifies the signature, the issuer and the expiry of a
// state produced by GenerateStateToken.
func ValidateStateToken(state, signKey, issuer string) error {
	if state == "" {
		return errors.New("empty state")
	}

	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return fmt.Errorf("error occurred validating state token: %w", err)
	}

	return nil
}
