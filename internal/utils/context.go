// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, digests, bearer tokens,
// HTTP response writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthTokenCtxKey is the key used to store the caller-supplied CRM access
// token (the raw Authorization header value) in the request context.
var AuthTokenCtxKey = contextKey("authToken")

// WithAuthToken returns a copy of ctx carrying token under [AuthTokenCtxKey].
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AuthTokenCtxKey, token)
}

// GetAuthTokenFromContext retrieves the caller token from the context.
//
// Returns ok == false when the value is missing, has an unexpected type,
// or is an empty string.
func GetAuthTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AuthTokenCtxKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
