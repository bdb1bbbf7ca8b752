package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInterrupted is returned when a submission's context ends while it
	// waits between attempts or while an attempt is in flight.
	ErrInterrupted = errors.New("request interrupted")

	ErrMissingToken        = errors.New("authorization token is required")
	ErrMissingCode         = errors.New("authorization code is required")
	ErrMissingRefreshToken = errors.New("refresh token is required")
	ErrInvalidState        = errors.New("invalid oauth state")
)

// ValidationError reports a caller error detected before any network call.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) error {
	return &ValidationError{Err: err}
}

// RateLimitExceededError is returned when the remote kept answering 429
// until the attempt budget ran out. RetryAfter is the last known backoff.
type RateLimitExceededError struct {
	RetryAfter time.Duration
	Attempts   int
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d attempts, retry after %s", e.Attempts, e.RetryAfter)
}

// RemoteServerError is returned when the remote kept failing with 5xx until
// the attempt budget ran out. Body is the last response body.
type RemoteServerError struct {
	StatusCode int
	Body       string
	Attempts   int
}

func (e *RemoteServerError) Error() string {
	return fmt.Sprintf("remote server error %d after %d attempts: %s", e.StatusCode, e.Attempts, e.Body)
}

// RemoteRequestError covers non-retryable remote failures: a non-2xx status
// other than 429 and 5xx, or a transport failure (StatusCode 0).
type RemoteRequestError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("remote request failed: %v", e.Err)
	}
	return fmt.Sprintf("remote request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// OAuthError reports a failed authorization-code or refresh-token exchange.
type OAuthError struct {
	Op  string
	Err error
}

func (e *OAuthError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OAuthError) Unwrap() error {
	return e.Err
}
