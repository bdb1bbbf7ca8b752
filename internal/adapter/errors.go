package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest      = errors.New("remote rejected request")
	ErrUnauthorized    = errors.New("remote unauthorized")
	ErrForbidden       = errors.New("remote forbidden")
	ErrNotFound        = errors.New("remote resource not found")
	ErrConflict        = errors.New("remote conflict")
	ErrTooManyRequests = errors.New("remote rate limit exceeded")
	ErrRemoteServer    = errors.New("remote server error")
	ErrRemoteStatus    = errors.New("unexpected remote status")
)

// RemoteStatusError is returned for every non-2xx response of a
// single-round-trip call. It unwraps to the sentinel matching StatusCode.
type RemoteStatusError struct {
	StatusCode int
	Body       string
}

func (e *RemoteStatusError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

func (e *RemoteStatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrTooManyRequests
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrRemoteServer
	default:
		return ErrRemoteStatus
	}
}
