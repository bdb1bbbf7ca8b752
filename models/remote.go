package models

import "net/http"

// RemoteResponse is an unclassified response from the remote CRM API.
// It is returned for calls whose status handling belongs to the caller,
// such as the retried batch submission.
type RemoteResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
