// Package http implements the inbound HTTP surface of the bridge.
//
// It wires the chi router, the OAuth, contact, webhook and version handlers,
// and the middleware chain (trace id, access logging, metrics, CORS and the
// Authorization header check) in front of the service layer. Service errors
// are translated into [models.ErrorResponse] bodies by writeError.
package http
