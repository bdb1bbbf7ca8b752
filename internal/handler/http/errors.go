// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries a
	// scheme but no token after it.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Webhook rejections. Both are answered with 400 and a plain text body.
var (
	ErrMissingSignature = errors.New("missing signature")
	ErrInvalidSignature = errors.New("invalid signature")
)

// ErrInvalidJSON is reported for request bodies that cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")
