// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants written
// into HTTP response bodies by the bridge handlers.
package app

const (
	// MsgAuthorizeRedirect accompanies the authorization URL.
	MsgAuthorizeRedirect = "Redirect the user to this URL to authorize the application"

	// MsgAuthorizationSuccessful is returned after a successful code exchange.
	MsgAuthorizationSuccessful = "Authorization successful"

	// MsgAuthorizationFailed is used when the CRM reports an OAuth error
	// without an error_description.
	MsgAuthorizationFailed = "authorization failed"

	// MsgWebhookProcessed is the plain text body of an accepted webhook.
	MsgWebhookProcessed = "Webhook processed successfully"

	// MsgInvalidBody is returned when a request body cannot be read.
	MsgInvalidBody = "invalid body"
)
