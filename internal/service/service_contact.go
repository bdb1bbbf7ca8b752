// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/retry"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/internal/validators"
	"github.com/MKhiriev/hubspot-bridge/models"
)

// contactService is the concrete implementation of ContactService.
// Single-record calls are one round trip through the adapter. Batch creation
// runs the retry loop in service_contact_batch.go.
type contactService struct {
	adapter   adapter.CRMAdapter
	validator validators.Validator

	// policy is copied into a fresh retry.State for every batch submission.
	policy retry.Policy

	logger *logger.Logger
}

// NewContactService constructs a ContactService on top of crmAdapter.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewContactService(crmAdapter adapter.CRMAdapter, policy retry.Policy, logger *logger.Logger) ContactService {
	return &contactService{
		adapter:   crmAdapter,
		validator: validators.NewContactValidator(),
		policy:    policy,
		logger:    logger,
	}
}

// ListContacts returns one page of contacts as the remote sent it.
//
// Returns a *ValidationError when the token is missing or the page is out of
// range (offset < 0, limit outside 1..100).
func (s *contactService) ListContacts(ctx context.Context, token string, page models.ContactsPage) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, page); err != nil {
		log.Warn().Err(err).Int("offset", page.Offset).Int("limit", page.Limit).Msg("invalid contacts page")
		return nil, newValidationError(err)
	}

	body, err := s.adapter.ListContacts(ctx, token, page.Offset, page.Limit)
	if err != nil {
		log.Err(err).Msg("listing contacts failed")
		return nil, mapSingleCallError(err)
	}

	return body, nil
}

// GetContact returns a single contact as the remote sent it.
func (s *contactService) GetContact(ctx context.Context, token string, contactID string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, models.ContactID(contactID)); err != nil {
		return nil, newValidationError(err)
	}

	body, err := s.adapter.GetContact(ctx, token, strings.TrimSpace(contactID))
	if err != nil {
		log.Err(err).Str("contact_id", contactID).Msg("getting contact failed")
		return nil, mapSingleCallError(err)
	}

	return body, nil
}

// CreateContact creates one contact. A contact without any field is
// forwarded as is; the remote decides whether it is acceptable.
func (s *contactService) CreateContact(ctx context.Context, token string, contact models.Contact) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if err := s.checkToken(token); err != nil {
		return nil, err
	}

	log.Info().Str("email", contact.Email).Str("token", utils.MaskToken(token)).Msg("creating contact")

	body, err := s.adapter.CreateContact(ctx, token, models.NewContactInput(contact))
	if err != nil {
		log.Err(err).Str("email", contact.Email).Msg("creating contact failed")
		return nil, mapSingleCallError(err)
	}

	return body, nil
}

func (s *contactService) checkToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return newValidationError(ErrMissingToken)
	}
	return nil
}

// mapSingleCallError converts adapter errors of single round-trip calls into
// the service error taxonomy. Nothing is retried here.
func mapSingleCallError(err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := contextError(err); ctxErr != nil {
		return ctxErr
	}

	var statusErr *adapter.RemoteStatusError
	if errors.As(err, &statusErr) {
		return &RemoteRequestError{StatusCode: statusErr.StatusCode, Body: statusErr.Body, Err: err}
	}

	return &RemoteRequestError{Err: fmt.Errorf("transport: %w", err)}
}
