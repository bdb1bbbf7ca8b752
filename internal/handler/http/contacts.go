// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
	"github.com/go-chi/chi/v5"
)

// listContacts forwards ?offset=&limit= (defaults 0 and 10) and returns the
// remote page verbatim.
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	page := models.ContactsPage{Offset: models.DefaultContactsOffset, Limit: models.DefaultContactsLimit}

	var err error
	if page.Offset, err = intQuery(r, "offset", page.Offset); err != nil {
		writeBadRequest(w, r, err)
		return
	}
	if page.Limit, err = intQuery(r, "limit", page.Limit); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	body, err := h.services.ContactService.ListContacts(r.Context(), authToken(r), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRaw(w, r, body, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	body, err := h.services.ContactService.GetContact(r.Context(), authToken(r), chi.URLParam(r, "contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRaw(w, r, body, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := utils.DecodeJSON(w, r, &contact); err != nil {
		writeBadRequest(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	body, err := h.services.ContactService.CreateContact(r.Context(), authToken(r), contact)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRaw(w, r, body, http.StatusCreated)
}

func (h *Handler) createContactsBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchContactRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	logger.FromRequest(r).Debug().
		Int("size", len(req.Contacts)).
		Strs("sample_emails", sampleEmails(req.Contacts, emailSampleSize)).
		Msg("received contacts batch")

	body, err := h.services.ContactService.CreateContactsBatch(r.Context(), authToken(r), req.Contacts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeRaw(w, r, body, http.StatusCreated)
}

// emailSampleSize bounds the e-mails logged per batch.
const emailSampleSize = 3

func sampleEmails(contacts []models.Contact, n int) []string {
	sample := make([]string, 0, n)
	for _, c := range contacts {
		if len(sample) == n {
			break
		}
		if c.Email != "" {
			sample = append(sample, c.Email)
		}
	}
	return sample
}

func authToken(r *http.Request) string {
	token, _ := utils.GetAuthTokenFromContext(r.Context())
	return token
}

func intQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", name)
	}
	return value, nil
}

// writeRaw writes a remote JSON body unchanged. An empty body becomes {}.
func writeRaw(w http.ResponseWriter, r *http.Request, body json.RawMessage, statusCode int) {
	if len(body) == 0 {
		body = json.RawMessage(`{}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}
