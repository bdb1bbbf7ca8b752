// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Remote property names used by the CRM contacts API.
const (
	PropertyEmail     = "email"
	PropertyFirstName = "firstname"
	PropertyLastName  = "lastname"
	PropertyPhone     = "phone"
)

// Contact is a single CRM contact as accepted from API callers.
//
// No field is required: a contact with every field empty is legal input and
// produces an effectively empty remote object. Properties carries arbitrary
// caller-supplied extension values which are rendered as text on the wire.
type Contact struct {
	// ID is the remote identifier. It is ignored on create.
	ID string `json:"id,omitempty"`

	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// Properties holds extension properties keyed by their remote name.
	// Values may be any JSON scalar; objects and arrays are sent as JSON text.
	Properties map[string]any `json:"properties,omitempty"`
}

// RemoteProperties flattens c into the remote property mapping.
// Standard fields are written first, extension properties afterwards, so an
// extension key named like a standard field overrides it. Nil extension
// values are skipped.
func (c Contact) RemoteProperties() map[string]string {
	props := make(map[string]string, 4+len(c.Properties))

	if c.Email != "" {
		props[PropertyEmail] = c.Email
	}
	if c.FirstName != "" {
		props[PropertyFirstName] = c.FirstName
	}
	if c.LastName != "" {
		props[PropertyLastName] = c.LastName
	}
	if c.Phone != "" {
		props[PropertyPhone] = c.Phone
	}

	for key, value := range c.Properties {
		if value == nil {
			continue
		}
		props[key] = PropertyText(value)
	}

	return props
}

// PropertyText renders an extension property value as its textual wire form.
func PropertyText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case fmt.Stringer:
		return v.String()
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

// BatchContactRequest is the inbound body of the batch create endpoint.
type BatchContactRequest struct {
	Contacts []Contact `json:"contacts"`
}

// ContactInput is one element of the remote create payloads.
type ContactInput struct {
	Properties map[string]string `json:"properties"`
}

// BatchCreateInput is the outbound body of the remote batch create call:
// {"inputs":[{"properties":{...}}, ...]}.
type BatchCreateInput struct {
	Inputs []ContactInput `json:"inputs"`
}

// NewContactInput maps a caller contact onto its remote create shape.
func NewContactInput(c Contact) ContactInput {
	return ContactInput{Properties: c.RemoteProperties()}
}

// NewBatchCreateInput maps contacts onto the remote batch payload, keeping
// their order.
func NewBatchCreateInput(contacts []Contact) BatchCreateInput {
	inputs := make([]ContactInput, 0, len(contacts))
	for _, c := range contacts {
		inputs = append(inputs, NewContactInput(c))
	}
	return BatchCreateInput{Inputs: inputs}
}
