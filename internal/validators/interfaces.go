// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input of the contact operations before
// any CRM call is made: batch bounds, listing pages and contact ids.
//
// [ContactValidator] implements [Validator]; field names scope a check to
// part of a value, e.g. only the batch size.
package validators

import "context"

// Validator validates one input value, optionally restricted to the named
// fields. It returns the first violation found.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
