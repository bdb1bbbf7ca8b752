package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hubspot-bridge/models"
)

// Field names accepted by [ContactValidator] to scope a validation.
const (
	FieldContacts  = "contacts"
	FieldBatchSize = "batch_size"
	FieldOffset    = "offset"
	FieldLimit     = "limit"
)

type ContactValidator struct {
}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

// Validate checks a [models.BatchContactRequest], [models.ContactsPage] or
// [models.ContactID], passed by value or pointer. Contacts themselves carry
// no required fields.
func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BatchContactRequest:
		return v.validateBatch(ctx, value, fields...)
	case *models.BatchContactRequest:
		if value == nil {
			return ErrNilContacts
		}
		return v.validateBatch(ctx, *value, fields...)

	case models.ContactsPage:
		return v.validatePage(ctx, value, fields...)
	case *models.ContactsPage:
		return v.validatePage(ctx, *value, fields...)

	case models.ContactID:
		return v.validateContactID(value)
	case *models.ContactID:
		return v.validateContactID(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateBatch(ctx context.Context, request models.BatchContactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContacts, FieldBatchSize}
	}

	for _, f := range fields {
		switch f {
		case FieldContacts:
			if request.Contacts == nil {
				return ErrNilContacts
			}
			if len(request.Contacts) == 0 {
				return ErrEmptyContacts
			}
		case FieldBatchSize:
			if len(request.Contacts) > models.MaxBatchSize {
				return fmt.Errorf("%w (got %d)", ErrBatchTooLarge, len(request.Contacts))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactValidator) validatePage(ctx context.Context, page models.ContactsPage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOffset, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOffset:
			if page.Offset < 0 {
				return ErrInvalidOffset
			}
		case FieldLimit:
			if page.Limit < 1 || page.Limit > models.MaxContactsLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContactValidator) validateContactID(id models.ContactID) error {
	if strings.TrimSpace(string(id)) == "" {
		return ErrEmptyContactID
	}
	return nil
}
