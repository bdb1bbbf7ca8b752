package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNilContacts    = errors.New("contacts list must not be null")
	ErrEmptyContacts  = errors.New("contacts list must not be empty")
	ErrBatchTooLarge  = errors.New("maximum number of contacts per batch exceeded, maximum allowed: 100")
	ErrInvalidOffset  = errors.New("offset must not be negative")
	ErrInvalidLimit   = errors.New("limit must be between 1 and 100")
	ErrEmptyContactID = errors.New("contact id is required")
)
