package models

// Default paging of contact listings.
const (
	DefaultContactsOffset = 0
	DefaultContactsLimit  = 10
	MaxContactsLimit      = 100
	MaxBatchSize          = 100
)

// ContactsPage selects one page of a contact listing.
type ContactsPage struct {
	Offset int
	Limit  int
}

// ContactID is the remote identifier of a single contact.
type ContactID string
