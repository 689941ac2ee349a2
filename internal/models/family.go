package models

// Family represents a contributor group. Its weight in every split is the
// number of members.
type Family struct {
	// ID is the unique identifier for the family (UUID format).
	ID string `json:"id"`

	// LedgerID is the ledger this family belongs to.
	LedgerID string `json:"-"`

	// Name is the display name of the family.
	Name string `json:"name"`

	// Members is the number of people in the family. The presentation layer
	// guarantees Members >= 1; the calculator does not.
	Members int `json:"members"`

	// Position is the zero-based order in which the family was added.
	// Settlements are reported in this order.
	Position int `json:"-"`
}
