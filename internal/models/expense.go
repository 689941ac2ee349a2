package models

// Expense represents a single cost paid by one family.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// LedgerID is the ledger this expense belongs to.
	LedgerID string `json:"-"`

	// FamilyID references the paying Family. It may dangle if the family
	// was deleted after the expense was recorded.
	FamilyID string `json:"familyId"`

	// FamilyName is a display copy of the payer's name. Storage rewrites it
	// when the family is renamed.
	FamilyName string `json:"familyName"`

	// Item is the description of what was bought.
	Item string `json:"item"`

	// Amount is the paid amount in the ledger currency.
	Amount float64 `json:"amount"`

	// Position is the zero-based order in which the expense was added.
	Position int `json:"-"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"-"`
}
