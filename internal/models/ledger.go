package models

// Ledger represents one gathering whose families and expenses are settled
// together.
type Ledger struct {
	// ID is the unique identifier for the ledger (UUID format).
	ID string

	// Name is the display name of the ledger (e.g., "Nowruz trip").
	Name string

	// PasscodeHash is the bcrypt hash of the optional ledger passcode.
	// Empty means the ledger is open to anyone who knows its ID.
	PasscodeHash string

	// CreatedAt is the Unix timestamp when the ledger was created.
	CreatedAt int64
}

// Protected reports whether the ledger requires an access token.
func (l *Ledger) Protected() bool {
	return l.PasscodeHash != ""
}
