package auth

import (
	"context"

	"github.com/mmynk/costshare/internal/models"
)

// Authenticator defines how ledgers are protected and opened.
// This abstraction allows swapping the passcode check for another method
// (invite links, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Protect validates a new credential and returns the value to store on
	// the ledger.
	Protect(credential string) (string, error)

	// Authenticate verifies the credential for a ledger and returns the
	// ledger if it matches. Unprotected ledgers accept any credential.
	Authenticate(ctx context.Context, ledgerID, credential string) (*models.Ledger, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
