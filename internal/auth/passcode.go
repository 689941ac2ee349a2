package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/costshare/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasscodeLength is the shortest passcode a ledger may be protected with.
const MinPasscodeLength = 4

var (
	ErrWrongPasscode = errors.New("wrong ledger passcode")
	ErrWeakPasscode  = fmt.Errorf("passcode must be at least %d characters", MinPasscodeLength)
)

// LedgerStorage is the subset of storage the authenticator needs.
type LedgerStorage interface {
	GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error)
}

// PasscodeAuthenticator protects ledgers with a bcrypt-hashed passcode.
type PasscodeAuthenticator struct {
	storage LedgerStorage
	cost    int
}

// NewPasscodeAuthenticator creates a passcode authenticator using bcrypt's
// default cost.
func NewPasscodeAuthenticator(storage LedgerStorage) *PasscodeAuthenticator {
	return &PasscodeAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateCredential checks the passcode length.
func (a *PasscodeAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasscodeLength {
		return ErrWeakPasscode
	}
	return nil
}

// Protect hashes a passcode for storage on a ledger.
func (a *PasscodeAuthenticator) Protect(credential string) (string, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}

// Authenticate loads the ledger and compares the passcode with its hash.
func (a *PasscodeAuthenticator) Authenticate(ctx context.Context, ledgerID, credential string) (*models.Ledger, error) {
	ledger, err := a.storage.GetLedger(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if !ledger.Protected() {
		return ledger, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ledger.PasscodeHash), []byte(credential)); err != nil {
		return nil, ErrWrongPasscode
	}
	return ledger, nil
}
