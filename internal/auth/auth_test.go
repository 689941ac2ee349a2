package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mmynk/costshare/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeLedgers map[string]*models.Ledger

func (f fakeLedgers) GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error) {
	ledger, ok := f[ledgerID]
	if !ok {
		return nil, fmt.Errorf("ledger not found: %s", ledgerID)
	}
	return ledger, nil
}

func TestPasscodeAuthenticator(t *testing.T) {
	ledgers := fakeLedgers{}
	a := NewPasscodeAuthenticator(ledgers)
	a.cost = bcrypt.MinCost
	ctx := context.Background()

	if _, err := a.Protect("123"); !errors.Is(err, ErrWeakPasscode) {
		t.Errorf("Protect(short) = %v, want ErrWeakPasscode", err)
	}

	hash, err := a.Protect("saffron")
	if err != nil {
		t.Fatalf("Protect failed: %v", err)
	}
	if hash == "saffron" {
		t.Fatal("passcode stored in clear text")
	}

	ledgers["locked"] = &models.Ledger{ID: "locked", PasscodeHash: hash}
	ledgers["open"] = &models.Ledger{ID: "open"}

	tests := []struct {
		name     string
		ledgerID string
		passcode string
		wantErr  error
	}{
		{name: "correct passcode", ledgerID: "locked", passcode: "saffron"},
		{name: "wrong passcode", ledgerID: "locked", passcode: "pistachio", wantErr: ErrWrongPasscode},
		{name: "open ledger ignores passcode", ledgerID: "open", passcode: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, err := a.Authenticate(ctx, tt.ledgerID, tt.passcode)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Authenticate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() failed: %v", err)
			}
			if ledger.ID != tt.ledgerID {
				t.Errorf("ledger = %s, want %s", ledger.ID, tt.ledgerID)
			}
		})
	}

	if _, err := a.Authenticate(ctx, "missing", "x"); err == nil {
		t.Error("expected error for missing ledger")
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	ledger := &models.Ledger{ID: "ledger-1"}

	token, expiresAt, err := m.Generate(ledger)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt %v is not in the future", expiresAt)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.LedgerID != "ledger-1" {
		t.Errorf("LedgerID = %s, want ledger-1", claims.LedgerID)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("ffffffffffffffffffffffffffffffff", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("0123456789abcdef0123456789abcdef", -time.Minute)
		token, _, err := expired.Generate(ledger)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() = %v, want ErrInvalidToken", err)
		}
	})
}
