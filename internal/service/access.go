package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/costshare/internal/calculator"
	"github.com/mmynk/costshare/internal/middleware"
	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

var (
	ErrEmptyName       = errors.New("family name must not be empty")
	ErrInvalidMembers  = errors.New("family must have at least one member")
	ErrEmptyItem       = errors.New("expense item must not be empty")
	ErrInvalidAmount   = errors.New("expense amount must be a positive number")
	ErrMissingLedgerID = errors.New("ledger_id is required")
)

// storageError maps a storage error to a Connect error. Missing records are
// NotFound; everything else is Internal.
func storageError(op string, err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("failed to %s", op))
}

// authorizeLedger loads the ledger and checks that the caller may access it.
// Open ledgers are readable and writable by anyone who knows the ID; a
// protected ledger needs a token issued for it.
func authorizeLedger(ctx context.Context, store storage.Store, ledgerID string) (*models.Ledger, error) {
	if ledgerID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, ErrMissingLedgerID)
	}
	ledger, err := store.GetLedger(ctx, ledgerID)
	if err != nil {
		return nil, storageError("get ledger", err)
	}
	if !ledger.Protected() {
		return ledger, nil
	}

	granted := middleware.GetLedgerID(ctx)
	if granted == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("ledger %s is protected, open it with its passcode", ledgerID))
	}
	if granted != ledger.ID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("token does not grant access to ledger %s", ledgerID))
	}
	return ledger, nil
}

func validateFamily(name string, members int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", connect.NewError(connect.CodeInvalidArgument, ErrEmptyName)
	}
	if members < 1 {
		return "", connect.NewError(connect.CodeInvalidArgument, ErrInvalidMembers)
	}
	return name, nil
}

func validateExpense(item string, amount float64) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", connect.NewError(connect.CodeInvalidArgument, ErrEmptyItem)
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", connect.NewError(connect.CodeInvalidArgument, ErrInvalidAmount)
	}
	return item, nil
}

func toLedger(l *models.Ledger) *Ledger {
	return &Ledger{
		ID:        l.ID,
		Name:      l.Name,
		Protected: l.Protected(),
		CreatedAt: l.CreatedAt,
	}
}

func toFamily(f models.Family) *Family {
	return &Family{
		ID:      f.ID,
		Name:    f.Name,
		Members: f.Members,
	}
}

func toExpense(e models.Expense, families []models.Family) *Expense {
	return &Expense{
		ID:         e.ID,
		FamilyID:   e.FamilyID,
		FamilyName: e.FamilyName,
		PayerName:  calculator.ResolveFamilyName(families, e.FamilyID),
		Item:       e.Item,
		Amount:     e.Amount,
	}
}
