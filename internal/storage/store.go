// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/costshare/internal/models"
)

// ErrNotFound is returned (wrapped) when a ledger, family or expense does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateLedger persists a new ledger. ID and CreatedAt are filled in
	// when empty.
	CreateLedger(ctx context.Context, ledger *models.Ledger) error

	// GetLedger retrieves a ledger by its ID.
	GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error)

	// ListLedgers returns all ledgers, newest first.
	ListLedgers(ctx context.Context) ([]*models.Ledger, error)

	// DeleteLedger removes a ledger with all its families and expenses.
	DeleteLedger(ctx context.Context, ledgerID string) error

	// CreateFamily appends a family to its ledger. ID and Position are
	// assigned by the store.
	CreateFamily(ctx context.Context, family *models.Family) error

	// GetFamily retrieves a family by its ID.
	GetFamily(ctx context.Context, familyID string) (*models.Family, error)

	// UpdateFamily changes name and member count. The new name is copied
	// onto every expense the family paid.
	UpdateFamily(ctx context.Context, family *models.Family) error

	// DeleteFamily removes a family. Its expenses are kept.
	DeleteFamily(ctx context.Context, familyID string) error

	// ListFamilies returns the families of a ledger in insertion order.
	ListFamilies(ctx context.Context, ledgerID string) ([]models.Family, error)

	// CreateExpense appends an expense to its ledger. ID, Position and
	// CreatedAt are assigned by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense changes payer, item and amount of an expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses returns the expenses of a ledger in insertion order.
	ListExpenses(ctx context.Context, ledgerID string) ([]models.Expense, error)

	// GetSnapshot loads all families and expenses of a ledger in one read
	// transaction.
	GetSnapshot(ctx context.Context, ledgerID string) (*models.Snapshot, error)

	// ReplaceSnapshot swaps the ledger's records for the given ones. Records
	// get fresh IDs; expense references to imported families are rewritten
	// to match, dangling references are kept verbatim.
	ReplaceSnapshot(ctx context.Context, ledgerID string, snapshot *models.Snapshot) error

	// Close releases any resources held by the store.
	Close() error
}
