package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

const expenseColumns = "id, ledger_id, family_id, family_name, item, amount, position, created_at"

// CreateExpense appends an expense to the end of its ledger.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pos, err := nextPosition(ctx, tx, "expenses", expense.LedgerID)
	if err != nil {
		return err
	}
	expense.Position = pos

	if err := insertExpense(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertExpense(ctx context.Context, tx *sql.Tx, e *models.Expense) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.LedgerID, e.FamilyID, e.FamilyName, e.Item, e.Amount, e.Position, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	e := &models.Expense{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?",
		expenseID,
	).Scan(&e.ID, &e.LedgerID, &e.FamilyID, &e.FamilyName, &e.Item, &e.Amount, &e.Position, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// UpdateExpense changes payer, payer name, item and amount.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expenses SET family_id = ?, family_name = ?, item = ?, amount = ? WHERE id = ?",
		expense.FamilyID, expense.FamilyName, expense.Item, expense.Amount, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireAffected(res, "expense", expense.ID)
}

// DeleteExpense removes an expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(res, "expense", expenseID)
}

// ListExpenses returns a ledger's expenses in insertion order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, ledgerID string) ([]models.Expense, error) {
	return listExpenses(ctx, s.db, ledgerID)
}

func listExpenses(ctx context.Context, q queryer, ledgerID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE ledger_id = ? ORDER BY position",
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.LedgerID, &e.FamilyID, &e.FamilyName, &e.Item, &e.Amount, &e.Position, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
