package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/costshare/internal/models"
)

// GetSnapshot loads a ledger's families and expenses consistently.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, ledgerID string) (*models.Snapshot, error) {
	if _, err := s.GetLedger(ctx, ledgerID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	families, err := listFamilies(ctx, tx, ledgerID)
	if err != nil {
		return nil, err
	}
	expenses, err := listExpenses(ctx, tx, ledgerID)
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{Families: families, Expenses: expenses}, nil
}

// ReplaceSnapshot swaps all records of a ledger for the given snapshot.
// The snapshot is updated in place with the IDs and positions assigned.
func (s *SQLiteStore) ReplaceSnapshot(ctx context.Context, ledgerID string, snapshot *models.Snapshot) error {
	if _, err := s.GetLedger(ctx, ledgerID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE ledger_id = ?", ledgerID); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM families WHERE ledger_id = ?", ledgerID); err != nil {
		return fmt.Errorf("failed to clear families: %w", err)
	}

	newIDs := make(map[string]string, len(snapshot.Families))
	for i := range snapshot.Families {
		f := &snapshot.Families[i]
		id := uuid.New().String()
		newIDs[f.ID] = id
		f.ID, f.LedgerID, f.Position = id, ledgerID, i

		_, err := tx.ExecContext(ctx,
			"INSERT INTO families (id, ledger_id, name, members, position) VALUES (?, ?, ?, ?, ?)",
			f.ID, f.LedgerID, f.Name, f.Members, f.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert family: %w", err)
		}
	}

	now := time.Now().Unix()
	for i := range snapshot.Expenses {
		e := &snapshot.Expenses[i]
		if id, ok := newIDs[e.FamilyID]; ok {
			e.FamilyID = id
		}
		e.ID, e.LedgerID, e.Position = uuid.New().String(), ledgerID, i
		if e.CreatedAt == 0 {
			e.CreatedAt = now
		}
		if err := insertExpense(ctx, tx, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
