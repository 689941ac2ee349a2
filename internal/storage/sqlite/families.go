package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

// CreateFamily appends a family to the end of its ledger.
func (s *SQLiteStore) CreateFamily(ctx context.Context, family *models.Family) error {
	if family.ID == "" {
		family.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pos, err := nextPosition(ctx, tx, "families", family.LedgerID)
	if err != nil {
		return err
	}
	family.Position = pos

	_, err = tx.ExecContext(ctx,
		"INSERT INTO families (id, ledger_id, name, members, position) VALUES (?, ?, ?, ?, ?)",
		family.ID, family.LedgerID, family.Name, family.Members, family.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert family: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetFamily retrieves a family by ID.
func (s *SQLiteStore) GetFamily(ctx context.Context, familyID string) (*models.Family, error) {
	f := &models.Family{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, ledger_id, name, members, position FROM families WHERE id = ?",
		familyID,
	).Scan(&f.ID, &f.LedgerID, &f.Name, &f.Members, &f.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("family %s: %w", familyID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return f, nil
}

// UpdateFamily changes name and member count and refreshes the payer name
// stored on the family's expenses.
func (s *SQLiteStore) UpdateFamily(ctx context.Context, family *models.Family) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE families SET name = ?, members = ? WHERE id = ?",
		family.Name, family.Members, family.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update family: %w", err)
	}
	if err := requireAffected(res, "family", family.ID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE expenses SET family_name = ? WHERE family_id = ?",
		family.Name, family.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense payer names: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteFamily removes a family. Expenses it paid stay in the ledger and
// show up as unassigned payments.
func (s *SQLiteStore) DeleteFamily(ctx context.Context, familyID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM families WHERE id = ?", familyID)
	if err != nil {
		return fmt.Errorf("failed to delete family: %w", err)
	}
	return requireAffected(res, "family", familyID)
}

// ListFamilies returns a ledger's families in insertion order.
func (s *SQLiteStore) ListFamilies(ctx context.Context, ledgerID string) ([]models.Family, error) {
	return listFamilies(ctx, s.db, ledgerID)
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listFamilies(ctx context.Context, q queryer, ledgerID string) ([]models.Family, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, ledger_id, name, members, position FROM families WHERE ledger_id = ? ORDER BY position",
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list families: %w", err)
	}
	defer rows.Close()

	families := []models.Family{}
	for rows.Next() {
		var f models.Family
		if err := rows.Scan(&f.ID, &f.LedgerID, &f.Name, &f.Members, &f.Position); err != nil {
			return nil, fmt.Errorf("failed to scan family: %w", err)
		}
		families = append(families, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate families: %w", err)
	}
	return families, nil
}
