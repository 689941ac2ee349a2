// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/costshare/internal/models"
	"github.com/mmynk/costshare/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection.
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateLedger persists a new ledger.
func (s *SQLiteStore) CreateLedger(ctx context.Context, ledger *models.Ledger) error {
	if ledger.ID == "" {
		ledger.ID = uuid.New().String()
	}
	if ledger.CreatedAt == 0 {
		ledger.CreatedAt = time.Now().Unix()
	}
	if ledger.Name == "" {
		ledger.Name = generateName(time.Unix(ledger.CreatedAt, 0))
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO ledgers (id, name, passcode_hash, created_at) VALUES (?, ?, ?, ?)",
		ledger.ID, ledger.Name, ledger.PasscodeHash, ledger.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger: %w", err)
	}
	return nil
}

// GetLedger retrieves a ledger by ID.
func (s *SQLiteStore) GetLedger(ctx context.Context, ledgerID string) (*models.Ledger, error) {
	ledger := &models.Ledger{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, passcode_hash, created_at FROM ledgers WHERE id = ?",
		ledgerID,
	).Scan(&ledger.ID, &ledger.Name, &ledger.PasscodeHash, &ledger.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ledger %s: %w", ledgerID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return ledger, nil
}

// ListLedgers returns all ledgers, newest first.
func (s *SQLiteStore) ListLedgers(ctx context.Context) ([]*models.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, passcode_hash, created_at FROM ledgers ORDER BY created_at DESC, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []*models.Ledger
	for rows.Next() {
		ledger := &models.Ledger{}
		if err := rows.Scan(&ledger.ID, &ledger.Name, &ledger.PasscodeHash, &ledger.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, ledger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledgers: %w", err)
	}
	return ledgers, nil
}

// DeleteLedger removes a ledger; families and expenses cascade.
func (s *SQLiteStore) DeleteLedger(ctx context.Context, ledgerID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM ledgers WHERE id = ?", ledgerID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	return requireAffected(res, "ledger", ledgerID)
}

// requireAffected turns a zero-row write into storage.ErrNotFound.
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

// nextPosition returns the position after the last row of a ledger table.
func nextPosition(ctx context.Context, tx *sql.Tx, table, ledgerID string) (int, error) {
	var pos int
	err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM "+table+" WHERE ledger_id = ?",
		ledgerID,
	).Scan(&pos)
	if err != nil {
		return 0, fmt.Errorf("failed to get next %s position: %w", table, err)
	}
	return pos, nil
}

// generateName creates a ledger name from its creation date.
func generateName(createdAt time.Time) string {
	return fmt.Sprintf("Gathering - %s", createdAt.Format("Jan 2, 2006"))
}
