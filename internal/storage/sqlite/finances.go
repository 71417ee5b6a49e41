package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adisurya/fintrack/internal/finance"
	"github.com/adisurya/fintrack/internal/models"
)

const recordColumns = "id, owner, title, amount, type, category, created_at, updated_at"

// CreateRecord persists a new finance record to the database.
func (s *SQLiteStore) CreateRecord(ctx context.Context, rec *models.FinanceRecord) error {
	// Generate ID and timestamps if not set
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if rec.CreatedAt == 0 {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt == 0 {
		rec.UpdatedAt = rec.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO finance_records ("+recordColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rec.ID, rec.Owner, rec.Title, rec.Amount, string(rec.Type), string(rec.Category),
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert finance record: %w", err)
	}

	return nil
}

// GetRecord retrieves a finance record by ID.
func (s *SQLiteStore) GetRecord(ctx context.Context, id string) (*models.FinanceRecord, error) {
	rec := &models.FinanceRecord{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM finance_records WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Owner, &rec.Title, &rec.Amount, &rec.Type, &rec.Category,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, finance.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get finance record: %w", err)
	}

	return rec, nil
}

// ListRecords retrieves all records owned by the given user.
func (s *SQLiteStore) ListRecords(ctx context.Context, owner string) ([]*models.FinanceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM finance_records WHERE owner = ?",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FilterRecords retrieves the owner's records matching the filter,
// newest first. A month filter without a year resolves against the
// current calendar year.
func (s *SQLiteStore) FilterRecords(ctx context.Context, owner string, f finance.Filter) ([]*models.FinanceRecord, error) {
	query := "SELECT " + recordColumns + " FROM finance_records WHERE owner = ?"
	args := []any{owner}

	if f.Type != "" {
		query += " AND type = ?"
		args = append(args, string(f.Type))
	}
	if from, to, ok := f.Window(time.Now()); ok {
		query += " AND created_at >= ? AND created_at < ?"
		args = append(args, from, to)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter finance records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// UpdateRecord persists changes to an existing record.
func (s *SQLiteStore) UpdateRecord(ctx context.Context, rec *models.FinanceRecord) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE finance_records
		 SET title = ?, amount = ?, type = ?, category = ?, updated_at = ?
		 WHERE id = ?`,
		rec.Title, rec.Amount, string(rec.Type), string(rec.Category), rec.UpdatedAt, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update finance record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return finance.ErrNotFound
	}

	return nil
}

// DeleteRecord removes a record by ID.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM finance_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete finance record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return finance.ErrNotFound
	}

	return nil
}

// scanRecords drains a result set into finance records.
func scanRecords(rows *sql.Rows) ([]*models.FinanceRecord, error) {
	var records []*models.FinanceRecord
	for rows.Next() {
		rec := &models.FinanceRecord{}
		if err := rows.Scan(&rec.ID, &rec.Owner, &rec.Title, &rec.Amount, &rec.Type,
			&rec.Category, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan finance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate finance records: %w", err)
	}

	return records, nil
}
