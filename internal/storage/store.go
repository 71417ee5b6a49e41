// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/adisurya/fintrack/internal/finance"
	"github.com/adisurya/fintrack/internal/models"
)

// Store defines the interface for finance record persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateRecord persists a new finance record. The record's ID and
	// timestamps are populated by the store when unset.
	CreateRecord(ctx context.Context, rec *models.FinanceRecord) error

	// GetRecord retrieves a record by its ID, regardless of owner.
	// Returns finance.ErrNotFound if no such record exists; ownership
	// is enforced by the service layer.
	GetRecord(ctx context.Context, id string) (*models.FinanceRecord, error)

	// ListRecords retrieves all records owned by the given user.
	// No ordering is guaranteed.
	ListRecords(ctx context.Context, owner string) ([]*models.FinanceRecord, error)

	// FilterRecords retrieves the owner's records matching the filter,
	// ordered by creation time descending. A zero filter returns all of
	// the owner's records, still ordered.
	FilterRecords(ctx context.Context, owner string, f finance.Filter) ([]*models.FinanceRecord, error)

	// UpdateRecord persists changes to an existing record.
	// Returns finance.ErrNotFound if the record does not exist.
	UpdateRecord(ctx context.Context, rec *models.FinanceRecord) error

	// DeleteRecord removes a record by ID.
	// Returns finance.ErrNotFound if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
