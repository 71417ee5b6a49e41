// Package service implements the application services that sit between
// the HTTP surface and storage: input validation, ownership enforcement,
// and aggregation over record sets.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adisurya/fintrack/internal/finance"
	"github.com/adisurya/fintrack/internal/models"
	"github.com/adisurya/fintrack/internal/storage"
)

// FinanceService implements the finance record operations for
// authenticated users. All operations are scoped to the owner passed in;
// records of other users behave as if they do not exist.
type FinanceService struct {
	store storage.Store
}

// NewFinanceService creates a new FinanceService with the given storage backend.
func NewFinanceService(store storage.Store) *FinanceService {
	return &FinanceService{store: store}
}

// getOwned fetches a record and enforces ownership. A missing record and
// a foreign-owned record both come back as finance.ErrNotFound so callers
// cannot distinguish the two cases.
func (s *FinanceService) getOwned(ctx context.Context, owner, id string) (*models.FinanceRecord, error) {
	rec, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Owner != owner {
		return nil, finance.ErrNotFound
	}
	return rec, nil
}

// List returns all records owned by the caller. No ordering promise.
func (s *FinanceService) List(ctx context.Context, owner string) ([]*models.FinanceRecord, error) {
	records, err := s.store.ListRecords(ctx, owner)
	if err != nil {
		slog.Error("List failed", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		records = []*models.FinanceRecord{}
	}
	return records, nil
}

// Create validates the input and persists a new record. The record's
// owner is always the caller; any owner supplied by the client is ignored.
func (s *FinanceService) Create(ctx context.Context, owner string, in finance.CreateInput) (*models.FinanceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec := &models.FinanceRecord{
		Owner:    owner,
		Title:    in.Title,
		Amount:   in.Amount,
		Type:     in.Type,
		Category: in.Category,
	}

	// Store assigns ID and timestamps
	if err := s.store.CreateRecord(ctx, rec); err != nil {
		slog.Error("Create failed", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	slog.Info("Record created", "record_id", rec.ID, "owner", owner, "type", rec.Type)
	return rec, nil
}

// Update applies a patch to an owned record and returns the updated
// record. Only title, amount, type and category are mutable.
func (s *FinanceService) Update(ctx context.Context, owner, id string, patch finance.Patch) (*models.FinanceRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.getOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(rec)
	rec.UpdatedAt = time.Now().Unix()

	if err := s.store.UpdateRecord(ctx, rec); err != nil {
		slog.Error("Update failed", "record_id", id, "owner", owner, "error", err)
		return nil, err
	}

	slog.Info("Record updated", "record_id", id, "owner", owner)
	return rec, nil
}

// Delete removes an owned record.
func (s *FinanceService) Delete(ctx context.Context, owner, id string) error {
	if _, err := s.getOwned(ctx, owner, id); err != nil {
		return err
	}

	if err := s.store.DeleteRecord(ctx, id); err != nil {
		slog.Error("Delete failed", "record_id", id, "owner", owner, "error", err)
		return err
	}

	slog.Info("Record deleted", "record_id", id, "owner", owner)
	return nil
}

// Summary aggregates the caller's records into income/expense totals and
// balance. A user with no records gets the all-zero summary.
func (s *FinanceService) Summary(ctx context.Context, owner string) (models.Summary, error) {
	records, err := s.store.ListRecords(ctx, owner)
	if err != nil {
		slog.Error("Summary failed", "owner", owner, "error", err)
		return models.Summary{}, fmt.Errorf("failed to load records: %w", err)
	}
	return finance.Summarize(records), nil
}

// Filter returns the caller's records matching the given criteria,
// ordered by creation time descending.
func (s *FinanceService) Filter(ctx context.Context, owner string, f finance.Filter) ([]*models.FinanceRecord, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	records, err := s.store.FilterRecords(ctx, owner, f)
	if err != nil {
		slog.Error("Filter failed", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to filter records: %w", err)
	}
	if records == nil {
		records = []*models.FinanceRecord{}
	}
	return records, nil
}

// CategoryStats groups the caller's records by category.
func (s *FinanceService) CategoryStats(ctx context.Context, owner string) ([]models.CategoryStat, error) {
	records, err := s.store.ListRecords(ctx, owner)
	if err != nil {
		slog.Error("CategoryStats failed", "owner", owner, "error", err)
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return finance.CategoryStats(records), nil
}

// MonthlyStats returns twelve per-month aggregates for the given year.
func (s *FinanceService) MonthlyStats(ctx context.Context, owner string, year int) ([]models.MonthlyStat, error) {
	if year < 0 {
		return nil, finance.Invalidf("year must be a positive number")
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	records, err := s.store.FilterRecords(ctx, owner, finance.Filter{Year: year})
	if err != nil {
		slog.Error("MonthlyStats failed", "owner", owner, "year", year, "error", err)
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return finance.MonthlyStats(records, year), nil
}
