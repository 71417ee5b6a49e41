package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/adisurya/fintrack/internal/finance"
	"github.com/adisurya/fintrack/internal/models"
	"github.com/adisurya/fintrack/internal/storage/sqlite"
)

// setupService creates a FinanceService over a temp SQLite database and
// registers two users for ownership tests.
func setupService(t *testing.T) (*FinanceService, *models.User, *models.User, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	alice := models.NewUser("alice@example.com", "Alice", "hash")
	bob := models.NewUser("bob@example.com", "Bob", "hash")
	for _, u := range []*models.User{alice, bob} {
		if err := store.CreateUser(context.Background(), u); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	cleanup := func() {
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return NewFinanceService(store), alice, bob, cleanup
}

func TestCreate_ForcesOwner(t *testing.T) {
	svc, alice, _, cleanup := setupService(t)
	defer cleanup()

	rec, err := svc.Create(context.Background(), alice.ID, finance.CreateInput{
		Title:    "Salary",
		Amount:   5000,
		Type:     models.TypeIncome,
		Category: models.CategoryOthers,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if rec.Owner != alice.ID {
		t.Errorf("owner: expected %s, got %s", alice.ID, rec.Owner)
	}
	if rec.ID == "" || rec.CreatedAt == 0 {
		t.Errorf("expected assigned ID and timestamp, got %+v", rec)
	}
}

func TestCreate_InvalidInputPersistsNothing(t *testing.T) {
	svc, alice, _, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	inputs := []finance.CreateInput{
		{Amount: 10, Type: models.TypeExpense, Category: models.CategoryFood},
		{Title: "Lunch", Type: models.TypeExpense, Category: models.CategoryFood},
		{Title: "Lunch", Amount: 10, Category: models.CategoryFood},
		{Title: "Lunch", Amount: 10, Type: "transfer", Category: models.CategoryFood},
		{Title: "Lunch", Amount: 10, Type: models.TypeExpense, Category: "snacks"},
	}
	for _, in := range inputs {
		if _, err := svc.Create(ctx, alice.ID, in); !finance.IsValidation(err) {
			t.Errorf("input %+v: expected ValidationError, got %v", in, err)
		}
	}

	records, err := svc.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no persisted records, got %d", len(records))
	}
}

func TestUpdate_OwnershipCollapsesToNotFound(t *testing.T) {
	svc, alice, bob, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	rec, err := svc.Create(ctx, alice.ID, finance.CreateInput{
		Title: "Salary", Amount: 5000, Type: models.TypeIncome, Category: models.CategoryOthers,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	title := "Hijacked"
	// Bob patching Alice's record must look identical to a missing record.
	_, err = svc.Update(ctx, bob.ID, rec.ID, finance.Patch{Title: &title})
	if !errors.Is(err, finance.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign record, got %v", err)
	}

	_, err = svc.Update(ctx, bob.ID, "no-such-id", finance.Patch{Title: &title})
	if !errors.Is(err, finance.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing record, got %v", err)
	}

	// Alice's record is untouched.
	got, err := svc.Update(ctx, alice.ID, rec.ID, finance.Patch{})
	if err != nil {
		t.Fatalf("owner Update failed: %v", err)
	}
	if got.Title != "Salary" {
		t.Errorf("record was mutated by non-owner: %+v", got)
	}
}

func TestUpdate_AppliesAllowedFieldsOnly(t *testing.T) {
	svc, alice, _, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	rec, err := svc.Create(ctx, alice.ID, finance.CreateInput{
		Title: "Lunch", Amount: 12, Type: models.TypeExpense, Category: models.CategoryFood,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	title := "Dinner"
	amount := 30.0
	category := models.CategoryEntertainment
	updated, err := svc.Update(ctx, alice.ID, rec.ID, finance.Patch{
		Title: &title, Amount: &amount, Category: &category,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Dinner" || updated.Amount != 30 || updated.Category != models.CategoryEntertainment {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Owner != alice.ID || updated.ID != rec.ID || updated.CreatedAt != rec.CreatedAt {
		t.Errorf("identity fields changed: %+v", updated)
	}

	badType := models.RecordType("transfer")
	if _, err := svc.Update(ctx, alice.ID, rec.ID, finance.Patch{Type: &badType}); !finance.IsValidation(err) {
		t.Errorf("expected ValidationError for bad type patch, got %v", err)
	}
}

func TestDelete_OwnershipCollapsesToNotFound(t *testing.T) {
	svc, alice, bob, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	rec, err := svc.Create(ctx, alice.ID, finance.CreateInput{
		Title: "Salary", Amount: 5000, Type: models.TypeIncome, Category: models.CategoryOthers,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, bob.ID, rec.ID); !errors.Is(err, finance.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(ctx, alice.ID, rec.ID); err != nil {
		t.Fatalf("owner Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, alice.ID, rec.ID); !errors.Is(err, finance.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	svc, alice, bob, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	// Empty set yields the all-zero summary.
	summary, err := svc.Summary(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Balance != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}

	seed := []finance.CreateInput{
		{Title: "Salary", Amount: 5000, Type: models.TypeIncome, Category: models.CategoryOthers},
		{Title: "Rent", Amount: 1200, Type: models.TypeExpense, Category: models.CategoryUtilities},
		{Title: "Groceries", Amount: 300, Type: models.TypeExpense, Category: models.CategoryFood},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, alice.ID, in); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// Bob's records must not leak into Alice's summary.
	if _, err := svc.Create(ctx, bob.ID, finance.CreateInput{
		Title: "Bonus", Amount: 9999, Type: models.TypeIncome, Category: models.CategoryOthers,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	summary, err = svc.Summary(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalIncome != 5000 || summary.TotalExpense != 1500 || summary.Balance != 3500 {
		t.Errorf("summary mismatch: %+v", summary)
	}
}

func TestFilter_RejectsBadCriteria(t *testing.T) {
	svc, alice, _, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.Filter(ctx, alice.ID, finance.Filter{Month: 13}); !finance.IsValidation(err) {
		t.Errorf("expected ValidationError for month 13, got %v", err)
	}
	if _, err := svc.Filter(ctx, alice.ID, finance.Filter{Type: "transfer"}); !finance.IsValidation(err) {
		t.Errorf("expected ValidationError for unknown type, got %v", err)
	}

	records, err := svc.Filter(ctx, alice.ID, finance.Filter{})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if records == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestCategoryAndMonthlyStats(t *testing.T) {
	svc, alice, _, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	seed := []finance.CreateInput{
		{Title: "Salary", Amount: 5000, Type: models.TypeIncome, Category: models.CategoryOthers},
		{Title: "Groceries", Amount: 200, Type: models.TypeExpense, Category: models.CategoryFood},
		{Title: "Dinner", Amount: 100, Type: models.TypeExpense, Category: models.CategoryFood},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, alice.ID, in); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	stats, err := svc.CategoryStats(ctx, alice.ID)
	if err != nil {
		t.Fatalf("CategoryStats failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(stats))
	}
	if stats[0].Category != models.CategoryFood || stats[0].Count != 2 || stats[0].TotalExpense != 300 {
		t.Errorf("food stats mismatch: %+v", stats[0])
	}

	// Records were just created, so the current year has them all.
	monthly, err := svc.MonthlyStats(ctx, alice.ID, 0)
	if err != nil {
		t.Fatalf("MonthlyStats failed: %v", err)
	}
	if len(monthly) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(monthly))
	}
	var income, expense float64
	for _, m := range monthly {
		income += m.TotalIncome
		expense += m.TotalExpense
	}
	if income != 5000 || expense != 300 {
		t.Errorf("monthly totals mismatch: income=%f expense=%f", income, expense)
	}

	if _, err := svc.MonthlyStats(ctx, alice.ID, -1); !finance.IsValidation(err) {
		t.Errorf("expected ValidationError for negative year, got %v", err)
	}
}
