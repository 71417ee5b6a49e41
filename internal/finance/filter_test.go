package finance

import (
	"testing"
	"time"

	"github.com/adisurya/fintrack/internal/models"
)

func utc(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

func TestFilterWindow_YearOnly(t *testing.T) {
	f := Filter{Year: 2024}

	from, to, ok := f.Window(time.Now())
	if !ok {
		t.Fatal("expected a time window")
	}
	if from != utc(2024, time.January, 1) {
		t.Errorf("from: expected 2024-01-01, got %s", time.Unix(from, 0).UTC())
	}
	if to != utc(2025, time.January, 1) {
		t.Errorf("to: expected 2025-01-01, got %s", time.Unix(to, 0).UTC())
	}
}

func TestFilterWindow_MonthAndYear(t *testing.T) {
	f := Filter{Month: 6, Year: 2024}

	from, to, ok := f.Window(time.Now())
	if !ok {
		t.Fatal("expected a time window")
	}
	if from != utc(2024, time.June, 1) {
		t.Errorf("from: expected 2024-06-01, got %s", time.Unix(from, 0).UTC())
	}
	if to != utc(2024, time.July, 1) {
		t.Errorf("to: expected 2024-07-01, got %s", time.Unix(to, 0).UTC())
	}
}

func TestFilterWindow_DecemberRollsIntoNextYear(t *testing.T) {
	f := Filter{Month: 12, Year: 2024}

	from, to, ok := f.Window(time.Now())
	if !ok {
		t.Fatal("expected a time window")
	}
	if from != utc(2024, time.December, 1) {
		t.Errorf("from: expected 2024-12-01, got %s", time.Unix(from, 0).UTC())
	}
	if to != utc(2025, time.January, 1) {
		t.Errorf("to: expected 2025-01-01, got %s", time.Unix(to, 0).UTC())
	}
}

func TestFilterWindow_MonthDefaultsToCurrentYear(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	f := Filter{Month: 2}

	from, to, ok := f.Window(now)
	if !ok {
		t.Fatal("expected a time window")
	}
	if from != utc(2026, time.February, 1) {
		t.Errorf("from: expected 2026-02-01, got %s", time.Unix(from, 0).UTC())
	}
	if to != utc(2026, time.March, 1) {
		t.Errorf("to: expected 2026-03-01, got %s", time.Unix(to, 0).UTC())
	}
}

func TestFilterWindow_NoTimeComponent(t *testing.T) {
	f := Filter{Type: models.TypeIncome}

	if _, _, ok := f.Window(time.Now()); ok {
		t.Error("expected no time window for a type-only filter")
	}
}

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{"empty", Filter{}, false},
		{"income type", Filter{Type: models.TypeIncome}, false},
		{"bad type", Filter{Type: "transfer"}, true},
		{"month 1", Filter{Month: 1}, false},
		{"month 12", Filter{Month: 12}, false},
		{"month 13", Filter{Month: 13}, true},
		{"negative month", Filter{Month: -1}, true},
		{"negative year", Filter{Year: -2024}, true},
		{"full filter", Filter{Type: models.TypeExpense, Month: 7, Year: 2024}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for %+v", tt.filter)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %+v: %v", tt.filter, err)
			}
			if tt.wantErr && err != nil && !IsValidation(err) {
				t.Errorf("expected a ValidationError, got %T", err)
			}
		})
	}
}
