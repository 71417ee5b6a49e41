// Package finance implements the finance query engine: it turns caller
// intent (create, patch, filter, summarize) into validated inputs, store
// predicates, and reductions over record sets.
package finance

import (
	"time"

	"github.com/adisurya/fintrack/internal/models"
)

// Filter narrows a user's records by type and/or creation time.
// Zero values mean "not supplied".
type Filter struct {
	// Type restricts results to income or expense records. Empty = any.
	Type models.RecordType

	// Month restricts results to a single calendar month (1-12).
	// When set without Year, the current calendar year applies.
	Month int

	// Year restricts results to a single calendar year.
	Year int
}

// Validate rejects out-of-enum types and out-of-range month/year values.
// Out-of-range months are rejected rather than fed into date arithmetic.
func (f Filter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return Invalidf("type must be %q or %q", models.TypeIncome, models.TypeExpense)
	}
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return Invalidf("month must be between 1 and 12")
	}
	if f.Year < 0 {
		return Invalidf("year must be a positive number")
	}
	return nil
}

// Window resolves the filter's time component into a half-open Unix
// interval [from, to) in UTC. ok is false when the filter carries no
// time component at all.
//
// Month takes precedence over a bare year: with both set the window is
// that single month; month 12 rolls the upper bound into January 1 of
// the following year. A month without a year defaults to the current
// calendar year at now.
func (f Filter) Window(now time.Time) (from, to int64, ok bool) {
	if f.Month != 0 {
		year := f.Year
		if year == 0 {
			year = now.UTC().Year()
		}
		start := time.Date(year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		return start.Unix(), start.AddDate(0, 1, 0).Unix(), true
	}
	if f.Year != 0 {
		start := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start.Unix(), start.AddDate(1, 0, 0).Unix(), true
	}
	return 0, 0, false
}

// IsZero reports whether the filter carries no criteria at all.
func (f Filter) IsZero() bool {
	return f.Type == "" && f.Month == 0 && f.Year == 0
}
