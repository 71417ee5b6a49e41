package finance

import "github.com/adisurya/fintrack/internal/models"

// CreateInput carries the caller-supplied fields for a new record.
// The owner is never part of the input; it is forced to the caller's
// identity by the service layer.
type CreateInput struct {
	Title    string            `json:"title"`
	Amount   float64           `json:"amount"`
	Type     models.RecordType `json:"type"`
	Category models.Category   `json:"category"`
}

// Validate checks the creation contract: title, amount, type and
// category are all required, and type/category must be in their
// enumerations.
func (in CreateInput) Validate() error {
	if in.Title == "" {
		return Invalidf("title is required")
	}
	if in.Amount == 0 {
		return Invalidf("amount is required")
	}
	if in.Type == "" {
		return Invalidf("type is required")
	}
	if !in.Type.Valid() {
		return Invalidf("type must be %q or %q", models.TypeIncome, models.TypeExpense)
	}
	if in.Category == "" {
		return Invalidf("category is required")
	}
	if !in.Category.Valid() {
		return Invalidf("unknown category %q", in.Category)
	}
	return nil
}

// Patch is the explicit set of mutable record fields for an update.
// Nil pointers mean "leave unchanged". Owner, ID and CreatedAt are
// not patchable: ownership and identity never change after creation.
type Patch struct {
	Title    *string            `json:"title"`
	Amount   *float64           `json:"amount"`
	Type     *models.RecordType `json:"type"`
	Category *models.Category   `json:"category"`
}

// Validate applies the same field rules as creation, but only to the
// fields actually supplied.
func (p Patch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return Invalidf("title cannot be empty")
	}
	if p.Amount != nil && *p.Amount == 0 {
		return Invalidf("amount cannot be zero")
	}
	if p.Type != nil && !p.Type.Valid() {
		return Invalidf("type must be %q or %q", models.TypeIncome, models.TypeExpense)
	}
	if p.Category != nil && !p.Category.Valid() {
		return Invalidf("unknown category %q", *p.Category)
	}
	return nil
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Amount == nil && p.Type == nil && p.Category == nil
}

// Apply copies the supplied fields onto rec.
func (p Patch) Apply(rec *models.FinanceRecord) {
	if p.Title != nil {
		rec.Title = *p.Title
	}
	if p.Amount != nil {
		rec.Amount = *p.Amount
	}
	if p.Type != nil {
		rec.Type = *p.Type
	}
	if p.Category != nil {
		rec.Category = *p.Category
	}
}
