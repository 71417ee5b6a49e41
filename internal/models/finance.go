package models

// RecordType distinguishes money coming in from money going out.
type RecordType string

const (
	TypeIncome  RecordType = "income"
	TypeExpense RecordType = "expense"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category classifies a record into a fixed spending bucket.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryEntertainment  Category = "entertainment"
	CategoryUtilities      Category = "utilities"
	CategoryOthers         Category = "others"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryOthers,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FinanceRecord represents one income or expense transaction owned by a user.
type FinanceRecord struct {
	// ID is the unique identifier for the record (UUID format),
	// assigned by the store at creation.
	ID string `json:"id"`

	// Owner is the ID of the user who created the record.
	// Immutable after creation.
	Owner string `json:"owner"`

	// Title is a free-text label for the transaction.
	Title string `json:"title"`

	// Amount is the transaction value. Always positive; direction
	// is carried by Type.
	Amount float64 `json:"amount"`

	// Type is either "income" or "expense".
	Type RecordType `json:"type"`

	// Category is the spending bucket the record falls into.
	Category Category `json:"category"`

	// CreatedAt is the Unix timestamp when the record was created.
	// This is the sole time axis used for filtering and reporting.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64 `json:"updatedAt"`
}

// Summary holds the aggregate totals for one user's records.
type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// CategoryStat is the per-category aggregate for one user.
type CategoryStat struct {
	Category     Category `json:"category"`
	Count        int      `json:"count"`
	TotalIncome  float64  `json:"totalIncome"`
	TotalExpense float64  `json:"totalExpense"`
}

// MonthlyStat is the per-month aggregate for one user within a year.
// Month is 1-based (1 = January).
type MonthlyStat struct {
	Month        int     `json:"month"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}
