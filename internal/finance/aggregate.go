package finance

import (
	"sort"
	"time"

	"github.com/adisurya/fintrack/internal/models"
)

// Summarize reduces a record set to income/expense totals and balance.
// An empty set yields the all-zero summary.
func Summarize(records []*models.FinanceRecord) models.Summary {
	var s models.Summary
	for _, rec := range records {
		switch rec.Type {
		case models.TypeIncome:
			s.TotalIncome += rec.Amount
		case models.TypeExpense:
			s.TotalExpense += rec.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

// CategoryStats groups records by category. Categories with no records
// are omitted; results are sorted by category name for stable output.
func CategoryStats(records []*models.FinanceRecord) []models.CategoryStat {
	byCategory := make(map[models.Category]*models.CategoryStat)
	for _, rec := range records {
		stat, ok := byCategory[rec.Category]
		if !ok {
			stat = &models.CategoryStat{Category: rec.Category}
			byCategory[rec.Category] = stat
		}
		stat.Count++
		switch rec.Type {
		case models.TypeIncome:
			stat.TotalIncome += rec.Amount
		case models.TypeExpense:
			stat.TotalExpense += rec.Amount
		}
	}

	stats := make([]models.CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Category < stats[j].Category
	})
	return stats
}

// MonthlyStats buckets records by the UTC month of their creation time.
// It always returns twelve buckets (January through December); records
// outside the given year are ignored.
func MonthlyStats(records []*models.FinanceRecord, year int) []models.MonthlyStat {
	stats := make([]models.MonthlyStat, 12)
	for i := range stats {
		stats[i].Month = i + 1
	}

	for _, rec := range records {
		created := time.Unix(rec.CreatedAt, 0).UTC()
		if created.Year() != year {
			continue
		}
		stat := &stats[int(created.Month())-1]
		switch rec.Type {
		case models.TypeIncome:
			stat.TotalIncome += rec.Amount
		case models.TypeExpense:
			stat.TotalExpense += rec.Amount
		}
	}

	for i := range stats {
		stats[i].Balance = stats[i].TotalIncome - stats[i].TotalExpense
	}
	return stats
}
