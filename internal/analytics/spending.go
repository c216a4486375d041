package analytics

import (
	"sort"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// SpendingPatterns ranks monthly spending categories and reports savings
// metrics. The report is marked unavailable when the snapshot carries no
// monthly category breakdown.
func SpendingPatterns(s *snapshot.Snapshot) models.SpendingReport {
	summary := s.MonthlySpending()
	if summary == nil || len(summary.Categories) == 0 {
		return models.SpendingReport{Available: false}
	}

	categories := make([]models.SeriesPoint, 0, len(summary.Categories))
	for name, amount := range summary.Categories {
		categories = append(categories, models.SeriesPoint{Label: name, Value: amount})
	}
	// Sort by amount descending, ties by name for a stable ordering
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Value != categories[j].Value {
			return categories[i].Value > categories[j].Value
		}
		return categories[i].Label < categories[j].Label
	})

	top := make([]string, 0, 3)
	for i := 0; i < len(categories) && i < 3; i++ {
		top = append(top, categories[i].Label)
	}

	return models.SpendingReport{
		Available:  true,
		Categories: categories,
		Metrics: models.SpendingMetrics{
			TotalSpending:         summary.TotalExpense,
			TotalIncome:           summary.TotalIncome,
			Savings:               summary.Savings,
			SavingsRate:           summary.SavingsPercentage,
			TopSpendingCategories: top,
			Month:                 summary.Month,
		},
	}
}
