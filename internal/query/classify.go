package query

import (
	"strings"

	"github.com/finsight/finsight/internal/models"
)

// categoryTriggers is evaluated in order; the first matching entry wins.
// The sets are coarser than the data triggers on purpose: only questions
// that map to one of the four chartable insights classify at all.
var categoryTriggers = []struct {
	keywords []string
	category models.InsightCategory
}{
	{[]string{"net worth", "networth", "grow"}, models.CategoryNetWorthTrend},
	{[]string{"invest", "mutual", "fund", "stock", "portfolio", "sip"}, models.CategoryInvestmentPerformance},
	{[]string{"spend", "expense", "budget"}, models.CategorySpendingPatterns},
	{[]string{"loan", "debt", "emi"}, models.CategoryDebtAnalysis},
}

// Classify maps a question to an insight category. The second return is
// false when the question matches none of the categories.
func Classify(query string) (models.InsightCategory, bool) {
	q := strings.ToLower(query)
	for _, t := range categoryTriggers {
		if containsAny(q, t.keywords...) {
			return t.category, true
		}
	}
	return "", false
}
