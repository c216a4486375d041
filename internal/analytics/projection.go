package analytics

import "github.com/finsight/finsight/internal/snapshot"

// Annual growth assumed on a positive balance during projection
const projectionGrowthRate = 0.08

// ProjectNetWorth estimates net worth after the given number of whole
// years at the current savings rate. Each year adds annualized savings and
// then grows the balance by 8%; growth is skipped while the balance is
// negative so debt does not compound at an investment rate.
func ProjectNetWorth(s *snapshot.Snapshot, years int) float64 {
	projected := s.CurrentNetWorth().NetWorth
	yearlySavings := s.MonthlySavings() * 12

	for i := 0; i < years; i++ {
		projected += yearlySavings
		if projected > 0 {
			projected += projected * projectionGrowthRate
		}
	}
	return projected
}
