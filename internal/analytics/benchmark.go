package analytics

import (
	"math"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// Average annual returns of the reference indices per fund category
var categoryBenchmarks = map[string]float64{
	"Equity - Large Cap":    12.0, // Nifty 50
	"Equity - Mid Cap":      14.0, // Nifty Midcap 100
	"Debt - Corporate Bond": 7.0,  // Corporate bond index
}

// Benchmark assumed for categories without a reference index
const defaultBenchmarkReturn = 10.0

// BenchmarkComparison buckets each fund by its 1-year return relative to
// its category benchmark. Funds within one point of the benchmark are
// considered in line with the market and land in neither bucket.
func BenchmarkComparison(s *snapshot.Snapshot) models.BenchmarkReport {
	report := models.BenchmarkReport{
		Underperforming: []models.FundBenchmark{},
		Outperforming:   []models.FundBenchmark{},
	}

	for _, f := range s.MutualFunds() {
		benchmark, ok := categoryBenchmarks[f.Category]
		if !ok {
			benchmark = defaultBenchmarkReturn
		}
		diff := f.OneYearReturn() - benchmark

		entry := models.FundBenchmark{
			Name:            f.Name,
			Category:        f.Category,
			FundReturn1Y:    f.OneYearReturn(),
			BenchmarkReturn: benchmark,
			Difference:      math.Round(diff*100) / 100,
		}

		switch {
		case diff < -1.0:
			report.Underperforming = append(report.Underperforming, entry)
		case diff > 1.0:
			report.Outperforming = append(report.Outperforming, entry)
		}
	}
	return report
}
