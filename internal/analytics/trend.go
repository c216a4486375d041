// Package analytics computes insight reports over a financial snapshot.
// Every function is pure: it reads the snapshot and returns a report,
// degrading to zero values when data is missing.
package analytics

import (
	"fmt"
	"math"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// NetWorthTrend analyzes net worth change across the recorded history.
// History is ordered latest-first: the first point is the current value
// and the last point is the baseline.
func NetWorthTrend(s *snapshot.Snapshot) models.TrendReport {
	history := s.NetWorthHistory()

	series := make([]models.SeriesPoint, 0, len(history))
	for _, p := range history {
		series = append(series, models.SeriesPoint{Label: p.Date, Value: p.NetWorth})
	}

	if len(history) == 0 {
		return models.TrendReport{
			Series:  series,
			Metrics: models.TrendMetrics{Trend: "neutral", TimePeriod: "N/A"},
		}
	}

	current := history[0].NetWorth
	baseline := history[len(history)-1].NetWorth
	change := current - baseline

	var changePercent float64
	if baseline != 0 {
		changePercent = change / math.Abs(baseline) * 100
	}

	trend := "neutral"
	switch {
	case change > 0:
		trend = "positive"
	case change < 0:
		trend = "negative"
	}

	return models.TrendReport{
		Series: series,
		Metrics: models.TrendMetrics{
			CurrentNetWorth: current,
			ChangeValue:     change,
			ChangePercent:   changePercent,
			Trend:           trend,
			TimePeriod:      fmt.Sprintf("%s to %s", history[len(history)-1].Date, history[0].Date),
		},
	}
}
