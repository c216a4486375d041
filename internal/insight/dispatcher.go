// Package insight routes insight categories to their analytics function
// and caches the computed reports per snapshot version.
package insight

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"

	"github.com/finsight/finsight/internal/analytics"
	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// Result wraps one generated insight. Recognized is false for unknown
// categories; no error is returned in that case.
type Result struct {
	Recognized bool                   `json:"recognized"`
	Category   models.InsightCategory `json:"category,omitempty"`
	Insight    any                    `json:"insight,omitempty"`
}

// Dispatcher generates insight reports for a snapshot store
type Dispatcher struct {
	store *snapshot.Store
	cache *ristretto.Cache
	log   *logrus.Logger
}

// New initializes a dispatcher with a small in-memory result cache
func New(store *snapshot.Store, log *logrus.Logger) (*Dispatcher, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 10,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create insight cache: %w", err)
	}
	return &Dispatcher{store: store, cache: cache, log: log}, nil
}

// Generate computes the insight for a category. Repeated calls for the
// same category reuse the cached report until the snapshot is swapped.
func (d *Dispatcher) Generate(category models.InsightCategory) Result {
	key := fmt.Sprintf("%s#%d", category, d.store.Version())
	if cached, ok := d.cache.Get(key); ok {
		return cached.(Result)
	}

	s := d.store.Current()
	var insight any
	switch category {
	case models.CategoryNetWorthTrend:
		insight = analytics.NetWorthTrend(s)
	case models.CategoryInvestmentPerformance:
		insight = analytics.InvestmentPerformance(s)
	case models.CategorySpendingPatterns:
		insight = analytics.SpendingPatterns(s)
	case models.CategoryDebtAnalysis:
		insight = analytics.DebtAnalysis(s)
	default:
		d.log.Warnf("Insight category not recognized: %s", category)
		return Result{Recognized: false}
	}

	result := Result{Recognized: true, Category: category, Insight: insight}
	d.cache.Set(key, result, 1)
	return result
}
