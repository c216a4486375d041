package analytics

import (
	"math"
	"testing"

	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

func investmentFixture() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Investments: models.Investments{
			MutualFunds: []models.MutualFund{
				{Name: "Large Cap Fund", Category: "Equity - Large Cap", CurrentValue: 100000, Returns: map[string]float64{"1y": 10}},
				{Name: "Mid Cap Fund", Category: "Equity - Mid Cap", CurrentValue: 50000, Returns: map[string]float64{"1y": 18}},
			},
			Stocks: []models.Stock{
				{Name: "Alpha Ltd", CurrentValue: 50000, ProfitLossPerc: 25},
				{Name: "Beta Ltd", CurrentValue: 50000, ProfitLossPerc: -5},
			},
			EPF:           models.RetirementAccount{Balance: 100000, InterestRate: 8.15},
			PPF:           models.RetirementAccount{Balance: 100000, InterestRate: 7.1},
			FixedDeposits: []models.FixedDeposit{{Bank: "X", CurrentValue: 50000, InterestRate: 7}},
		},
	}
}

func TestInvestmentPerformanceWeightedReturn(t *testing.T) {
	report := InvestmentPerformance(investmentFixture())
	m := report.Metrics

	if m.TotalInvestmentValue != 500000 {
		t.Fatalf("total investment value = %v, want 500000", m.TotalInvestmentValue)
	}

	// Weights out of 500000: funds 10%*0.2 + 18%*0.1, stocks 25%*0.1 +
	// -5%*0.1, EPF 8.15%*0.2, PPF 7.1%*0.2, FD 7%*0.1
	want := 10*0.2 + 18*0.1 + 25*0.1 + -5*0.1 + 8.15*0.2 + 7.1*0.2 + 7*0.1
	if math.Abs(m.WeightedAverageReturn-want) > 1e-9 {
		t.Errorf("weighted return = %v, want %v", m.WeightedAverageReturn, want)
	}
}

func TestBestAndWorstAsset(t *testing.T) {
	m := InvestmentPerformance(investmentFixture()).Metrics

	if m.BestPerformingAsset == nil || m.BestPerformingAsset.Name != "Alpha Ltd" || m.BestPerformingAsset.Type != "Stock" {
		t.Errorf("best asset = %+v, want Alpha Ltd stock", m.BestPerformingAsset)
	}
	if m.WorstPerformingAsset == nil || m.WorstPerformingAsset.Name != "Beta Ltd" || m.WorstPerformingAsset.Type != "Stock" {
		t.Errorf("worst asset = %+v, want Beta Ltd stock", m.WorstPerformingAsset)
	}
}

func TestBestAssetTieFavorsFund(t *testing.T) {
	s := &snapshot.Snapshot{
		Investments: models.Investments{
			MutualFunds: []models.MutualFund{
				{Name: "Fund A", CurrentValue: 1000, Returns: map[string]float64{"1y": 12}},
			},
			Stocks: []models.Stock{
				{Name: "Stock A", CurrentValue: 1000, ProfitLossPerc: 12},
			},
		},
	}

	best := InvestmentPerformance(s).Metrics.BestPerformingAsset
	if best == nil || best.Type != "Mutual Fund" {
		t.Errorf("best asset on tie = %+v, want the mutual fund", best)
	}
}

func TestBestAssetOrderIndependent(t *testing.T) {
	s := investmentFixture()
	reversed := investmentFixture()
	for i, j := 0, len(reversed.Investments.Stocks)-1; i < j; i, j = i+1, j-1 {
		reversed.Investments.Stocks[i], reversed.Investments.Stocks[j] = reversed.Investments.Stocks[j], reversed.Investments.Stocks[i]
	}

	a := InvestmentPerformance(s).Metrics
	b := InvestmentPerformance(reversed).Metrics
	if *a.BestPerformingAsset != *b.BestPerformingAsset {
		t.Errorf("best asset depends on input order: %+v vs %+v", a.BestPerformingAsset, b.BestPerformingAsset)
	}
	if *a.WorstPerformingAsset != *b.WorstPerformingAsset {
		t.Errorf("worst asset depends on input order: %+v vs %+v", a.WorstPerformingAsset, b.WorstPerformingAsset)
	}
}

func TestInvestmentPerformanceNoHoldings(t *testing.T) {
	m := InvestmentPerformance(&snapshot.Snapshot{}).Metrics

	if m.BestPerformingAsset != nil || m.WorstPerformingAsset != nil {
		t.Errorf("expected nil best/worst with no holdings, got %+v / %+v", m.BestPerformingAsset, m.WorstPerformingAsset)
	}
	if m.TotalInvestmentValue != 0 || m.WeightedAverageReturn != 0 {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}
