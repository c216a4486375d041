package analytics

import (
	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

// Default annual returns assumed for holdings that report an interest
// rate of zero or none at all.
const (
	defaultEPFReturn = 8.15
	defaultPPFReturn = 7.1
	defaultFDReturn  = 6.0
)

// InvestmentPerformance computes per-asset return series, portfolio
// allocation and the value-weighted average return across all holdings.
func InvestmentPerformance(s *snapshot.Snapshot) models.InvestmentReport {
	funds := s.MutualFunds()
	stocks := s.Stocks()

	fundReturns := make([]models.SeriesPoint, 0, len(funds))
	for _, f := range funds {
		fundReturns = append(fundReturns, models.SeriesPoint{Label: f.Name, Value: f.OneYearReturn()})
	}
	stockReturns := make([]models.SeriesPoint, 0, len(stocks))
	for _, st := range stocks {
		stockReturns = append(stockReturns, models.SeriesPoint{Label: st.Name, Value: st.ProfitLossPerc})
	}

	totalMF := s.TotalMutualFundValue()
	totalStocks := s.TotalStockValue()
	epf := s.Investments.EPF
	ppf := s.Investments.PPF
	var totalFD float64
	for _, fd := range s.FixedDeposits() {
		totalFD += fd.CurrentValue
	}

	allocation := []models.SeriesPoint{
		{Label: "Mutual Funds", Value: totalMF},
		{Label: "Stocks", Value: totalStocks},
		{Label: "EPF", Value: epf.Balance},
		{Label: "PPF", Value: ppf.Balance},
		{Label: "Fixed Deposits", Value: totalFD},
	}

	total := totalMF + totalStocks + epf.Balance + ppf.Balance + totalFD

	var weighted float64
	if total > 0 {
		for _, f := range funds {
			weighted += f.OneYearReturn() * f.CurrentValue / total
		}
		for _, st := range stocks {
			weighted += st.ProfitLossPerc * st.CurrentValue / total
		}
		if epf.Balance > 0 {
			weighted += rateOrDefault(epf.InterestRate, defaultEPFReturn) * epf.Balance / total
		}
		if ppf.Balance > 0 {
			weighted += rateOrDefault(ppf.InterestRate, defaultPPFReturn) * ppf.Balance / total
		}
		if totalFD > 0 {
			weighted += averageFDReturn(s.FixedDeposits()) * totalFD / total
		}
	}

	return models.InvestmentReport{
		FundReturns:  fundReturns,
		StockReturns: stockReturns,
		Allocation:   allocation,
		Metrics: models.InvestmentMetrics{
			TotalInvestmentValue:  total,
			WeightedAverageReturn: weighted,
			BestPerformingAsset:   bestPerformingAsset(funds, stocks),
			WorstPerformingAsset:  worstPerformingAsset(funds, stocks),
		},
	}
}

func rateOrDefault(rate, fallback float64) float64 {
	if rate > 0 {
		return rate
	}
	return fallback
}

func averageFDReturn(deposits []models.FixedDeposit) float64 {
	if len(deposits) == 0 {
		return defaultFDReturn
	}
	var sum float64
	for _, fd := range deposits {
		sum += fd.InterestRate
	}
	return sum / float64(len(deposits))
}

// bestPerformingAsset picks the strongest single holding across funds and
// stocks. The top fund wins ties against the top stock. Fund and stock
// ranking itself breaks return ties by name so the result does not depend
// on input ordering.
func bestPerformingAsset(funds []models.MutualFund, stocks []models.Stock) *models.AssetPerformance {
	var bestFund *models.MutualFund
	for i := range funds {
		if bestFund == nil || funds[i].OneYearReturn() > bestFund.OneYearReturn() ||
			(funds[i].OneYearReturn() == bestFund.OneYearReturn() && funds[i].Name < bestFund.Name) {
			bestFund = &funds[i]
		}
	}
	var bestStock *models.Stock
	for i := range stocks {
		if bestStock == nil || stocks[i].ProfitLossPerc > bestStock.ProfitLossPerc ||
			(stocks[i].ProfitLossPerc == bestStock.ProfitLossPerc && stocks[i].Name < bestStock.Name) {
			bestStock = &stocks[i]
		}
	}

	switch {
	case bestFund != nil && bestStock != nil:
		if bestFund.OneYearReturn() >= bestStock.ProfitLossPerc {
			return &models.AssetPerformance{Type: "Mutual Fund", Name: bestFund.Name, Return: bestFund.OneYearReturn()}
		}
		return &models.AssetPerformance{Type: "Stock", Name: bestStock.Name, Return: bestStock.ProfitLossPerc}
	case bestFund != nil:
		return &models.AssetPerformance{Type: "Mutual Fund", Name: bestFund.Name, Return: bestFund.OneYearReturn()}
	case bestStock != nil:
		return &models.AssetPerformance{Type: "Stock", Name: bestStock.Name, Return: bestStock.ProfitLossPerc}
	}
	return nil
}

// worstPerformingAsset is the mirror of bestPerformingAsset
func worstPerformingAsset(funds []models.MutualFund, stocks []models.Stock) *models.AssetPerformance {
	var worstFund *models.MutualFund
	for i := range funds {
		if worstFund == nil || funds[i].OneYearReturn() < worstFund.OneYearReturn() ||
			(funds[i].OneYearReturn() == worstFund.OneYearReturn() && funds[i].Name < worstFund.Name) {
			worstFund = &funds[i]
		}
	}
	var worstStock *models.Stock
	for i := range stocks {
		if worstStock == nil || stocks[i].ProfitLossPerc < worstStock.ProfitLossPerc ||
			(stocks[i].ProfitLossPerc == worstStock.ProfitLossPerc && stocks[i].Name < worstStock.Name) {
			worstStock = &stocks[i]
		}
	}

	switch {
	case worstFund != nil && worstStock != nil:
		if worstFund.OneYearReturn() <= worstStock.ProfitLossPerc {
			return &models.AssetPerformance{Type: "Mutual Fund", Name: worstFund.Name, Return: worstFund.OneYearReturn()}
		}
		return &models.AssetPerformance{Type: "Stock", Name: worstStock.Name, Return: worstStock.ProfitLossPerc}
	case worstFund != nil:
		return &models.AssetPerformance{Type: "Mutual Fund", Name: worstFund.Name, Return: worstFund.OneYearReturn()}
	case worstStock != nil:
		return &models.AssetPerformance{Type: "Stock", Name: worstStock.Name, Return: worstStock.ProfitLossPerc}
	}
	return nil
}
