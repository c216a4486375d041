package models

// InsightCategory identifies one of the supported insight reports
type InsightCategory string

const (
	CategoryNetWorthTrend         InsightCategory = "net_worth_trend"
	CategoryInvestmentPerformance InsightCategory = "investment_performance"
	CategorySpendingPatterns      InsightCategory = "spending_patterns"
	CategoryDebtAnalysis          InsightCategory = "debt_analysis"
)

// SeriesPoint is one labelled value of a chart-ready series
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TrendMetrics represents net worth trend metrics
type TrendMetrics struct {
	CurrentNetWorth float64 `json:"current_net_worth"`
	ChangeValue     float64 `json:"change_value"`
	ChangePercent   float64 `json:"change_percent"`
	Trend           string  `json:"trend"` // positive, negative or neutral
	TimePeriod      string  `json:"time_period"`
}

// TrendReport is the net worth trend insight
type TrendReport struct {
	Series  []SeriesPoint `json:"series"`
	Metrics TrendMetrics  `json:"metrics"`
}

// AssetPerformance names a single best or worst performing holding
type AssetPerformance struct {
	Type   string  `json:"type"` // Mutual Fund or Stock
	Name   string  `json:"name"`
	Return float64 `json:"return"`
}

// InvestmentMetrics represents portfolio-level performance metrics
type InvestmentMetrics struct {
	TotalInvestmentValue  float64           `json:"total_investment_value"`
	WeightedAverageReturn float64           `json:"weighted_average_return"`
	BestPerformingAsset   *AssetPerformance `json:"best_performing_asset"`
	WorstPerformingAsset  *AssetPerformance `json:"worst_performing_asset"`
}

// InvestmentReport is the investment performance insight
type InvestmentReport struct {
	FundReturns  []SeriesPoint     `json:"fund_returns"`
	StockReturns []SeriesPoint     `json:"stock_returns"`
	Allocation   []SeriesPoint     `json:"portfolio_allocation"`
	Metrics      InvestmentMetrics `json:"metrics"`
}

// SpendingMetrics represents monthly spending metrics
type SpendingMetrics struct {
	TotalSpending         float64  `json:"total_spending"`
	TotalIncome           float64  `json:"total_income"`
	Savings               float64  `json:"savings"`
	SavingsRate           float64  `json:"savings_rate"`
	TopSpendingCategories []string `json:"top_spending_categories"`
	Month                 string   `json:"month"`
}

// SpendingReport is the spending patterns insight.
// Available is false when the snapshot has no monthly category breakdown.
type SpendingReport struct {
	Available  bool            `json:"available"`
	Categories []SeriesPoint   `json:"categories"`
	Metrics    SpendingMetrics `json:"metrics"`
}

// DebtMetrics represents aggregate debt metrics
type DebtMetrics struct {
	TotalDebt           float64 `json:"total_debt"`
	MonthlyDebtPayment  float64 `json:"monthly_debt_payment"`
	DebtToIncomeRatio   float64 `json:"debt_to_income_ratio"`
	MonthsToDebtFreedom float64 `json:"months_to_debt_freedom"`
}

// LoanDetail is one loan row of the debt insight
type LoanDetail struct {
	Type            string  `json:"type"`
	Outstanding     float64 `json:"outstanding"`
	InterestRate    float64 `json:"interest_rate"`
	EMI             float64 `json:"emi"`
	EndDate         string  `json:"end_date"`
	RemainingTenure int     `json:"remaining_tenure"`
}

// DebtReport is the debt analysis insight
type DebtReport struct {
	Distribution []SeriesPoint `json:"distribution"`
	Metrics      DebtMetrics   `json:"metrics"`
	LoansDetail  []LoanDetail  `json:"loans_detail"`
}

// LoanAffordability represents a new-loan affordability check
type LoanAffordability struct {
	CanAfford         bool    `json:"can_afford"`
	RequestedEMI      float64 `json:"requested_emi"`
	MaxAffordableEMI  float64 `json:"max_affordable_emi"`
	RecommendedEMI    float64 `json:"recommended_emi"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
	ExistingEMI       float64 `json:"existing_emi"`
	MonthlyIncome     float64 `json:"monthly_income"`
}

// FundBenchmark compares one fund against its category benchmark
type FundBenchmark struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	FundReturn1Y    float64 `json:"fund_return_1y"`
	BenchmarkReturn float64 `json:"benchmark_return"`
	Difference      float64 `json:"difference"`
}

// BenchmarkReport buckets funds by benchmark-relative performance.
// Funds within one point of the benchmark land in neither bucket.
type BenchmarkReport struct {
	Underperforming []FundBenchmark `json:"underperforming"`
	Outperforming   []FundBenchmark `json:"outperforming"`
}
