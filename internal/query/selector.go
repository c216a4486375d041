// Package query maps free-text questions to the minimal slice of
// financial data needed to answer them, and classifies questions into
// insight categories. Matching is case-insensitive substring matching over
// declarative trigger tables; no tokenization or stemming is applied, so
// "invest" also fires on "investments".
package query

import (
	"strings"

	"github.com/finsight/finsight/internal/analytics"
	"github.com/finsight/finsight/internal/snapshot"
)

// Assumptions applied when a question asks about affording a new loan
// without stating terms.
const (
	assumedLoanRate        = 8.5
	assumedLoanTenureYears = 20
)

// Projection horizon assumed when no target age is given
const defaultProjectionYears = 10

// dataTrigger attaches one data group when any of its keywords appears in
// the query.
type dataTrigger struct {
	keywords []string
	attach   func(s *snapshot.Snapshot, q string, data map[string]any)
}

var dataTriggers = []dataTrigger{
	{
		keywords: []string{"money", "cash", "balance", "bank", "account", "savings"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["bank_accounts"] = s.BankAccounts()
		},
	},
	{
		keywords: []string{"invest", "mutual", "fund", "stock", "equity", "portfolio", "sip", "underperform", "market"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["investments"] = map[string]any{
				"mutual_funds": s.MutualFunds(),
				"stocks":       s.Stocks(),
			}
			if containsAny(q, "underperform", "market", "benchmark", "compare") {
				data["fund_performance_analysis"] = analytics.BenchmarkComparison(s)
			}
		},
	},
	{
		keywords: []string{"loan", "debt", "emi", "afford", "home loan", "personal loan"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["loans"] = s.AllLoans()
			if strings.Contains(q, "afford") && strings.Contains(q, "loan") {
				if amount, ok := AmountInLakhs(q); ok {
					data["loan_affordability"] = analytics.CanAffordLoan(s, amount, assumedLoanRate, assumedLoanTenureYears)
				}
			}
		},
	},
	{
		keywords: []string{"net worth", "networth", "assets", "liabilities", "growing"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["net_worth"] = s.CurrentNetWorth()
			data["net_worth_history"] = s.NetWorthHistory()
		},
	},
	{
		keywords: []string{"spend", "expense", "budget", "category"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["spending"] = s.SpendingSummary()
		},
	},
	{
		keywords: []string{"goal", "target", "retirement", "education", "home"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["financial_goals"] = s.Goals()
		},
	},
	{
		keywords: []string{"credit", "score", "cibil"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["credit_score"] = s.Score()
		},
	},
	{
		keywords: []string{"insurance", "policy", "health", "term", "vehicle"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["insurance"] = s.InsurancePolicies()
		},
	},
	{
		keywords: []string{"recommend", "suggestion", "advice"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			data["recommendations"] = s.Advice()
		},
	},
	{
		keywords: []string{"at 40", "by 40", "in 5 years", "in 10 years", "future", "will have", "projection"},
		attach: func(s *snapshot.Snapshot, q string, data map[string]any) {
			years := defaultProjectionYears
			if target, ok := TargetAge(q); ok {
				years = target - s.UserInfo().Age
				if years <= 0 {
					return
				}
			}
			data["projected_net_worth"] = analytics.ProjectNetWorth(s, years)
		},
	},
}

// SelectRelevantData returns the data groups relevant to a question. The
// user profile is always included; every trigger group whose keywords
// match is added on top, so multiple groups can fire for one question.
func SelectRelevantData(s *snapshot.Snapshot, query string) map[string]any {
	q := strings.ToLower(query)
	data := map[string]any{
		"user_info": s.UserInfo(),
	}
	for _, t := range dataTriggers {
		if containsAny(q, t.keywords...) {
			t.attach(s, q, data)
		}
	}
	return data
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
