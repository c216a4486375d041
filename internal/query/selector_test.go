package query

import (
	"testing"

	"github.com/finsight/finsight/internal/analytics"
	"github.com/finsight/finsight/internal/models"
	"github.com/finsight/finsight/internal/snapshot"
)

func selectorFixture() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		User: models.UserProfile{Name: "Asha", Age: 30, RiskProfile: "moderate"},
		Accounts: snapshot.Accounts{
			BankAccounts: []models.BankAccount{{Bank: "HDFC", Balance: 250000}},
		},
		Investments: models.Investments{
			MutualFunds: []models.MutualFund{
				{Name: "Bluechip", Category: "Equity - Large Cap", CurrentValue: 300000, Returns: map[string]float64{"1y": 13.5}},
			},
		},
		Loans: map[string]models.Loan{
			"home_loan": {OutstandingAmount: 2500000, EMI: 25000},
		},
		Spending: models.Spending{
			MonthlySummary: &models.MonthlySummary{TotalIncome: 150000, Savings: 60000},
		},
		NetWorth: models.NetWorth{
			NetWorth: 1200000,
			History:  []models.NetWorthPoint{{Date: "2025-08-01", NetWorth: 1200000}},
		},
	}
}

func TestSelectAlwaysIncludesUser(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "hello there")
	if len(data) != 1 {
		t.Errorf("unmatched query should carry only the profile, got %v keys", len(data))
	}
	user, ok := data["user_info"].(models.UserProfile)
	if !ok || user.Name != "Asha" {
		t.Errorf("user_info = %+v", data["user_info"])
	}
}

func TestSelectBankQuery(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "What is my bank balance?")

	if _, ok := data["bank_accounts"]; !ok {
		t.Error("expected bank_accounts for a balance question")
	}
	if _, ok := data["loans"]; ok {
		t.Error("loans should not be selected for a balance question")
	}
}

func TestSelectAffordabilityQuery(t *testing.T) {
	s := selectorFixture()
	data := SelectRelevantData(s, "Can I afford a 20L loan?")

	if _, ok := data["loans"]; !ok {
		t.Fatal("expected loans for an affordability question")
	}
	afford, ok := data["loan_affordability"].(models.LoanAffordability)
	if !ok {
		t.Fatalf("loan_affordability missing or wrong type: %T", data["loan_affordability"])
	}

	// Amount resolves to 20 lakh at the assumed 8.5% / 20 year terms
	want := analytics.CanAffordLoan(s, 2000000, 8.5, 20)
	if afford != want {
		t.Errorf("affordability = %+v, want %+v", afford, want)
	}
}

func TestSelectAffordabilityWithoutAmount(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "Can I afford another loan?")

	if _, ok := data["loans"]; !ok {
		t.Error("expected loans")
	}
	if _, ok := data["loan_affordability"]; ok {
		t.Error("no affordability check without an extractable amount")
	}
}

func TestSelectBenchmarkQuery(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "Are my mutual funds underperforming the market?")

	if _, ok := data["investments"]; !ok {
		t.Error("expected investments")
	}
	if _, ok := data["fund_performance_analysis"].(models.BenchmarkReport); !ok {
		t.Errorf("fund_performance_analysis missing or wrong type: %T", data["fund_performance_analysis"])
	}
}

func TestSelectInvestmentWithoutComparison(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "How is my portfolio doing?")

	if _, ok := data["investments"]; !ok {
		t.Error("expected investments")
	}
	if _, ok := data["fund_performance_analysis"]; ok {
		t.Error("benchmark analysis needs a comparison term")
	}
}

func TestSelectProjectionTargetAge(t *testing.T) {
	s := selectorFixture()
	data := SelectRelevantData(s, "How much will I have at 40?")

	got, ok := data["projected_net_worth"].(float64)
	if !ok {
		t.Fatalf("projected_net_worth missing: %v", data)
	}
	// Age 30 to target 40 is a ten year horizon
	if want := analytics.ProjectNetWorth(s, 10); got != want {
		t.Errorf("projection = %v, want %v", got, want)
	}
}

func TestSelectProjectionDefaultHorizon(t *testing.T) {
	s := selectorFixture()
	data := SelectRelevantData(s, "What does my future net worth look like?")

	got, ok := data["projected_net_worth"].(float64)
	if !ok {
		t.Fatalf("projected_net_worth missing: %v", data)
	}
	if want := analytics.ProjectNetWorth(s, 10); got != want {
		t.Errorf("projection = %v, want default ten year horizon %v", got, want)
	}
}

func TestSelectProjectionPastTargetAge(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "How much money will I have at 25?")

	if _, ok := data["projected_net_worth"]; ok {
		t.Error("no projection for a target age in the past")
	}
}

func TestSelectMultipleGroups(t *testing.T) {
	data := SelectRelevantData(selectorFixture(), "Given my spending, can I pay off my debt and grow my net worth?")

	for _, key := range []string{"spending", "loans", "net_worth", "net_worth_history"} {
		if _, ok := data[key]; !ok {
			t.Errorf("expected %s in selection", key)
		}
	}
}
