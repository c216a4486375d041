package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/finsight/finsight/internal/models"
)

// Accounts groups bank accounts and credit cards in the snapshot
type Accounts struct {
	BankAccounts []models.BankAccount `json:"bank_accounts"`
	CreditCards  []models.CreditCard  `json:"credit_cards"`
}

// Snapshot is a financial record snapshot loaded once and held immutable
// for the process lifetime. Accessors are total: missing data degrades to
// empty or zero values, never an error.
type Snapshot struct {
	User            models.UserProfile     `json:"user"`
	Accounts        Accounts               `json:"accounts"`
	Investments     models.Investments     `json:"investments"`
	Loans           map[string]models.Loan `json:"loans"`
	CreditScore     models.CreditScore     `json:"credit_score"`
	Insurance       json.RawMessage        `json:"insurance,omitempty"`
	Spending        models.Spending        `json:"spending"`
	FinancialGoals  json.RawMessage        `json:"financial_goals,omitempty"`
	NetWorth        models.NetWorth        `json:"net_worth"`
	Recommendations json.RawMessage        `json:"recommendations,omitempty"`
}

// Load reads and parses a snapshot file
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}
	return &s, nil
}

// UserInfo returns the user profile
func (s *Snapshot) UserInfo() models.UserProfile {
	return s.User
}

// BankAccounts returns all bank accounts
func (s *Snapshot) BankAccounts() []models.BankAccount {
	if s.Accounts.BankAccounts == nil {
		return []models.BankAccount{}
	}
	return s.Accounts.BankAccounts
}

// CreditCards returns all credit cards
func (s *Snapshot) CreditCards() []models.CreditCard {
	if s.Accounts.CreditCards == nil {
		return []models.CreditCard{}
	}
	return s.Accounts.CreditCards
}

// MutualFunds returns all mutual fund holdings
func (s *Snapshot) MutualFunds() []models.MutualFund {
	if s.Investments.MutualFunds == nil {
		return []models.MutualFund{}
	}
	return s.Investments.MutualFunds
}

// Stocks returns all stock holdings
func (s *Snapshot) Stocks() []models.Stock {
	if s.Investments.Stocks == nil {
		return []models.Stock{}
	}
	return s.Investments.Stocks
}

// RetirementAccounts returns the EPF and PPF accounts keyed by scheme
func (s *Snapshot) RetirementAccounts() map[string]models.RetirementAccount {
	return map[string]models.RetirementAccount{
		"epf": s.Investments.EPF,
		"ppf": s.Investments.PPF,
	}
}

// FixedDeposits returns all fixed deposits
func (s *Snapshot) FixedDeposits() []models.FixedDeposit {
	if s.Investments.FixedDeposits == nil {
		return []models.FixedDeposit{}
	}
	return s.Investments.FixedDeposits
}

// AllLoans returns all loans keyed by loan type
func (s *Snapshot) AllLoans() map[string]models.Loan {
	if s.Loans == nil {
		return map[string]models.Loan{}
	}
	return s.Loans
}

// Score returns the credit score record
func (s *Snapshot) Score() models.CreditScore {
	return s.CreditScore
}

// InsurancePolicies returns the raw insurance records
func (s *Snapshot) InsurancePolicies() json.RawMessage {
	if s.Insurance == nil {
		return json.RawMessage("{}")
	}
	return s.Insurance
}

// SpendingSummary returns the full spending group
func (s *Snapshot) SpendingSummary() models.Spending {
	return s.Spending
}

// MonthlySpending returns the monthly spending summary, nil when absent
func (s *Snapshot) MonthlySpending() *models.MonthlySummary {
	return s.Spending.MonthlySummary
}

// MonthlyIncome returns the reported monthly income, 0 when absent
func (s *Snapshot) MonthlyIncome() float64 {
	if s.Spending.MonthlySummary == nil {
		return 0
	}
	return s.Spending.MonthlySummary.TotalIncome
}

// MonthlySavings returns the reported monthly savings, 0 when absent
func (s *Snapshot) MonthlySavings() float64 {
	if s.Spending.MonthlySummary == nil {
		return 0
	}
	return s.Spending.MonthlySummary.Savings
}

// RecentTransactions returns the recent transaction list
func (s *Snapshot) RecentTransactions() []models.Transaction {
	if s.Spending.RecentTransactions == nil {
		return []models.Transaction{}
	}
	return s.Spending.RecentTransactions
}

// Goals returns the raw financial goals
func (s *Snapshot) Goals() json.RawMessage {
	if s.FinancialGoals == nil {
		return json.RawMessage("[]")
	}
	return s.FinancialGoals
}

// CurrentNetWorth returns the current total net worth
func (s *Snapshot) CurrentNetWorth() models.NetWorth {
	return s.NetWorth
}

// NetWorthHistory returns the net worth history, latest point first
func (s *Snapshot) NetWorthHistory() []models.NetWorthPoint {
	if s.NetWorth.History == nil {
		return []models.NetWorthPoint{}
	}
	return s.NetWorth.History
}

// Advice returns the raw recommendation records
func (s *Snapshot) Advice() json.RawMessage {
	if s.Recommendations == nil {
		return json.RawMessage("[]")
	}
	return s.Recommendations
}

// TotalBankBalance sums balances across all bank accounts
func (s *Snapshot) TotalBankBalance() float64 {
	var total float64
	for _, a := range s.BankAccounts() {
		total += a.Balance
	}
	return total
}

// TotalMutualFundValue sums current values across all mutual funds
func (s *Snapshot) TotalMutualFundValue() float64 {
	var total float64
	for _, f := range s.MutualFunds() {
		total += f.CurrentValue
	}
	return total
}

// TotalStockValue sums current values across all stocks
func (s *Snapshot) TotalStockValue() float64 {
	var total float64
	for _, st := range s.Stocks() {
		total += st.CurrentValue
	}
	return total
}

// TotalLoanOutstanding sums outstanding amounts across all loans
func (s *Snapshot) TotalLoanOutstanding() float64 {
	var total float64
	for _, l := range s.AllLoans() {
		total += l.OutstandingAmount
	}
	return total
}

// TotalCreditCardDebt sums outstanding balances across all credit cards
func (s *Snapshot) TotalCreditCardDebt() float64 {
	var total float64
	for _, c := range s.CreditCards() {
		total += c.OutstandingBalance
	}
	return total
}
