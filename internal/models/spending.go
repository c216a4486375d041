package models

import "encoding/json"

// MonthlySummary represents one month of income and spending
type MonthlySummary struct {
	Month             string             `json:"month"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Savings           float64            `json:"savings"`
	SavingsPercentage float64            `json:"savings_percentage"`
	Categories        map[string]float64 `json:"categories"`
}

// Transaction represents a single recent transaction
type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"` // debit or credit
}

// Spending groups spending data in the snapshot
type Spending struct {
	MonthlySummary     *MonthlySummary `json:"monthly_summary"`
	YearlySummary      json.RawMessage `json:"yearly_summary,omitempty"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
}
