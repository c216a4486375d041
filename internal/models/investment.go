package models

// MutualFund represents a mutual fund holding
type MutualFund struct {
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	InvestedValue float64            `json:"invested_value,omitempty"`
	CurrentValue  float64            `json:"current_value"`
	Returns       map[string]float64 `json:"returns"`
}

// OneYearReturn returns the 1-year return percentage, 0 when not reported
func (f MutualFund) OneYearReturn() float64 {
	return f.Returns["1y"]
}

// Stock represents a direct equity holding
type Stock struct {
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol,omitempty"`
	Quantity       int     `json:"quantity,omitempty"`
	CurrentValue   float64 `json:"current_value"`
	ProfitLossPerc float64 `json:"profit_loss_percentage"`
}

// RetirementAccount represents an EPF or PPF account
type RetirementAccount struct {
	AccountNumber string  `json:"account_number,omitempty"`
	Balance       float64 `json:"balance"`
	InterestRate  float64 `json:"interest_rate"`
}

// FixedDeposit represents a fixed deposit
type FixedDeposit struct {
	Bank         string  `json:"bank"`
	CurrentValue float64 `json:"current_value"`
	InterestRate float64 `json:"interest_rate"`
	MaturityDate string  `json:"maturity_date,omitempty"`
}

// Investments groups all investment holdings in the snapshot
type Investments struct {
	MutualFunds   []MutualFund      `json:"mutual_funds"`
	Stocks        []Stock           `json:"stocks"`
	EPF           RetirementAccount `json:"epf"`
	PPF           RetirementAccount `json:"ppf"`
	FixedDeposits []FixedDeposit    `json:"fixed_deposits"`
}
