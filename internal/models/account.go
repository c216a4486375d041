package models

// BankAccount represents a deposit account held by the user
type BankAccount struct {
	Bank          string  `json:"bank"`
	AccountType   string  `json:"account_type"`
	AccountNumber string  `json:"account_number,omitempty"`
	Balance       float64 `json:"balance"`
}

// CreditCard represents a credit card with its current dues
type CreditCard struct {
	Bank               string  `json:"bank"`
	CardName           string  `json:"card_name,omitempty"`
	CreditLimit        float64 `json:"credit_limit,omitempty"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	MinPaymentDue      float64 `json:"min_payment_due"`
	DueDate            string  `json:"due_date,omitempty"`
}
