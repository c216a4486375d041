package models

// Loan represents a running loan keyed by its type in the snapshot
type Loan struct {
	Lender            string  `json:"lender,omitempty"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	InterestRate      float64 `json:"interest_rate"`
	EMI               float64 `json:"emi"`
	EndDate           string  `json:"end_date"`
	RemainingTenure   int     `json:"remaining_tenure"`
}
