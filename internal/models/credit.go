package models

// CreditScore represents the user's credit score record
type CreditScore struct {
	Score       int    `json:"score"`
	Provider    string `json:"provider,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}
