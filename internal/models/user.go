package models

// UserProfile represents the owner of the financial snapshot
type UserProfile struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Occupation  string `json:"occupation,omitempty"`
	RiskProfile string `json:"risk_profile"`
}
