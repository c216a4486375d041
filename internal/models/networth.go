package models

// NetWorthPoint represents net worth at a point in time
type NetWorthPoint struct {
	Date     string  `json:"date"` // Format: YYYY-MM-DD
	NetWorth float64 `json:"net_worth"`
}

// NetWorth represents total net worth plus its history.
// History is ordered most-recent-first: History[0] is the latest point.
type NetWorth struct {
	NetWorth float64         `json:"net_worth"`
	History  []NetWorthPoint `json:"history"`
}
