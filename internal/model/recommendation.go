package model

import "time"

// Action indicates the outcome of a full scan.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionNone Action = "NO_OPPORTUNITY"
)

// Recommendation is the single result of a full ticker-list pass.
type Recommendation struct {
	Action    Action
	Symbol    string // set only when Action == ActionBuy
	CreatedAt time.Time
}

// BuyRecommendation builds a buy recommendation for the given ticker.
func BuyRecommendation(symbol string) Recommendation {
	return Recommendation{Action: ActionBuy, Symbol: symbol, CreatedAt: time.Now()}
}

// NoOpportunity builds the recommendation emitted when no ticker qualifies.
func NoOpportunity() Recommendation {
	return Recommendation{Action: ActionNone, CreatedAt: time.Now()}
}
