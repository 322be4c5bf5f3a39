package domain

import "time"

type TradeOutcome string

const (
	OutcomeWin  TradeOutcome = "win"
	OutcomeLoss TradeOutcome = "loss"
)

func (o TradeOutcome) IsValid() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// TradeRecord is one realized trade outcome reported back to the engine.
// The emotional state detector and the daily P&L checks read this stream.
type TradeRecord struct {
	Symbol    string       `json:"symbol"`
	Outcome   TradeOutcome `json:"outcome"`
	PnL       float64      `json:"pnl"`
	Timestamp time.Time    `json:"timestamp"`
}

type TradeAction string

const (
	ActionBuy  TradeAction = "buy"
	ActionSell TradeAction = "sell"
)

func (a TradeAction) IsValid() bool {
	return a == ActionBuy || a == ActionSell
}

// TradeIntent is a concrete order the engine is asked to authorize.
type TradeIntent struct {
	Symbol     string      `json:"symbol"`
	Action     TradeAction `json:"action"`
	Quantity   float64     `json:"quantity"`
	Price      float64     `json:"price"`
	Confidence float64     `json:"confidence"`
}

// Value is the notional size of the intent in account currency.
func (i TradeIntent) Value() float64 {
	return i.Quantity * i.Price
}
