package domain

import "time"

// ExecutionRecord is one trade the engine placed on the user's behalf.
// Records stay undoable until their deadline passes.
type ExecutionRecord struct {
	ID           string      `json:"id"`
	Timestamp    time.Time   `json:"timestamp"`
	Action       TradeAction `json:"action"`
	Symbol       string      `json:"symbol"`
	Quantity     float64     `json:"quantity"`
	Price        float64     `json:"price"`
	Confidence   float64     `json:"confidence"`
	CanUndo      bool        `json:"can_undo"`
	UndoDeadline time.Time   `json:"undo_deadline"`
	Undone       bool        `json:"undone"`
}

// Undoable reports whether the record can still be reversed at the given time.
func (r ExecutionRecord) Undoable(now time.Time) bool {
	return r.CanUndo && !r.Undone && !now.After(r.UndoDeadline)
}

// DayStats aggregates today's activity for the safety and limit checks.
type DayStats struct {
	Trades            int     `json:"trades"`
	PnL               float64 `json:"pnl"`
	ConsecutiveLosses int     `json:"consecutive_losses"`
	Errors            int     `json:"errors"`
}
