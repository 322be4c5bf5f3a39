package domain

// HourWindow is an allowed trading window in local hours, Start inclusive,
// End exclusive. Start > End wraps past midnight.
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the given hour (0-23) falls inside the window.
func (w HourWindow) Contains(hour int) bool {
	if w.Start <= w.End {
		return hour >= w.Start && hour < w.End
	}
	return hour >= w.Start || hour < w.End
}

// IsValid rejects out-of-range bounds and zero-width windows. A zero-width
// window contains no hours at all, which would silently block every trade.
func (w HourWindow) IsValid() bool {
	if w.Start == w.End {
		return false
	}
	return w.Start >= 0 && w.Start <= 23 && w.End >= 0 && w.End <= 24
}

// TradingLimits bound what auto-execution may do. Persisted copies are
// decoded over DefaultLimits so fields missing from older snapshots keep
// their defaults.
type TradingLimits struct {
	MaxPositionValue      float64    `json:"max_position_value"`
	MaxDailyTrades        int        `json:"max_daily_trades"`
	MaxDailyLoss          float64    `json:"max_daily_loss"`
	AllowedSymbols        []string   `json:"allowed_symbols"` // empty allows all
	AllowedHours          HourWindow `json:"allowed_hours"`
	RequireHighConfidence bool       `json:"require_high_confidence"`
}

// DefaultLimits returns the conservative out-of-the-box caps.
func DefaultLimits() TradingLimits {
	return TradingLimits{
		MaxPositionValue:      1000,
		MaxDailyTrades:        10,
		MaxDailyLoss:          500,
		AllowedSymbols:        nil,
		AllowedHours:          HourWindow{Start: 9, End: 16},
		RequireHighConfidence: true,
	}
}

// SymbolAllowed reports whether the symbol passes the allowlist. An empty
// allowlist allows everything.
func (l TradingLimits) SymbolAllowed(symbol string) bool {
	if len(l.AllowedSymbols) == 0 {
		return true
	}
	for _, s := range l.AllowedSymbols {
		if s == symbol {
			return true
		}
	}
	return false
}
