package trust

import (
	"fmt"

	"tradegate/internal/domain"
)

// SafetyConfig bounds the trading day as a whole, independent of the
// per-trade limits a user can edit.
type SafetyConfig struct {
	AccountValue         float64
	MaxDailyDrawdownPct  float64
	MaxConsecutiveLosses int
	DailyTradeHardCap    int
	MaxErrors            int
}

func DefaultSafetyConfig() SafetyConfig {
	return SafetyConfig{
		AccountValue:         10000,
		MaxDailyDrawdownPct:  10,
		MaxConsecutiveLosses: 5,
		DailyTradeHardCap:    50,
		MaxErrors:            5,
	}
}

// Assess reports whether trading may continue today at all. The first breach
// wins; the reason is empty when trading is healthy.
func Assess(cfg SafetyConfig, stats domain.DayStats) (bool, string) {
	if cfg.AccountValue > 0 && stats.PnL < 0 {
		drawdown := -stats.PnL / cfg.AccountValue * 100
		if drawdown >= cfg.MaxDailyDrawdownPct {
			return false, fmt.Sprintf("daily drawdown %.1f%% breached the %.1f%% cap", drawdown, cfg.MaxDailyDrawdownPct)
		}
	}
	if stats.ConsecutiveLosses >= cfg.MaxConsecutiveLosses {
		return false, fmt.Sprintf("%d consecutive losses; done for the day", stats.ConsecutiveLosses)
	}
	if stats.Trades >= cfg.DailyTradeHardCap {
		return false, fmt.Sprintf("%d trades today hit the overtrading cap of %d", stats.Trades, cfg.DailyTradeHardCap)
	}
	if stats.Errors >= cfg.MaxErrors {
		return false, fmt.Sprintf("%d execution errors today; engine needs attention", stats.Errors)
	}
	return true, ""
}

// AssessTrade grades a single intent against the current limits, the day so
// far, and the trader's emotional read. Each factor adds points; the total
// maps to a band.
func AssessTrade(intent domain.TradeIntent, limits domain.TradingLimits, stats domain.DayStats, emotion domain.EmotionalRead) domain.RiskAssessment {
	score := 0
	var factors []string

	if limits.MaxPositionValue > 0 && intent.Value() >= 0.8*limits.MaxPositionValue {
		score += 2
		factors = append(factors, "position near the value cap")
	}
	switch {
	case intent.Confidence < 50:
		score += 2
		factors = append(factors, "low signal confidence")
	case intent.Confidence < 70:
		score++
		factors = append(factors, "middling signal confidence")
	}
	if stats.ConsecutiveLosses >= 3 {
		score += 2
		factors = append(factors, "active loss streak")
	}
	switch emotion.State {
	case domain.EmotionFrustrated, domain.EmotionGreedy, domain.EmotionExhausted:
		if emotion.Intensity >= 70 {
			score += 2
			factors = append(factors, fmt.Sprintf("trading while %s at intensity %d", emotion.State, emotion.Intensity))
		}
	}
	if limits.MaxDailyLoss > 0 && stats.PnL <= -0.5*limits.MaxDailyLoss {
		score++
		factors = append(factors, "over half the daily loss budget spent")
	}

	return domain.RiskAssessment{Band: bandFor(score), Score: score, Factors: factors}
}

func bandFor(score int) domain.RiskBand {
	switch {
	case score <= 1:
		return domain.RiskLow
	case score <= 3:
		return domain.RiskModerate
	case score <= 5:
		return domain.RiskElevated
	default:
		return domain.RiskExtreme
	}
}
