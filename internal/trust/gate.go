package trust

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// highConfidenceFloor is the minimum signal confidence for auto-execution
// when the limits demand high-confidence entries.
const highConfidenceFloor = 70

// StatsProvider supplies the current day's aggregates.
type StatsProvider interface {
	Stats(ctx context.Context, includeUndone bool) domain.DayStats
}

// EmotionProvider supplies the latest emotional read.
type EmotionProvider interface {
	Current(ctx context.Context) domain.EmotionalRead
}

// Gate runs the ordered pre-trade authorization checks. Check order is fixed:
// hard interlocks first, then budget caps, then per-trade quality, with the
// composite risk grade last. The first denial wins.
type Gate struct {
	tracer  trace.Tracer
	manager *Manager
	stats   StatsProvider
	emotion EmotionProvider
	safety  SafetyConfig
	now     func() time.Time
}

func NewGate(tracer trace.Tracer, manager *Manager, stats StatsProvider, emotion EmotionProvider, safety SafetyConfig) *Gate {
	return &Gate{
		tracer:  tracer,
		manager: manager,
		stats:   stats,
		emotion: emotion,
		safety:  safety,
		now:     time.Now,
	}
}

// Authorize evaluates the intent against every check and returns the first
// denial, or an allowance carrying the trade's risk assessment.
func (g *Gate) Authorize(ctx context.Context, intent domain.TradeIntent) domain.GateResult {
	ctx, span := g.tracer.Start(ctx, "gate.authorize")
	defer span.End()

	status := g.manager.Status(ctx)
	if status.EmergencyStop {
		return deny("emergency_stop", "emergency stop active; all trading halted", domain.SeverityCritical)
	}
	if status.Paused {
		return deny("paused", "trading is paused", domain.SeverityHigh)
	}
	if !status.Level.AutoExecute() {
		return deny("trust_level", fmt.Sprintf("auto-execution disabled at trust level %q", status.Level), domain.SeverityMedium)
	}

	stats := g.stats.Stats(ctx, true)
	if ok, reason := Assess(g.safety, stats); !ok {
		return deny("safety", reason, domain.SeverityHigh)
	}

	limits := g.manager.Limits(ctx)
	if v := intent.Value(); v > limits.MaxPositionValue {
		return deny("position_value", fmt.Sprintf("trade value $%.2f exceeds the $%.2f position limit", v, limits.MaxPositionValue), domain.SeverityMedium)
	}
	if stats.Trades >= limits.MaxDailyTrades {
		return deny("daily_trades", fmt.Sprintf("%d trades today reached the limit of %d", stats.Trades, limits.MaxDailyTrades), domain.SeverityMedium)
	}
	if stats.PnL <= -limits.MaxDailyLoss {
		return deny("daily_loss", fmt.Sprintf("daily loss $%.2f reached the $%.2f limit", -stats.PnL, limits.MaxDailyLoss), domain.SeverityMedium)
	}
	if limits.RequireHighConfidence && intent.Confidence < highConfidenceFloor {
		return deny("confidence", fmt.Sprintf("confidence %.0f below the %d floor", intent.Confidence, highConfidenceFloor), domain.SeverityMedium)
	}
	if !limits.SymbolAllowed(intent.Symbol) {
		return deny("symbol", fmt.Sprintf("%s is not on the symbol allowlist", intent.Symbol), domain.SeverityMedium)
	}
	if hour := g.now().Hour(); !limits.AllowedHours.Contains(hour) {
		return deny("trading_hours", fmt.Sprintf("hour %02d is outside the %02d:00-%02d:00 trading window", hour, limits.AllowedHours.Start, limits.AllowedHours.End), domain.SeverityMedium)
	}

	risk := AssessTrade(intent, limits, stats, g.emotion.Current(ctx))
	if risk.Band == domain.RiskExtreme {
		res := deny("risk", "extreme composite risk: "+strings.Join(risk.Factors, "; "), domain.SeverityHigh)
		res.Risk = &risk
		return res
	}
	return domain.GateResult{Allowed: true, Risk: &risk}
}

func deny(check, reason string, severity domain.Severity) domain.GateResult {
	return domain.GateResult{Check: check, Reason: reason, Severity: severity}
}
