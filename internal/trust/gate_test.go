package trust

import (
	"context"
	"strings"
	"testing"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type fakeStats struct {
	stats domain.DayStats
}

func (f *fakeStats) Stats(ctx context.Context, includeUndone bool) domain.DayStats {
	return f.stats
}

type fakeEmotion struct {
	read domain.EmotionalRead
}

func (f *fakeEmotion) Current(ctx context.Context) domain.EmotionalRead { return f.read }

type gateFixture struct {
	gate     *Gate
	manager  *Manager
	store    *fakeStore
	stats    *fakeStats
	emotion  *fakeEmotion
	notifier *fakeNotifier
}

func newTestGate(t *testing.T) *gateFixture {
	t.Helper()
	store := newFakeStore()
	store.level = domain.TrustLevelAutopilot
	audit := &fakeAuditor{}
	notifier := &fakeNotifier{}
	stats := &fakeStats{}
	emotion := &fakeEmotion{read: domain.EmotionalRead{State: domain.EmotionNeutral}}
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	manager := NewManager(tracer, store, audit, notifier)
	gate := NewGate(tracer, manager, stats, emotion, DefaultSafetyConfig())
	gate.now = func() time.Time { return time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC) }
	return &gateFixture{gate: gate, manager: manager, store: store, stats: stats, emotion: emotion, notifier: notifier}
}

func cleanIntent() domain.TradeIntent {
	return domain.TradeIntent{Symbol: "AAPL", Action: domain.ActionBuy, Quantity: 2, Price: 100, Confidence: 85}
}

func TestAuthorizeCleanIntentAllowed(t *testing.T) {
	f := newTestGate(t)

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if !res.Allowed {
		t.Fatalf("expected allowance, got denial at %q: %s", res.Check, res.Reason)
	}
	if res.Risk == nil {
		t.Fatal("allowance should carry a risk assessment")
	}
	if res.Risk.Band != domain.RiskLow {
		t.Errorf("risk band = %s, want low", res.Risk.Band)
	}
}

func TestAuthorizeEmergencyStopDeniesFirst(t *testing.T) {
	f := newTestGate(t)
	f.manager.SetEmergencyStop(context.Background(), true)
	// Pile on other violations; the stop must still win.
	f.store.paused = true
	f.stats.stats = domain.DayStats{Trades: 99, PnL: -9999}

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed {
		t.Fatal("expected denial")
	}
	if res.Check != "emergency_stop" {
		t.Errorf("check = %q, want emergency_stop", res.Check)
	}
	if res.Severity != domain.SeverityCritical {
		t.Errorf("severity = %s, want critical", res.Severity)
	}
}

func TestAuthorizePausedDenies(t *testing.T) {
	f := newTestGate(t)
	f.store.paused = true

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "paused" {
		t.Errorf("got %+v, want paused denial", res)
	}
	if res.Severity != domain.SeverityHigh {
		t.Errorf("severity = %s, want high", res.Severity)
	}
}

func TestAuthorizeConfirmLevelDenies(t *testing.T) {
	f := newTestGate(t)
	f.store.level = domain.TrustLevelConfirm

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "trust_level" {
		t.Errorf("got %+v, want trust_level denial", res)
	}
	if !strings.Contains(res.Reason, "confirm") {
		t.Errorf("reason should name the level: %s", res.Reason)
	}
}

func TestAuthorizeSafetyHaltDenies(t *testing.T) {
	f := newTestGate(t)
	f.stats.stats = domain.DayStats{ConsecutiveLosses: 5}

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "safety" {
		t.Errorf("got %+v, want safety denial", res)
	}
	if res.Severity != domain.SeverityHigh {
		t.Errorf("severity = %s, want high", res.Severity)
	}
}

func TestAuthorizePositionValueDenies(t *testing.T) {
	f := newTestGate(t)
	intent := cleanIntent()
	intent.Quantity = 50 // $5000 against the $1000 default cap

	res := f.gate.Authorize(context.Background(), intent)
	if res.Allowed || res.Check != "position_value" {
		t.Fatalf("got %+v, want position_value denial", res)
	}
	if !strings.Contains(res.Reason, "$5000.00") || !strings.Contains(res.Reason, "$1000.00") {
		t.Errorf("reason should cite both values: %s", res.Reason)
	}
}

func TestAuthorizeDailyTradeLimitDenies(t *testing.T) {
	f := newTestGate(t)
	f.stats.stats = domain.DayStats{Trades: 10}

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "daily_trades" {
		t.Errorf("got %+v, want daily_trades denial", res)
	}
}

func TestAuthorizeDailyLossLimitDenies(t *testing.T) {
	f := newTestGate(t)
	f.stats.stats = domain.DayStats{PnL: -500}

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "daily_loss" {
		t.Errorf("got %+v, want daily_loss denial", res)
	}
}

func TestAuthorizeConfidenceFloor(t *testing.T) {
	f := newTestGate(t)
	intent := cleanIntent()
	intent.Confidence = 65

	res := f.gate.Authorize(context.Background(), intent)
	if res.Allowed || res.Check != "confidence" {
		t.Errorf("got %+v, want confidence denial", res)
	}

	// Dropping the high-confidence requirement lets the same intent through.
	f.store.limits.RequireHighConfidence = false
	res = f.gate.Authorize(context.Background(), intent)
	if !res.Allowed {
		t.Errorf("expected allowance without the confidence floor, got %+v", res)
	}
}

func TestAuthorizeSymbolAllowlist(t *testing.T) {
	f := newTestGate(t)
	f.store.limits.AllowedSymbols = []string{"SPY", "QQQ"}

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "symbol" {
		t.Errorf("got %+v, want symbol denial", res)
	}

	intent := cleanIntent()
	intent.Symbol = "SPY"
	if res := f.gate.Authorize(context.Background(), intent); !res.Allowed {
		t.Errorf("allowlisted symbol should pass, got %+v", res)
	}
}

func TestAuthorizeTradingHours(t *testing.T) {
	f := newTestGate(t)
	f.gate.now = func() time.Time { return time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC) }

	res := f.gate.Authorize(context.Background(), cleanIntent())
	if res.Allowed || res.Check != "trading_hours" {
		t.Errorf("got %+v, want trading_hours denial", res)
	}
}

func TestAuthorizeExtremeRiskDenies(t *testing.T) {
	f := newTestGate(t)
	// Near the value cap, sub-70 confidence, and a loss streak stack to an
	// extreme grade while every individual cap still passes.
	f.stats.stats = domain.DayStats{ConsecutiveLosses: 3, Trades: 3}
	f.store.limits.RequireHighConfidence = false
	intent := cleanIntent()
	intent.Quantity = 9 // $900, within the cap but near it
	intent.Confidence = 45

	res := f.gate.Authorize(context.Background(), intent)
	if res.Allowed || res.Check != "risk" {
		t.Fatalf("got %+v, want risk denial", res)
	}
	if res.Risk == nil || res.Risk.Band != domain.RiskExtreme {
		t.Errorf("risk = %+v, want extreme band", res.Risk)
	}
	if res.Severity != domain.SeverityHigh {
		t.Errorf("severity = %s, want high", res.Severity)
	}
}

func TestAuthorizeOrderPausedBeatsValue(t *testing.T) {
	f := newTestGate(t)
	f.store.paused = true
	intent := cleanIntent()
	intent.Quantity = 50

	res := f.gate.Authorize(context.Background(), intent)
	if res.Check != "paused" {
		t.Errorf("check = %q, want paused to fire before position_value", res.Check)
	}
}
