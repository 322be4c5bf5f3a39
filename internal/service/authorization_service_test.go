package service

import (
	"context"
	"testing"
	"time"

	"tradegate/internal/domain"
	"tradegate/internal/execution"
	"tradegate/internal/notify"
	"tradegate/internal/trust"
)

// engineStore is an in-memory stand-in for the persisted engine state.
type engineStore struct {
	level   domain.TrustLevel
	paused  bool
	limits  domain.TradingLimits
	trades  []domain.TradeRecord
	history []domain.ExecutionRecord
}

func newEngineStore() *engineStore {
	limits := domain.DefaultLimits()
	limits.AllowedHours = domain.HourWindow{Start: 0, End: 24}
	return &engineStore{level: domain.TrustLevelAutopilot, limits: limits}
}

func (s *engineStore) TrustLevel(ctx context.Context) domain.TrustLevel { return s.level }

func (s *engineStore) SetTrustLevel(ctx context.Context, level domain.TrustLevel) error {
	s.level = level
	return nil
}

func (s *engineStore) Paused(ctx context.Context) bool { return s.paused }

func (s *engineStore) SetPaused(ctx context.Context, paused bool) error {
	s.paused = paused
	return nil
}

func (s *engineStore) Limits(ctx context.Context) domain.TradingLimits { return s.limits }

func (s *engineStore) SetLimits(ctx context.Context, limits domain.TradingLimits) error {
	s.limits = limits
	return nil
}

func (s *engineStore) Trades(ctx context.Context) []domain.TradeRecord { return s.trades }

func (s *engineStore) AppendTrade(ctx context.Context, trade domain.TradeRecord) error {
	s.trades = append(s.trades, trade)
	return nil
}

func (s *engineStore) History(ctx context.Context) []domain.ExecutionRecord { return s.history }

func (s *engineStore) SetHistory(ctx context.Context, records []domain.ExecutionRecord) error {
	s.history = records
	return nil
}

type mockAuditTrail struct {
	types  []domain.AuditEventType
	events []domain.AuditEvent
}

func (m *mockAuditTrail) Append(ctx context.Context, eventType domain.AuditEventType, payload any) error {
	m.types = append(m.types, eventType)
	return nil
}

func (m *mockAuditTrail) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	return m.events, nil
}

type mockExecRepo struct {
	inserted []domain.ExecutionRecord
	undone   []string
}

func (m *mockExecRepo) Insert(ctx context.Context, rec domain.ExecutionRecord) error {
	m.inserted = append(m.inserted, rec)
	return nil
}

func (m *mockExecRepo) MarkUndone(ctx context.Context, id string) error {
	m.undone = append(m.undone, id)
	return nil
}

func (m *mockExecRepo) SyncWindow(ctx context.Context, records []domain.ExecutionRecord) error {
	return nil
}

func (m *mockExecRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]domain.ExecutionRecord, error) {
	return nil, nil
}

type stubEmotion struct {
	read domain.EmotionalRead
}

func (s *stubEmotion) Current(ctx context.Context) domain.EmotionalRead { return s.read }

type authFixture struct {
	svc   *AuthorizationService
	store *engineStore
	repo  *mockExecRepo
	audit *mockAuditTrail
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := newEngineStore()
	audit := &mockAuditTrail{}
	repo := &mockExecRepo{}
	dispatcher := notify.NewDispatcher()

	manager := trust.NewManager(testTracer, store, audit, dispatcher)
	recorder := execution.NewRecorder(testTracer, repo, store, audit, dispatcher, execution.DefaultUndoWindow)
	gate := trust.NewGate(testTracer, manager, recorder, &stubEmotion{read: domain.EmotionalRead{State: domain.EmotionNeutral}}, trust.DefaultSafetyConfig())

	svc := NewAuthorizationService(testTracer, manager, gate, recorder, store, audit)
	return &authFixture{svc: svc, store: store, repo: repo, audit: audit}
}

func buyIntent() domain.TradeIntent {
	return domain.TradeIntent{Symbol: "AAPL", Action: domain.ActionBuy, Quantity: 2, Price: 100, Confidence: 85}
}

func TestAuthorizationService_ExecuteRecordsAllowedTrade(t *testing.T) {
	f := newAuthFixture(t)

	rec, result, err := f.svc.Execute(context.Background(), buyIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Allowed {
		t.Fatalf("denied at %q: %s", result.Check, result.Reason)
	}
	if rec.ID == "" || !rec.CanUndo {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(f.repo.inserted) != 1 {
		t.Errorf("expected one persisted execution, got %d", len(f.repo.inserted))
	}
	if len(f.audit.types) != 1 || f.audit.types[0] != domain.AuditTradeExecuted {
		t.Errorf("audit types = %v", f.audit.types)
	}
}

func TestAuthorizationService_ExecuteDenialIsNotAnError(t *testing.T) {
	f := newAuthFixture(t)
	intent := buyIntent()
	intent.Quantity = 50 // $5000 against the $1000 cap

	rec, result, err := f.svc.Execute(context.Background(), intent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Allowed || result.Check != "position_value" {
		t.Fatalf("result = %+v, want position_value denial", result)
	}
	if rec.ID != "" {
		t.Error("denied intents must not produce execution records")
	}
	if len(f.repo.inserted) != 0 {
		t.Error("denied intents must not be persisted")
	}
	if len(f.audit.types) != 1 || f.audit.types[0] != domain.AuditTradeRejected {
		t.Errorf("audit types = %v", f.audit.types)
	}
}

func TestAuthorizationService_ExecuteValidatesIntent(t *testing.T) {
	f := newAuthFixture(t)

	bad := []domain.TradeIntent{
		{Action: domain.ActionBuy, Quantity: 1, Price: 1},
		{Symbol: "AAPL", Action: "hold", Quantity: 1, Price: 1},
		{Symbol: "AAPL", Action: domain.ActionBuy, Quantity: 0, Price: 1},
		{Symbol: "AAPL", Action: domain.ActionBuy, Quantity: 1, Price: -5},
	}
	for _, intent := range bad {
		if _, _, err := f.svc.Execute(context.Background(), intent); err == nil {
			t.Errorf("expected validation error for %+v", intent)
		}
	}
	if len(f.audit.types) != 0 {
		t.Error("invalid intents never reach the gate or the audit trail")
	}
}

func TestAuthorizationService_AuthorizeIsDryRun(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.svc.Authorize(context.Background(), buyIntent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Allowed {
		t.Fatalf("denied at %q: %s", result.Check, result.Reason)
	}
	if len(f.repo.inserted) != 0 || len(f.audit.types) != 0 {
		t.Error("a dry run must not record or audit anything")
	}
}

func TestAuthorizationService_UndoRoundTrip(t *testing.T) {
	f := newAuthFixture(t)

	rec, _, err := f.svc.Execute(context.Background(), buyIntent())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	undone, err := f.svc.Undo(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !undone.Undone {
		t.Error("record should be marked undone")
	}
	if len(f.repo.undone) != 1 || f.repo.undone[0] != rec.ID {
		t.Errorf("undo not persisted: %v", f.repo.undone)
	}

	stats := f.svc.Stats(context.Background(), false)
	if stats.Trades != 0 {
		t.Errorf("Trades = %d, want 0 excluding undone", stats.Trades)
	}
}

func TestAuthorizationService_RecordOutcomeAppendsAndNudges(t *testing.T) {
	f := newAuthFixture(t)

	nudges := 0
	f.svc.SetOutcomeHook(func() { nudges++ })

	err := f.svc.RecordOutcome(context.Background(), domain.TradeRecord{
		Symbol:  "AAPL",
		Outcome: domain.OutcomeLoss,
		PnL:     -40,
	})
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if len(f.store.trades) != 1 {
		t.Fatalf("trades = %d", len(f.store.trades))
	}
	if f.store.trades[0].Timestamp.IsZero() {
		t.Error("missing timestamps should be stamped")
	}
	if nudges != 1 {
		t.Errorf("outcome hook fired %d times, want 1", nudges)
	}
}

func TestAuthorizationService_RecordOutcomeValidates(t *testing.T) {
	f := newAuthFixture(t)

	if err := f.svc.RecordOutcome(context.Background(), domain.TradeRecord{Outcome: domain.OutcomeWin}); err == nil {
		t.Error("expected error for missing symbol")
	}
	if err := f.svc.RecordOutcome(context.Background(), domain.TradeRecord{Symbol: "AAPL", Outcome: "draw"}); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestAuthorizationService_TrustPassthroughs(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	status, err := f.svc.RequestLevel(ctx, domain.TrustLevelConfirm)
	if err != nil {
		t.Fatalf("RequestLevel: %v", err)
	}
	if status.Level != domain.TrustLevelConfirm {
		t.Errorf("level = %s", status.Level)
	}

	if _, err := f.svc.RequestLevel(ctx, domain.TrustLevelTrust); err != nil {
		t.Fatalf("RequestLevel: %v", err)
	}
	status, err = f.svc.ConfirmLevel(ctx)
	if err != nil {
		t.Fatalf("ConfirmLevel: %v", err)
	}
	if status.Level != domain.TrustLevelTrust {
		t.Errorf("level = %s after confirm", status.Level)
	}

	if err := f.svc.SetPaused(ctx, true); err != nil {
		t.Fatalf("SetPaused: %v", err)
	}
	if !f.svc.Status(ctx).Paused {
		t.Error("status should show paused")
	}

	f.svc.SetEmergencyStop(ctx, true)
	if _, result, _ := f.svc.Execute(ctx, buyIntent()); result.Check != "emergency_stop" {
		t.Errorf("check = %q, want emergency_stop", result.Check)
	}
}

func TestAuthorizationService_UpdateLimitsFlowsToGate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	limits := f.svc.Limits(ctx)
	limits.MaxPositionValue = 10000
	if _, err := f.svc.UpdateLimits(ctx, limits); err != nil {
		t.Fatalf("UpdateLimits: %v", err)
	}

	intent := buyIntent()
	intent.Quantity = 50
	_, result, err := f.svc.Execute(ctx, intent)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Allowed {
		t.Errorf("denied at %q after raising the cap: %s", result.Check, result.Reason)
	}
}
