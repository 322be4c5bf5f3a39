package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tradegate/internal/domain"
	"tradegate/internal/execution"
	"tradegate/internal/trust"

	"go.opentelemetry.io/otel/trace"
)

// TradeSink receives closed trade outcomes.
type TradeSink interface {
	AppendTrade(ctx context.Context, trade domain.TradeRecord) error
}

// AuditTrail is the append-and-read side of the compliance log.
type AuditTrail interface {
	Append(ctx context.Context, eventType domain.AuditEventType, payload any) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}

// AuthorizationService fronts the trust machinery: every execution request
// passes through the gate, every allowed one lands in the recorder, and
// every outcome feeds back into the emotional read.
type AuthorizationService struct {
	tracer    trace.Tracer
	manager   *trust.Manager
	gate      *trust.Gate
	recorder  *execution.Recorder
	trades    TradeSink
	audit     AuditTrail
	onOutcome func()
	now       func() time.Time
}

func NewAuthorizationService(
	tracer trace.Tracer,
	manager *trust.Manager,
	gate *trust.Gate,
	recorder *execution.Recorder,
	trades TradeSink,
	audit AuditTrail,
) *AuthorizationService {
	return &AuthorizationService{
		tracer:   tracer,
		manager:  manager,
		gate:     gate,
		recorder: recorder,
		trades:   trades,
		audit:    audit,
		now:      time.Now,
	}
}

// SetOutcomeHook registers a callback fired after each recorded outcome.
// The refresh debouncer hangs off this.
func (s *AuthorizationService) SetOutcomeHook(hook func()) {
	s.onOutcome = hook
}

// Authorize dry-runs the gate without executing anything.
func (s *AuthorizationService) Authorize(ctx context.Context, intent domain.TradeIntent) (domain.GateResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth-service.authorize")
	defer span.End()

	if err := validateIntent(intent); err != nil {
		return domain.GateResult{}, err
	}
	return s.gate.Authorize(ctx, intent), nil
}

// Execute runs the gate and, when allowed, records the execution. A denial
// is not an error: the result carries the check that refused and why.
func (s *AuthorizationService) Execute(ctx context.Context, intent domain.TradeIntent) (domain.ExecutionRecord, domain.GateResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth-service.execute")
	defer span.End()

	if err := validateIntent(intent); err != nil {
		return domain.ExecutionRecord{}, domain.GateResult{}, err
	}

	result := s.gate.Authorize(ctx, intent)
	if !result.Allowed {
		if err := s.audit.Append(ctx, domain.AuditTradeRejected, map[string]any{
			"intent": intent,
			"check":  result.Check,
			"reason": result.Reason,
		}); err != nil {
			log.Printf("auth-service: audit rejection: %v", err)
		}
		return domain.ExecutionRecord{}, result, nil
	}

	rec, err := s.recorder.Record(ctx, intent)
	if err != nil {
		return domain.ExecutionRecord{}, result, fmt.Errorf("record execution: %w", err)
	}
	return rec, result, nil
}

// Undo reverses a recorded execution while its window is open.
func (s *AuthorizationService) Undo(ctx context.Context, id string) (domain.ExecutionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "auth-service.undo")
	defer span.End()

	return s.recorder.Undo(ctx, id)
}

// UndoLast reverses the most recent still-undoable execution.
func (s *AuthorizationService) UndoLast(ctx context.Context) (domain.ExecutionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "auth-service.undo-last")
	defer span.End()

	return s.recorder.UndoLast(ctx)
}

// RecordOutcome ingests a closed trade into the outcome stream and nudges
// the emotional read.
func (s *AuthorizationService) RecordOutcome(ctx context.Context, trade domain.TradeRecord) error {
	ctx, span := s.tracer.Start(ctx, "auth-service.record-outcome")
	defer span.End()

	if trade.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if trade.Outcome != domain.OutcomeWin && trade.Outcome != domain.OutcomeLoss {
		return fmt.Errorf("unknown outcome %q", trade.Outcome)
	}
	if trade.Timestamp.IsZero() {
		trade.Timestamp = s.now()
	}
	if err := s.trades.AppendTrade(ctx, trade); err != nil {
		return fmt.Errorf("append trade: %w", err)
	}
	if s.onOutcome != nil {
		s.onOutcome()
	}
	return nil
}

// Recent returns the latest execution records.
func (s *AuthorizationService) Recent(limit int) []domain.ExecutionRecord {
	return s.recorder.Recent(limit)
}

// Stats aggregates the current trading day.
func (s *AuthorizationService) Stats(ctx context.Context, includeUndone bool) domain.DayStats {
	return s.recorder.Stats(ctx, includeUndone)
}

// Status snapshots the trust state machine.
func (s *AuthorizationService) Status(ctx context.Context) domain.TrustStatus {
	return s.manager.Status(ctx)
}

// RequestLevel asks to move the autonomy level.
func (s *AuthorizationService) RequestLevel(ctx context.Context, target domain.TrustLevel) (domain.TrustStatus, error) {
	return s.manager.RequestLevel(ctx, target)
}

// ConfirmLevel commits a pending elevation.
func (s *AuthorizationService) ConfirmLevel(ctx context.Context) (domain.TrustStatus, error) {
	return s.manager.Confirm(ctx)
}

// CancelLevel discards a pending elevation.
func (s *AuthorizationService) CancelLevel(ctx context.Context) domain.TrustStatus {
	return s.manager.Cancel(ctx)
}

// SetPaused flips the pause interlock.
func (s *AuthorizationService) SetPaused(ctx context.Context, paused bool) error {
	return s.manager.SetPaused(ctx, paused)
}

// SetEmergencyStop latches or releases the kill switch.
func (s *AuthorizationService) SetEmergencyStop(ctx context.Context, active bool) {
	s.manager.SetEmergencyStop(ctx, active)
}

// Limits returns the effective trading limits.
func (s *AuthorizationService) Limits(ctx context.Context) domain.TradingLimits {
	return s.manager.Limits(ctx)
}

// UpdateLimits validates and persists new caps.
func (s *AuthorizationService) UpdateLimits(ctx context.Context, limits domain.TradingLimits) (domain.TradingLimits, error) {
	return s.manager.UpdateLimits(ctx, limits)
}

// AuditLog returns the most recent compliance events.
func (s *AuthorizationService) AuditLog(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	ctx, span := s.tracer.Start(ctx, "auth-service.audit-log")
	defer span.End()

	return s.audit.Recent(ctx, limit)
}

func validateIntent(intent domain.TradeIntent) error {
	if intent.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if intent.Action != domain.ActionBuy && intent.Action != domain.ActionSell {
		return fmt.Errorf("unknown action %q", intent.Action)
	}
	if intent.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if intent.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}
