package trust

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// ErrNoPending is returned when there is no elevation waiting to be confirmed.
var ErrNoPending = errors.New("no pending trust change")

// Store is the slice of persisted engine state the manager reads and writes.
type Store interface {
	TrustLevel(ctx context.Context) domain.TrustLevel
	SetTrustLevel(ctx context.Context, level domain.TrustLevel) error
	Paused(ctx context.Context) bool
	SetPaused(ctx context.Context, paused bool) error
	Limits(ctx context.Context) domain.TradingLimits
	SetLimits(ctx context.Context, limits domain.TradingLimits) error
}

// Auditor appends events to the compliance trail. Append failures must not
// block the underlying operation.
type Auditor interface {
	Append(ctx context.Context, eventType domain.AuditEventType, payload any) error
}

// Notifier publishes engine events to whoever is listening.
type Notifier interface {
	TrustLevelChanged(from, to domain.TrustLevel)
	AdvisoryToast(severity domain.Severity, message string)
}

// Manager is the trust-level state machine. Downgrades commit immediately;
// any move into an auto-executing level parks as a pending confirmation until
// the user explicitly confirms it. The manager also owns the pause flag and
// the emergency stop latch.
type Manager struct {
	tracer   trace.Tracer
	store    Store
	audit    Auditor
	notifier Notifier
	now      func() time.Time

	mu            sync.Mutex
	pending       *domain.PendingConfirmation
	emergencyStop bool
}

func NewManager(tracer trace.Tracer, store Store, audit Auditor, notifier Notifier) *Manager {
	return &Manager{
		tracer:   tracer,
		store:    store,
		audit:    audit,
		notifier: notifier,
		now:      time.Now,
	}
}

// Status snapshots the whole state machine.
func (m *Manager) Status(ctx context.Context) domain.TrustStatus {
	ctx, span := m.tracer.Start(ctx, "trust.status")
	defer span.End()

	m.mu.Lock()
	pending := m.pending
	stop := m.emergencyStop
	m.mu.Unlock()

	level := m.store.TrustLevel(ctx)
	return domain.TrustStatus{
		Level:         level,
		AutoExecute:   level.AutoExecute(),
		Paused:        m.store.Paused(ctx),
		EmergencyStop: stop,
		Pending:       pending,
	}
}

// RequestLevel asks to move the autonomy level. Requests for off or confirm
// commit immediately; requests for trust or autopilot return a pending
// confirmation and leave the level untouched. A new request replaces any
// pending one, and requesting the current level clears it.
func (m *Manager) RequestLevel(ctx context.Context, target domain.TrustLevel) (domain.TrustStatus, error) {
	ctx, span := m.tracer.Start(ctx, "trust.request-level")
	defer span.End()

	if !target.IsValid() {
		return m.Status(ctx), fmt.Errorf("unknown trust level %q", target)
	}

	current := m.store.TrustLevel(ctx)
	if target == current {
		m.setPending(nil)
		return m.Status(ctx), nil
	}
	if target.AutoExecute() {
		m.setPending(&domain.PendingConfirmation{
			Target:      target,
			Message:     confirmationMessage(target),
			RequestedAt: m.now(),
		})
		return m.Status(ctx), nil
	}
	return m.commit(ctx, current, target)
}

// Confirm commits the pending elevation.
func (m *Manager) Confirm(ctx context.Context) (domain.TrustStatus, error) {
	ctx, span := m.tracer.Start(ctx, "trust.confirm")
	defer span.End()

	m.mu.Lock()
	pending := m.pending
	m.mu.Unlock()
	if pending == nil {
		return m.Status(ctx), ErrNoPending
	}
	return m.commit(ctx, m.store.TrustLevel(ctx), pending.Target)
}

// Cancel discards the pending elevation, if any.
func (m *Manager) Cancel(ctx context.Context) domain.TrustStatus {
	ctx, span := m.tracer.Start(ctx, "trust.cancel")
	defer span.End()

	m.setPending(nil)
	return m.Status(ctx)
}

func (m *Manager) commit(ctx context.Context, from, to domain.TrustLevel) (domain.TrustStatus, error) {
	if err := m.store.SetTrustLevel(ctx, to); err != nil {
		return m.Status(ctx), fmt.Errorf("persist trust level: %w", err)
	}
	m.setPending(nil)

	if err := m.audit.Append(ctx, domain.AuditTrustLevelChanged, map[string]any{
		"from":         from,
		"to":           to,
		"auto_execute": to.AutoExecute(),
	}); err != nil {
		log.Printf("trust: audit trust change: %v", err)
	}
	m.notifier.TrustLevelChanged(from, to)
	return m.Status(ctx), nil
}

// SetPaused flips the pause interlock. Paused blocks auto-execution without
// touching the trust level.
func (m *Manager) SetPaused(ctx context.Context, paused bool) error {
	ctx, span := m.tracer.Start(ctx, "trust.set-paused")
	defer span.End()

	if err := m.store.SetPaused(ctx, paused); err != nil {
		return fmt.Errorf("persist pause flag: %w", err)
	}
	eventType := domain.AuditTradingResumed
	if paused {
		eventType = domain.AuditTradingPaused
	}
	if err := m.audit.Append(ctx, eventType, nil); err != nil {
		log.Printf("trust: audit pause change: %v", err)
	}
	return nil
}

// SetEmergencyStop latches or releases the kill switch. The latch is
// deliberately in-memory: a restart starts clean and the operator re-arms it
// if still needed.
func (m *Manager) SetEmergencyStop(ctx context.Context, active bool) {
	ctx, span := m.tracer.Start(ctx, "trust.set-emergency-stop")
	defer span.End()

	m.mu.Lock()
	m.emergencyStop = active
	m.mu.Unlock()

	if err := m.audit.Append(ctx, domain.AuditEmergencyStop, map[string]bool{"active": active}); err != nil {
		log.Printf("trust: audit emergency stop: %v", err)
	}
	if active {
		m.notifier.AdvisoryToast(domain.SeverityCritical, "Emergency stop engaged. All trading halted.")
	}
}

// EmergencyStop reports the latch state.
func (m *Manager) EmergencyStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emergencyStop
}

// Limits returns the effective trading limits.
func (m *Manager) Limits(ctx context.Context) domain.TradingLimits {
	return m.store.Limits(ctx)
}

// UpdateLimits validates and persists new caps.
func (m *Manager) UpdateLimits(ctx context.Context, limits domain.TradingLimits) (domain.TradingLimits, error) {
	ctx, span := m.tracer.Start(ctx, "trust.update-limits")
	defer span.End()

	if limits.MaxPositionValue < 0 || limits.MaxDailyTrades < 0 || limits.MaxDailyLoss < 0 {
		return m.store.Limits(ctx), fmt.Errorf("limits cannot be negative")
	}
	if !limits.AllowedHours.IsValid() {
		limits.AllowedHours = domain.DefaultLimits().AllowedHours
	}
	if err := m.store.SetLimits(ctx, limits); err != nil {
		return m.store.Limits(ctx), fmt.Errorf("persist limits: %w", err)
	}
	if err := m.audit.Append(ctx, domain.AuditLimitsUpdated, limits); err != nil {
		log.Printf("trust: audit limits update: %v", err)
	}
	return limits, nil
}

func (m *Manager) setPending(p *domain.PendingConfirmation) {
	m.mu.Lock()
	m.pending = p
	m.mu.Unlock()
}

func confirmationMessage(target domain.TrustLevel) string {
	switch target {
	case domain.TrustLevelAutopilot:
		return "Autopilot lets the engine trade the full plan without asking. Every limit stays enforced. Confirm to enable."
	default:
		return "Trust mode lets the engine execute approved signals without a per-trade confirmation. Confirm to enable."
	}
}
