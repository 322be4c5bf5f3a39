package notify

import (
	"testing"
	"time"

	"tradegate/internal/domain"
)

type chanListener struct {
	changes chan [2]domain.TrustLevel
	trades  chan domain.ExecutionRecord
	undos   chan domain.ExecutionRecord
	toasts  chan string
}

func newChanListener() *chanListener {
	return &chanListener{
		changes: make(chan [2]domain.TrustLevel, 4),
		trades:  make(chan domain.ExecutionRecord, 4),
		undos:   make(chan domain.ExecutionRecord, 4),
		toasts:  make(chan string, 4),
	}
}

func (c *chanListener) OnTrustLevelChanged(from, to domain.TrustLevel, autoExecute bool) {
	c.changes <- [2]domain.TrustLevel{from, to}
}

func (c *chanListener) OnTradeExecuted(rec domain.ExecutionRecord) { c.trades <- rec }

func (c *chanListener) OnUndoRequested(rec domain.ExecutionRecord) { c.undos <- rec }

func (c *chanListener) OnAdvisoryToast(severity domain.Severity, message string) {
	c.toasts <- message
}

type panicListener struct{}

func (panicListener) OnTrustLevelChanged(from, to domain.TrustLevel, autoExecute bool) {
	panic("boom")
}
func (panicListener) OnTradeExecuted(rec domain.ExecutionRecord) { panic("boom") }
func (panicListener) OnUndoRequested(rec domain.ExecutionRecord) { panic("boom") }
func (panicListener) OnAdvisoryToast(severity domain.Severity, message string) {
	panic("boom")
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
		panic("unreachable")
	}
}

func TestDispatcherFansOut(t *testing.T) {
	d := NewDispatcher()
	first := newChanListener()
	second := newChanListener()
	d.Register(first)
	d.Register(second)

	d.TrustLevelChanged(domain.TrustLevelConfirm, domain.TrustLevelTrust)
	for _, l := range []*chanListener{first, second} {
		got := waitFor(t, l.changes)
		if got != [2]domain.TrustLevel{domain.TrustLevelConfirm, domain.TrustLevelTrust} {
			t.Errorf("change = %v", got)
		}
	}

	rec := domain.ExecutionRecord{ID: "EXEC-001", Symbol: "AAPL"}
	d.TradeExecuted(rec)
	if got := waitFor(t, first.trades); got.ID != "EXEC-001" {
		t.Errorf("trade = %+v", got)
	}

	d.UndoRequested(rec)
	if got := waitFor(t, first.undos); got.Symbol != "AAPL" {
		t.Errorf("undo = %+v", got)
	}

	d.AdvisoryToast(domain.SeverityHigh, "take a walk")
	if got := waitFor(t, first.toasts); got != "take a walk" {
		t.Errorf("toast = %q", got)
	}
}

func TestDispatcherSurvivesPanickingListener(t *testing.T) {
	d := NewDispatcher()
	d.Register(panicListener{})
	healthy := newChanListener()
	d.Register(healthy)

	d.AdvisoryToast(domain.SeverityLow, "still here")
	if got := waitFor(t, healthy.toasts); got != "still here" {
		t.Errorf("toast = %q", got)
	}
}

func TestDispatcherNoListeners(t *testing.T) {
	d := NewDispatcher()
	// Nothing registered; dispatch must not block or panic.
	d.TrustLevelChanged(domain.TrustLevelOff, domain.TrustLevelConfirm)
	d.AdvisoryToast(domain.SeverityLow, "quiet")
}
