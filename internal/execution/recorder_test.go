package execution

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type fakeRepo struct {
	inserted  []domain.ExecutionRecord
	undone    []string
	synced    []domain.ExecutionRecord
	listed    []domain.ExecutionRecord
	insertErr error
	listErr   error
}

func (f *fakeRepo) Insert(ctx context.Context, rec domain.ExecutionRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, rec)
	return nil
}

func (f *fakeRepo) MarkUndone(ctx context.Context, id string) error {
	f.undone = append(f.undone, id)
	return nil
}

func (f *fakeRepo) SyncWindow(ctx context.Context, records []domain.ExecutionRecord) error {
	f.synced = append(f.synced, records...)
	return nil
}

func (f *fakeRepo) ListSince(ctx context.Context, since time.Time, limit int) ([]domain.ExecutionRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

type fakeState struct {
	trades    []domain.TradeRecord
	history   []domain.ExecutionRecord
	mirrored  [][]domain.ExecutionRecord
	mirrorErr error
}

func (f *fakeState) Trades(ctx context.Context) []domain.TradeRecord { return f.trades }

func (f *fakeState) History(ctx context.Context) []domain.ExecutionRecord { return f.history }

func (f *fakeState) SetHistory(ctx context.Context, records []domain.ExecutionRecord) error {
	if f.mirrorErr != nil {
		return f.mirrorErr
	}
	f.mirrored = append(f.mirrored, records)
	return nil
}

type fakeAuditor struct {
	types []domain.AuditEventType
}

func (f *fakeAuditor) Append(ctx context.Context, eventType domain.AuditEventType, payload any) error {
	f.types = append(f.types, eventType)
	return nil
}

type fakeNotifier struct {
	executed []domain.ExecutionRecord
	undone   []domain.ExecutionRecord
}

func (f *fakeNotifier) TradeExecuted(rec domain.ExecutionRecord) {
	f.executed = append(f.executed, rec)
}

func (f *fakeNotifier) UndoRequested(rec domain.ExecutionRecord) {
	f.undone = append(f.undone, rec)
}

type recorderFixture struct {
	recorder *Recorder
	repo     *fakeRepo
	state    *fakeState
	audit    *fakeAuditor
	notifier *fakeNotifier
	clock    *time.Time
}

var recorderStart = time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

func newTestRecorder(t *testing.T) *recorderFixture {
	t.Helper()
	repo := &fakeRepo{}
	state := &fakeState{}
	audit := &fakeAuditor{}
	notifier := &fakeNotifier{}
	tracer := trace.NewNoopTracerProvider().Tracer("test")

	clock := recorderStart
	r := NewRecorder(tracer, repo, state, audit, notifier, DefaultUndoWindow)
	r.now = func() time.Time { return clock }
	seq := 0
	r.newID = func() string {
		seq++
		return fmt.Sprintf("EXEC-%03d", seq)
	}
	return &recorderFixture{recorder: r, repo: repo, state: state, audit: audit, notifier: notifier, clock: &clock}
}

func intent(symbol string, qty, price float64) domain.TradeIntent {
	return domain.TradeIntent{Symbol: symbol, Action: domain.ActionBuy, Quantity: qty, Price: price, Confidence: 80}
}

func TestRecordCapturesExecution(t *testing.T) {
	f := newTestRecorder(t)

	rec, err := f.recorder.Record(context.Background(), intent("AAPL", 2, 100))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ID != "EXEC-001" {
		t.Errorf("ID = %q", rec.ID)
	}
	if !rec.CanUndo || rec.Undone {
		t.Errorf("new record should be undoable: %+v", rec)
	}
	if want := recorderStart.Add(DefaultUndoWindow); !rec.UndoDeadline.Equal(want) {
		t.Errorf("UndoDeadline = %v, want %v", rec.UndoDeadline, want)
	}
	if len(f.repo.inserted) != 1 || f.repo.inserted[0].ID != rec.ID {
		t.Errorf("record not persisted: %+v", f.repo.inserted)
	}
	if len(f.audit.types) != 1 || f.audit.types[0] != domain.AuditTradeExecuted {
		t.Errorf("audit types = %v", f.audit.types)
	}
	if len(f.notifier.executed) != 1 {
		t.Errorf("expected one executed notification, got %d", len(f.notifier.executed))
	}
	if n := len(f.state.mirrored); n != 1 || len(f.state.mirrored[0]) != 1 {
		t.Errorf("window mirror = %+v, want one snapshot with one record", f.state.mirrored)
	}
}

func TestRecordMostRecentFirst(t *testing.T) {
	f := newTestRecorder(t)

	f.recorder.Record(context.Background(), intent("AAPL", 1, 100))
	f.recorder.Record(context.Background(), intent("MSFT", 1, 200))

	recent := f.recorder.Recent(0)
	if len(recent) != 2 {
		t.Fatalf("len = %d", len(recent))
	}
	if recent[0].Symbol != "MSFT" || recent[1].Symbol != "AAPL" {
		t.Errorf("order = %s, %s; want MSFT first", recent[0].Symbol, recent[1].Symbol)
	}
}

func TestRecordBoundsHistory(t *testing.T) {
	f := newTestRecorder(t)

	for i := 0; i < maxRecords+20; i++ {
		f.recorder.Record(context.Background(), intent("AAPL", 1, 100))
	}
	if got := len(f.recorder.Recent(0)); got != maxRecords {
		t.Errorf("history length = %d, want %d", got, maxRecords)
	}
}

func TestUndoWithinWindow(t *testing.T) {
	f := newTestRecorder(t)
	rec, _ := f.recorder.Record(context.Background(), intent("AAPL", 2, 100))

	*f.clock = recorderStart.Add(10 * time.Second)
	undone, err := f.recorder.Undo(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !undone.Undone || undone.CanUndo {
		t.Errorf("flags not flipped: %+v", undone)
	}
	if len(f.repo.undone) != 1 || f.repo.undone[0] != rec.ID {
		t.Errorf("undo not persisted: %v", f.repo.undone)
	}
	if len(f.audit.types) != 2 || f.audit.types[1] != domain.AuditTradeUndone {
		t.Errorf("audit types = %v", f.audit.types)
	}
	if len(f.notifier.undone) != 1 {
		t.Errorf("expected one undo notification, got %d", len(f.notifier.undone))
	}
	last := f.state.mirrored[len(f.state.mirrored)-1]
	if len(last) != 1 || !last[0].Undone {
		t.Errorf("mirror after undo = %+v, want the undone record", last)
	}
}

func TestUndoAfterDeadline(t *testing.T) {
	f := newTestRecorder(t)
	rec, _ := f.recorder.Record(context.Background(), intent("AAPL", 2, 100))

	*f.clock = recorderStart.Add(31 * time.Second)
	if _, err := f.recorder.Undo(context.Background(), rec.ID); !errors.Is(err, ErrUndoExpired) {
		t.Errorf("expected ErrUndoExpired, got %v", err)
	}
	if len(f.repo.undone) != 0 {
		t.Error("expired undo must not touch the repository")
	}
}

func TestUndoTwice(t *testing.T) {
	f := newTestRecorder(t)
	rec, _ := f.recorder.Record(context.Background(), intent("AAPL", 2, 100))

	if _, err := f.recorder.Undo(context.Background(), rec.ID); err != nil {
		t.Fatalf("first Undo: %v", err)
	}
	if _, err := f.recorder.Undo(context.Background(), rec.ID); !errors.Is(err, ErrAlreadyUndone) {
		t.Errorf("expected ErrAlreadyUndone, got %v", err)
	}
}

func TestUndoUnknownID(t *testing.T) {
	f := newTestRecorder(t)

	if _, err := f.recorder.Undo(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUndoLastPicksNewestUndoable(t *testing.T) {
	f := newTestRecorder(t)
	f.recorder.Record(context.Background(), intent("AAPL", 1, 100))
	second, _ := f.recorder.Record(context.Background(), intent("MSFT", 1, 200))

	rec, err := f.recorder.UndoLast(context.Background())
	if err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if rec.ID != second.ID {
		t.Errorf("undid %s, want %s", rec.ID, second.ID)
	}

	// The remaining record is still undoable; the undone one is skipped.
	rec, err = f.recorder.UndoLast(context.Background())
	if err != nil {
		t.Fatalf("second UndoLast: %v", err)
	}
	if rec.Symbol != "AAPL" {
		t.Errorf("undid %s, want AAPL", rec.Symbol)
	}

	if _, err := f.recorder.UndoLast(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with nothing left, got %v", err)
	}
}

func TestExpireOverdue(t *testing.T) {
	f := newTestRecorder(t)
	f.recorder.Record(context.Background(), intent("AAPL", 1, 100))

	*f.clock = recorderStart.Add(20 * time.Second)
	f.recorder.Record(context.Background(), intent("MSFT", 1, 200))

	*f.clock = recorderStart.Add(40 * time.Second)
	expired := f.recorder.ExpireOverdue(context.Background())
	if len(expired) != 1 || expired[0].Symbol != "AAPL" {
		t.Fatalf("expired = %+v, want just AAPL", expired)
	}

	recent := f.recorder.Recent(0)
	if recent[1].CanUndo {
		t.Error("expired record should no longer be undoable")
	}
	if !recent[0].CanUndo {
		t.Error("the younger record is still inside its window")
	}
	if len(f.repo.synced) != 1 || f.repo.synced[0].CanUndo {
		t.Errorf("synced = %+v, want the closed window mirrored to the archive", f.repo.synced)
	}

	// A second sweep finds nothing new.
	if again := f.recorder.ExpireOverdue(context.Background()); len(again) != 0 {
		t.Errorf("second sweep expired %d records", len(again))
	}
}

func TestStatsCountsToday(t *testing.T) {
	f := newTestRecorder(t)
	f.recorder.Record(context.Background(), intent("AAPL", 1, 100))
	rec, _ := f.recorder.Record(context.Background(), intent("MSFT", 1, 200))
	f.recorder.Undo(context.Background(), rec.ID)

	f.state.trades = []domain.TradeRecord{
		{Symbol: "SPY", Outcome: domain.OutcomeWin, PnL: 120, Timestamp: recorderStart.Add(-48 * time.Hour)},
		{Symbol: "AAPL", Outcome: domain.OutcomeWin, PnL: 80, Timestamp: recorderStart.Add(-3 * time.Hour)},
		{Symbol: "MSFT", Outcome: domain.OutcomeLoss, PnL: -30, Timestamp: recorderStart.Add(-2 * time.Hour)},
		{Symbol: "TSLA", Outcome: domain.OutcomeLoss, PnL: -20, Timestamp: recorderStart.Add(-1 * time.Hour)},
	}

	stats := f.recorder.Stats(context.Background(), true)
	if stats.Trades != 2 {
		t.Errorf("Trades = %d, want 2 including the undone one", stats.Trades)
	}
	if stats.PnL != 30 {
		t.Errorf("PnL = %v, want 30 from today's closes only", stats.PnL)
	}
	if stats.ConsecutiveLosses != 2 {
		t.Errorf("ConsecutiveLosses = %d, want 2", stats.ConsecutiveLosses)
	}

	stats = f.recorder.Stats(context.Background(), false)
	if stats.Trades != 1 {
		t.Errorf("Trades = %d, want 1 excluding the undone one", stats.Trades)
	}
}

func TestStatsCountsPersistFailures(t *testing.T) {
	f := newTestRecorder(t)
	f.repo.insertErr = errors.New("pg down")

	f.recorder.Record(context.Background(), intent("AAPL", 1, 100))
	f.recorder.Record(context.Background(), intent("MSFT", 1, 200))

	stats := f.recorder.Stats(context.Background(), true)
	if stats.Errors != 2 {
		t.Errorf("Errors = %d, want 2", stats.Errors)
	}

	// Errors reset with the day.
	*f.clock = recorderStart.Add(24 * time.Hour)
	if stats := f.recorder.Stats(context.Background(), true); stats.Errors != 0 {
		t.Errorf("Errors = %d after rollover, want 0", stats.Errors)
	}
}

func TestHydratePrefersStoreMirror(t *testing.T) {
	f := newTestRecorder(t)
	f.state.history = []domain.ExecutionRecord{
		{ID: "MIRROR-1", Timestamp: recorderStart.Add(-time.Minute)},
	}
	f.repo.listErr = errors.New("pg down")

	if err := f.recorder.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	recent := f.recorder.Recent(0)
	if len(recent) != 1 || recent[0].ID != "MIRROR-1" {
		t.Errorf("recent = %+v, want the mirrored record without touching the archive", recent)
	}
}

func TestHydrateFallsBackToArchive(t *testing.T) {
	f := newTestRecorder(t)
	f.repo.listed = []domain.ExecutionRecord{
		{ID: "OLD-1", Timestamp: recorderStart.Add(-time.Hour), CanUndo: true, UndoDeadline: recorderStart.Add(-time.Hour + DefaultUndoWindow)},
	}

	if err := f.recorder.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	recent := f.recorder.Recent(0)
	if len(recent) != 1 {
		t.Fatalf("len = %d", len(recent))
	}
	if recent[0].CanUndo {
		t.Error("hour-old record should not be undoable after hydration")
	}
}

func TestHydrateSurfacesRepoError(t *testing.T) {
	f := newTestRecorder(t)
	f.repo.listErr = errors.New("pg down")

	if err := f.recorder.Hydrate(context.Background()); err == nil {
		t.Error("expected an error")
	}
}
