package execution

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tradegate/internal/domain"
	"tradegate/internal/persona"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultUndoWindow is how long an execution stays reversible.
	DefaultUndoWindow = 30 * time.Second

	// maxRecords bounds the in-memory execution history.
	maxRecords = 100
)

var (
	ErrNotFound      = errors.New("execution not found")
	ErrUndoExpired   = errors.New("undo window expired")
	ErrAlreadyUndone = errors.New("execution already undone")
)

// Repository is the durable home of execution records.
type Repository interface {
	Insert(ctx context.Context, rec domain.ExecutionRecord) error
	MarkUndone(ctx context.Context, id string) error
	SyncWindow(ctx context.Context, records []domain.ExecutionRecord) error
	ListSince(ctx context.Context, since time.Time, limit int) ([]domain.ExecutionRecord, error)
}

// Store is the slice of persisted engine state the recorder touches: the
// mirrored execution window and the closed-trade outcome stream.
type Store interface {
	Trades(ctx context.Context) []domain.TradeRecord
	History(ctx context.Context) []domain.ExecutionRecord
	SetHistory(ctx context.Context, records []domain.ExecutionRecord) error
}

// Auditor appends events to the compliance trail.
type Auditor interface {
	Append(ctx context.Context, eventType domain.AuditEventType, payload any) error
}

// Notifier publishes execution events.
type Notifier interface {
	TradeExecuted(rec domain.ExecutionRecord)
	UndoRequested(rec domain.ExecutionRecord)
}

// Recorder owns the execution history: every authorized trade lands here,
// stays undoable for the undo window, and is mirrored to Postgres. The
// in-memory list is most-recent-first and bounded.
type Recorder struct {
	tracer   trace.Tracer
	repo     Repository
	store    Store
	audit    Auditor
	notifier Notifier
	window   time.Duration
	now      func() time.Time
	newID    func() string

	mu       sync.Mutex
	records  []domain.ExecutionRecord
	errDay   time.Time
	errCount int
}

func NewRecorder(tracer trace.Tracer, repo Repository, store Store, audit Auditor, notifier Notifier, window time.Duration) *Recorder {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	return &Recorder{
		tracer:   tracer,
		repo:     repo,
		store:    store,
		audit:    audit,
		notifier: notifier,
		window:   window,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
}

// Hydrate reloads the execution window at startup: the store mirror first,
// the archive when the mirror is empty. A failed load leaves the recorder
// empty but usable.
func (r *Recorder) Hydrate(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "recorder.hydrate")
	defer span.End()

	records := r.store.History(ctx)
	if len(records) == 0 {
		since := r.now().Add(-24 * time.Hour)
		archived, err := r.repo.ListSince(ctx, since, maxRecords)
		if err != nil {
			return fmt.Errorf("load executions: %w", err)
		}
		records = archived
	}
	if len(records) > maxRecords {
		records = records[:maxRecords]
	}
	now := r.now()
	for i := range records {
		if !records[i].Undoable(now) {
			records[i].CanUndo = false
		}
	}
	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
	return nil
}

// Record captures an executed intent. The record is immediately undoable
// until its deadline passes.
func (r *Recorder) Record(ctx context.Context, intent domain.TradeIntent) (domain.ExecutionRecord, error) {
	ctx, span := r.tracer.Start(ctx, "recorder.record")
	defer span.End()

	now := r.now()
	rec := domain.ExecutionRecord{
		ID:           r.newID(),
		Timestamp:    now,
		Action:       intent.Action,
		Symbol:       intent.Symbol,
		Quantity:     intent.Quantity,
		Price:        intent.Price,
		Confidence:   intent.Confidence,
		CanUndo:      true,
		UndoDeadline: now.Add(r.window),
	}

	r.mu.Lock()
	r.records = append([]domain.ExecutionRecord{rec}, r.records...)
	if len(r.records) > maxRecords {
		r.records = r.records[:maxRecords]
	}
	r.mu.Unlock()

	if err := r.repo.Insert(ctx, rec); err != nil {
		log.Printf("recorder: persist execution %s: %v", rec.ID, err)
		r.noteError(now)
	}
	r.persistWindow(ctx)
	if err := r.audit.Append(ctx, domain.AuditTradeExecuted, rec); err != nil {
		log.Printf("recorder: audit execution %s: %v", rec.ID, err)
	}
	r.notifier.TradeExecuted(rec)
	return rec, nil
}

// Undo reverses an execution while its window is still open.
func (r *Recorder) Undo(ctx context.Context, id string) (domain.ExecutionRecord, error) {
	ctx, span := r.tracer.Start(ctx, "recorder.undo")
	defer span.End()

	now := r.now()

	r.mu.Lock()
	idx := -1
	for i := range r.records {
		if r.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return domain.ExecutionRecord{}, ErrNotFound
	}
	if r.records[idx].Undone {
		rec := r.records[idx]
		r.mu.Unlock()
		return rec, ErrAlreadyUndone
	}
	if !r.records[idx].Undoable(now) {
		rec := r.records[idx]
		r.mu.Unlock()
		return rec, ErrUndoExpired
	}
	r.records[idx].Undone = true
	r.records[idx].CanUndo = false
	rec := r.records[idx]
	r.mu.Unlock()

	if err := r.repo.MarkUndone(ctx, id); err != nil {
		log.Printf("recorder: persist undo %s: %v", id, err)
		r.noteError(now)
	}
	r.persistWindow(ctx)
	if err := r.audit.Append(ctx, domain.AuditTradeUndone, rec); err != nil {
		log.Printf("recorder: audit undo %s: %v", id, err)
	}
	r.notifier.UndoRequested(rec)
	return rec, nil
}

// UndoLast reverses the most recent still-undoable execution.
func (r *Recorder) UndoLast(ctx context.Context) (domain.ExecutionRecord, error) {
	r.mu.Lock()
	id := ""
	now := r.now()
	for i := range r.records {
		if r.records[i].Undoable(now) {
			id = r.records[i].ID
			break
		}
	}
	r.mu.Unlock()
	if id == "" {
		return domain.ExecutionRecord{}, ErrNotFound
	}
	return r.Undo(ctx, id)
}

// ExpireOverdue closes the undo window on records past their deadline,
// mirrors the flip to the archive, and returns the ones that just expired.
func (r *Recorder) ExpireOverdue(ctx context.Context) []domain.ExecutionRecord {
	ctx, span := r.tracer.Start(ctx, "recorder.expire-overdue")
	defer span.End()

	now := r.now()
	var expired []domain.ExecutionRecord

	r.mu.Lock()
	for i := range r.records {
		if r.records[i].CanUndo && !r.records[i].Undone && now.After(r.records[i].UndoDeadline) {
			r.records[i].CanUndo = false
			expired = append(expired, r.records[i])
		}
	}
	r.mu.Unlock()

	if len(expired) > 0 {
		if err := r.repo.SyncWindow(ctx, expired); err != nil {
			log.Printf("recorder: sync expired windows: %v", err)
			r.noteError(now)
		}
		r.persistWindow(ctx)
	}
	return expired
}

// persistWindow mirrors the in-memory window to the store. Memory stays
// authoritative; a failed mirror only costs the next restart its fast path.
func (r *Recorder) persistWindow(ctx context.Context) {
	r.mu.Lock()
	snapshot := make([]domain.ExecutionRecord, len(r.records))
	copy(snapshot, r.records)
	r.mu.Unlock()

	if err := r.store.SetHistory(ctx, snapshot); err != nil {
		log.Printf("recorder: mirror execution window: %v", err)
	}
}

// Recent returns up to limit records, most recent first.
func (r *Recorder) Recent(limit int) []domain.ExecutionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]domain.ExecutionRecord, limit)
	copy(out, r.records[:limit])
	return out
}

// Stats aggregates the current trading day. Trade counts come from the
// execution history; realized PnL and the loss streak come from the closed
// outcome stream.
func (r *Recorder) Stats(ctx context.Context, includeUndone bool) domain.DayStats {
	ctx, span := r.tracer.Start(ctx, "recorder.stats")
	defer span.End()

	now := r.now()
	stats := domain.DayStats{Errors: r.errorsToday(now)}

	r.mu.Lock()
	for _, rec := range r.records {
		if !sameDay(rec.Timestamp, now) {
			continue
		}
		if rec.Undone && !includeUndone {
			continue
		}
		stats.Trades++
	}
	r.mu.Unlock()

	trades := r.store.Trades(ctx)
	for _, tr := range trades {
		if sameDay(tr.Timestamp, now) {
			stats.PnL += tr.PnL
		}
	}
	if streak := persona.CurrentStreak(trades); streak.Outcome == domain.OutcomeLoss {
		stats.ConsecutiveLosses = streak.Count
	}
	return stats
}

// NoteError counts an execution failure against today's error budget.
func (r *Recorder) NoteError() {
	r.noteError(r.now())
}

func (r *Recorder) noteError(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !sameDay(r.errDay, now) {
		r.errDay = now
		r.errCount = 0
	}
	r.errCount++
}

func (r *Recorder) errorsToday(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !sameDay(r.errDay, now) {
		return 0
	}
	return r.errCount
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
