package repository

import (
	"context"
	"time"

	"tradegate/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

const createExecutionRecordsTable = `
CREATE TABLE IF NOT EXISTS execution_records (
    id            TEXT        PRIMARY KEY,
    ts            TIMESTAMPTZ NOT NULL,
    action        TEXT        NOT NULL,
    symbol        TEXT        NOT NULL,
    quantity      NUMERIC     NOT NULL,
    price         NUMERIC     NOT NULL,
    confidence    NUMERIC     NOT NULL,
    can_undo      BOOLEAN     NOT NULL,
    undo_deadline TIMESTAMPTZ NOT NULL,
    undone        BOOLEAN     NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_execution_records_ts
    ON execution_records (ts DESC);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ExecutionRepository is the durable archive of every trade the engine
// placed. The store keeps only a rolling 24h window; this table keeps the
// full trail.
type ExecutionRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewExecutionRepository(pool PgxPool, tracer trace.Tracer) *ExecutionRepository {
	return &ExecutionRepository{pool: pool, tracer: tracer}
}

func (r *ExecutionRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "execution-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createExecutionRecordsTable)
	return err
}

func (r *ExecutionRepository) Insert(ctx context.Context, record domain.ExecutionRecord) error {
	_, span := r.tracer.Start(ctx, "execution-repo.insert")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO execution_records
		     (id, ts, action, symbol, quantity, price, confidence, can_undo, undo_deadline, undone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		record.ID, record.Timestamp, string(record.Action), record.Symbol,
		record.Quantity, record.Price, record.Confidence,
		record.CanUndo, record.UndoDeadline, record.Undone,
	)
	return err
}

// MarkUndone flips the archived row after a successful undo.
func (r *ExecutionRepository) MarkUndone(ctx context.Context, id string) error {
	_, span := r.tracer.Start(ctx, "execution-repo.mark-undone")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`UPDATE execution_records SET undone = TRUE, can_undo = FALSE WHERE id = $1`,
		id,
	)
	return err
}

// SyncWindow writes the whole in-memory window in one batch, keeping archive
// rows in step with undo-deadline expiries.
func (r *ExecutionRepository) SyncWindow(ctx context.Context, records []domain.ExecutionRecord) error {
	if len(records) == 0 {
		return nil
	}

	_, span := r.tracer.Start(ctx, "execution-repo.sync-window")
	defer span.End()

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO execution_records
			     (id, ts, action, symbol, quantity, price, confidence, can_undo, undo_deadline, undone)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (id) DO UPDATE SET
			     can_undo = EXCLUDED.can_undo,
			     undone = EXCLUDED.undone`,
			rec.ID, rec.Timestamp, string(rec.Action), rec.Symbol,
			rec.Quantity, rec.Price, rec.Confidence,
			rec.CanUndo, rec.UndoDeadline, rec.Undone,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// ListSince returns archived records newer than the given time, most recent
// first.
func (r *ExecutionRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]domain.ExecutionRecord, error) {
	_, span := r.tracer.Start(ctx, "execution-repo.list-since")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT id, ts, action, symbol, quantity, price, confidence, can_undo, undo_deadline, undone
		 FROM execution_records
		 WHERE ts > $1
		 ORDER BY ts DESC
		 LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ExecutionRecord
	for rows.Next() {
		var rec domain.ExecutionRecord
		var action string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &action, &rec.Symbol,
			&rec.Quantity, &rec.Price, &rec.Confidence,
			&rec.CanUndo, &rec.UndoDeadline, &rec.Undone); err != nil {
			return nil, err
		}
		rec.Action = domain.TradeAction(action)
		records = append(records, rec)
	}
	return records, rows.Err()
}
