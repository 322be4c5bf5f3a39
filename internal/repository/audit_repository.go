package repository

import (
	"context"
	"encoding/json"
	"log"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const createAuditEventsTable = `
CREATE TABLE IF NOT EXISTS audit_events (
    id         BIGSERIAL   PRIMARY KEY,
    event_type TEXT        NOT NULL,
    payload    JSONB       NOT NULL DEFAULT '{}'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_audit_events_created_at
    ON audit_events (created_at DESC);
`

// AuditRepository is the append-only compliance trail. Rows are inserted and
// read, never updated or deleted.
type AuditRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewAuditRepository(pool PgxPool, tracer trace.Tracer) *AuditRepository {
	return &AuditRepository{pool: pool, tracer: tracer}
}

func (r *AuditRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "audit-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createAuditEventsTable)
	return err
}

func (r *AuditRepository) Append(ctx context.Context, eventType domain.AuditEventType, payload any) error {
	_, span := r.tracer.Start(ctx, "audit-repo.append")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_events (event_type, payload) VALUES ($1, $2)`,
		string(eventType), marshalPayload(payload),
	)
	return err
}

// Recent returns the newest events first.
func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	_, span := r.tracer.Start(ctx, "audit-repo.recent")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT id, event_type, payload, created_at
		 FROM audit_events
		 ORDER BY id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var ev domain.AuditEvent
		var eventType string
		var payload []byte
		if err := rows.Scan(&ev.ID, &eventType, &payload, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Type = domain.AuditEventType(eventType)
		ev.Payload = json.RawMessage(payload)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// marshalPayload renders the payload as JSON; an unmarshalable payload is
// logged and recorded as an empty object rather than losing the event.
func marshalPayload(payload any) []byte {
	if payload == nil {
		return []byte("{}")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("audit: cannot marshal payload: %v", err)
		return []byte("{}")
	}
	return data
}
