package job

import (
	"context"
	"log"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// UndoExpirer closes undo windows that have lapsed.
type UndoExpirer interface {
	ExpireOverdue(ctx context.Context) []domain.ExecutionRecord
}

// UndoSweeper ticks once a second so undo windows close on time rather than
// on the next read.
type UndoSweeper struct {
	tracer        trace.Tracer
	recorder      UndoExpirer
	sweepInterval time.Duration
}

func NewUndoSweeper(tracer trace.Tracer, recorder UndoExpirer, sweepInterval time.Duration) *UndoSweeper {
	if sweepInterval <= 0 {
		sweepInterval = time.Second
	}
	return &UndoSweeper{tracer: tracer, recorder: recorder, sweepInterval: sweepInterval}
}

// Start blocks until ctx is cancelled.
func (j *UndoSweeper) Start(ctx context.Context) {
	j.sweepOnce(ctx)
	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweepOnce(ctx)
		}
	}
}

func (j *UndoSweeper) sweepOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "undo-sweeper.sweep-once")
	defer span.End()

	for _, rec := range j.recorder.ExpireOverdue(ctx) {
		log.Printf("Undo window closed for %s (%s %s)", rec.ID, rec.Action, rec.Symbol)
	}
}
