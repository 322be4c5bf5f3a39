package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// OutcomeDebouncer coalesces bursts of recorded outcomes into a single
// emotional refresh after a quiet period. Trigger is safe to call from any
// goroutine and never blocks.
type OutcomeDebouncer struct {
	tracer  trace.Tracer
	signals EmotionRefresher
	delay   time.Duration
	kick    chan struct{}
}

func NewOutcomeDebouncer(tracer trace.Tracer, signals EmotionRefresher, delay time.Duration) *OutcomeDebouncer {
	if delay <= 0 {
		delay = time.Second
	}
	return &OutcomeDebouncer{
		tracer:  tracer,
		signals: signals,
		delay:   delay,
		kick:    make(chan struct{}, 1),
	}
}

// Trigger schedules a refresh once outcomes stop arriving.
func (d *OutcomeDebouncer) Trigger() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Start blocks until ctx is cancelled.
func (d *OutcomeDebouncer) Start(ctx context.Context) {
	timer := time.NewTimer(d.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.kick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d.delay)
		case <-timer.C:
			d.flush(ctx)
		}
	}
}

func (d *OutcomeDebouncer) flush(ctx context.Context) {
	ctx, span := d.tracer.Start(ctx, "outcome-debouncer.flush")
	defer span.End()

	read, changed := d.signals.RefreshEmotion(ctx)
	if changed {
		log.Printf("Outcome ingestion moved the emotional state to %s", read.State)
	}
}
