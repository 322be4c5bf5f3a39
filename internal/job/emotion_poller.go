package job

import (
	"context"
	"fmt"
	"log"
	"time"

	"tradegate/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// EmotionRefresher recomputes the emotional read from the outcome stream and
// reports whether the state changed.
type EmotionRefresher interface {
	RefreshEmotion(ctx context.Context) (domain.EmotionalRead, bool)
}

// Toaster pushes advisory toasts to listeners.
type Toaster interface {
	AdvisoryToast(severity domain.Severity, message string)
}

// EmotionPoller keeps the emotional read warm and announces state changes.
type EmotionPoller struct {
	tracer       trace.Tracer
	signals      EmotionRefresher
	notifier     Toaster
	pollInterval time.Duration
}

func NewEmotionPoller(tracer trace.Tracer, signals EmotionRefresher, notifier Toaster, pollInterval time.Duration) *EmotionPoller {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &EmotionPoller{tracer: tracer, signals: signals, notifier: notifier, pollInterval: pollInterval}
}

// Start blocks until ctx is cancelled.
func (j *EmotionPoller) Start(ctx context.Context) {
	log.Println("Emotion poller starting...")

	j.runOnce(ctx)
	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Emotion poller stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *EmotionPoller) runOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "emotion-poller.run-once")
	defer span.End()

	read, changed := j.signals.RefreshEmotion(ctx)
	if !changed {
		return
	}
	log.Printf("Emotional state now %s (intensity %d)", read.State, read.Intensity)
	j.notifier.AdvisoryToast(toastSeverity(read.State), stateMessage(read))
}

func toastSeverity(state domain.EmotionalState) domain.Severity {
	switch state {
	case domain.EmotionFrustrated, domain.EmotionGreedy, domain.EmotionExhausted:
		return domain.SeverityHigh
	case domain.EmotionFearful:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func stateMessage(read domain.EmotionalRead) string {
	switch read.State {
	case domain.EmotionFrustrated:
		return fmt.Sprintf("Frustration detected after %d straight losses. Position sizes are cut in half.", read.Streak.Count)
	case domain.EmotionGreedy:
		return fmt.Sprintf("%d wins in a row. Watch for overconfidence creep.", read.Streak.Count)
	case domain.EmotionConfident:
		return "Strong recent win rate. Good rhythm."
	case domain.EmotionFearful:
		return "Recent losses are weighing on the read. Positions are trimmed."
	case domain.EmotionExhausted:
		return "Heavy trade count today. Consider calling it."
	case domain.EmotionCautious:
		return "A couple of recent losses. Sizing conservatively."
	default:
		return "Emotional read back to neutral."
	}
}
