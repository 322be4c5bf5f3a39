package job

import (
	"context"
	"testing"
	"time"
)

func TestOutcomeDebouncerCoalescesBursts(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{}
	debouncer := NewOutcomeDebouncer(testTracer, refresher, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.Start(ctx)

	for i := 0; i < 10; i++ {
		debouncer.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	eventually(t, func() bool { return refresher.callCount() == 1 })

	// The quiet period has passed; nothing further should fire on its own.
	time.Sleep(120 * time.Millisecond)
	if got := refresher.callCount(); got != 1 {
		t.Errorf("refresh calls = %d, want 1 for the whole burst", got)
	}
}

func TestOutcomeDebouncerFiresAgainAfterNewTrigger(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{}
	debouncer := NewOutcomeDebouncer(testTracer, refresher, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.Start(ctx)

	debouncer.Trigger()
	eventually(t, func() bool { return refresher.callCount() == 1 })

	debouncer.Trigger()
	eventually(t, func() bool { return refresher.callCount() == 2 })
}

func TestOutcomeDebouncerQuietWithoutTriggers(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{}
	debouncer := NewOutcomeDebouncer(testTracer, refresher, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go debouncer.Start(ctx)

	time.Sleep(60 * time.Millisecond)
	cancel()
	if got := refresher.callCount(); got != 0 {
		t.Errorf("refresh calls = %d, want 0 without triggers", got)
	}
}

func TestOutcomeDebouncerDefaultDelay(t *testing.T) {
	debouncer := NewOutcomeDebouncer(testTracer, &stubRefresher{}, 0)
	if debouncer.delay != time.Second {
		t.Fatalf("expected 1s default, got %v", debouncer.delay)
	}
}
