package worker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 3)
	if limiter.defaultBurst != 3 {
		t.Errorf("expected burst 3, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != defaultBurst {
		t.Errorf("expected default burst %d for negative input, got %d", defaultBurst, l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "stories.txt"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "criteria.yaml"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "stories.txt"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "stories.txt"); err == nil {
		t.Error("expected second wait to fail before the next token")
	}
}

// ready reports whether source can take an item without waiting
func ready(l *Limiter, source string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	return l.Wait(ctx, source) == nil
}

func TestLimiter_PerSource(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !ready(limiter, "a.txt") {
		t.Error("expected first item from a.txt to pass")
	}
	if ready(limiter, "a.txt") {
		t.Error("expected a.txt to be exhausted")
	}
	if !ready(limiter, "b.txt") {
		t.Error("expected b.txt to have its own budget")
	}
}

func TestLimiter_SetSourceRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	limiter.SetSourceRate("slow.txt", 0.1, 1)

	if !ready(limiter, "slow.txt") {
		t.Error("first item should pass")
	}
	if ready(limiter, "slow.txt") {
		t.Error("second item should be throttled")
	}
	if !ready(limiter, "fast.txt") {
		t.Error("other sources should keep the default rate")
	}
}

func TestLimiter_ZeroRateUnthrottled(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 20; i++ {
		if !ready(limiter, "stories.txt") {
			t.Fatalf("expected item %d to pass with no default rate", i)
		}
	}
}

func TestLimiter_ContextError(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx, "stories.txt")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
