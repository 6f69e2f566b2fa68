package ai

import (
	"context"
	"testing"
	"time"
)

func TestTokenBucketUnlimited(t *testing.T) {
	tb := NewTokenBucket("ollama", nil)
	for i := 0; i < 100; i++ {
		if err := tb.Allow(context.Background()); err != nil {
			t.Fatalf("Allow() #%d = %v", i, err)
		}
	}
}

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket("ollama", &RateLimitConfig{RequestsPerMinute: 1, BurstSize: 2})

	for i := 0; i < 2; i++ {
		if err := tb.Allow(context.Background()); err != nil {
			t.Fatalf("Allow() within burst = %v", err)
		}
	}

	err := tb.Allow(context.Background())
	if !IsRateLimitError(err) {
		t.Fatalf("Allow() past burst = %v, want rate limit error", err)
	}
}

func TestTokenBucketWaitRespectsDeadline(t *testing.T) {
	tb := NewTokenBucket("ollama", &RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	if err := tb.Wait(context.Background()); err != nil {
		t.Fatalf("first Wait() = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := tb.Wait(ctx)
	if err == nil {
		t.Fatal("second Wait() should not get a token within the deadline")
	}
	if time.Since(start) > time.Second {
		t.Errorf("Wait() blocked for %v", time.Since(start))
	}
	if tp := TypeOf(err); tp != ErrTypeRateLimit && tp != ErrTypeTimeout {
		t.Errorf("TypeOf(err) = %s", tp)
	}
}
