package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiterWithConfig(3, time.Minute)

	t.Run("allows attempts up to the limit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if !limiter.allow("10.0.0.1") {
				t.Fatalf("attempt %d should have been allowed", i+1)
			}
		}
	})

	t.Run("blocks attempts over the limit", func(t *testing.T) {
		if limiter.allow("10.0.0.1") {
			t.Error("expected attempt over the limit to be blocked")
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		if !limiter.allow("10.0.0.2") {
			t.Error("expected a fresh key to be allowed")
		}
	})

	t.Run("Reset clears all state", func(t *testing.T) {
		limiter.Reset()
		if !limiter.allow("10.0.0.1") {
			t.Error("expected blocked key to be allowed again after Reset")
		}
	})
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if !limiter.allow("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if limiter.allow("10.0.0.1") {
		t.Fatal("second attempt inside the window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !limiter.allow("10.0.0.1") {
		t.Error("expected attempt after window expiry to be allowed")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiterWithConfig(5, 10*time.Millisecond)

	limiter.allow("10.0.0.1")
	limiter.allow("10.0.0.2")

	time.Sleep(20 * time.Millisecond)
	limiter.Cleanup()

	limiter.mu.Lock()
	remaining := len(limiter.entries)
	limiter.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected expired entries to be removed, %d remain", remaining)
	}
}
