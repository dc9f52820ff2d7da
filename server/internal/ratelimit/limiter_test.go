package ratelimit

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(DefaultConfig())
	defer limiter.Stop()

	key := BuildKey("sub-1", LimitTypeRead)

	d := limiter.Allow(key, LimitTypeRead)
	if !d.Allowed {
		t.Fatal("First request should be allowed")
	}
	if d.RetryAfter != 0 {
		t.Errorf("RetryAfter = %d, want 0", d.RetryAfter)
	}
	if d.Remaining != DefaultConfig().ReadsPerHour-1 {
		t.Errorf("Remaining = %d, want %d", d.Remaining, DefaultConfig().ReadsPerHour-1)
	}
}

func TestLimiter_RateLimitEnforcement(t *testing.T) {
	limiter := NewLimiter(Config{WritesPerHour: 3})
	defer limiter.Stop()

	key := BuildKey("sub-1", LimitTypeWrite)

	for i := 0; i < 3; i++ {
		d := limiter.Allow(key, LimitTypeWrite)
		if !d.Allowed {
			t.Fatalf("Request %d should be allowed", i+1)
		}
		if want := 2 - i; d.Remaining != want {
			t.Errorf("Request %d Remaining = %d, want %d", i+1, d.Remaining, want)
		}
	}

	d := limiter.Allow(key, LimitTypeWrite)
	if d.Allowed {
		t.Error("Request should be rate limited after exhausting tokens")
	}
	// 3 per hour refills one token every 1200s
	if d.RetryAfter < 1000 || d.RetryAfter > 1200 {
		t.Errorf("RetryAfter = %d, want about 1200", d.RetryAfter)
	}
}

func TestLimiter_TokenRefill(t *testing.T) {
	limiter := NewLimiter(Config{AuthFailuresPerMin: 60}) // 1 token per second
	defer limiter.Stop()

	key := BuildKey("10.0.0.1", LimitTypeAuthFailure)

	for i := 0; i < 60; i++ {
		limiter.Allow(key, LimitTypeAuthFailure)
	}
	if d := limiter.Allow(key, LimitTypeAuthFailure); d.Allowed {
		t.Fatal("Should be rate limited after exhausting tokens")
	}

	time.Sleep(1100 * time.Millisecond)

	if d := limiter.Allow(key, LimitTypeAuthFailure); !d.Allowed {
		t.Errorf("Request should be allowed after token refill, RetryAfter=%d", d.RetryAfter)
	}
}

func TestLimiter_DifferentLimitTypes(t *testing.T) {
	limiter := NewLimiter(Config{
		ReadsPerHour:       5,
		WritesPerHour:      2,
		AuthFailuresPerMin: 3,
	})
	defer limiter.Stop()

	tests := []struct {
		name      string
		limitType LimitType
		limit     int
	}{
		{"reads", LimitTypeRead, 5},
		{"writes", LimitTypeWrite, 2},
		{"auth failures", LimitTypeAuthFailure, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := BuildKey("sub-"+tt.name, tt.limitType)

			for i := 0; i < tt.limit; i++ {
				if d := limiter.Allow(key, tt.limitType); !d.Allowed {
					t.Errorf("Request %d/%d should be allowed", i+1, tt.limit)
				}
			}

			d := limiter.Allow(key, tt.limitType)
			if d.Allowed {
				t.Error("Request should be rate limited after exhausting tokens")
			}
			if d.RetryAfter == 0 {
				t.Error("RetryAfter should be > 0")
			}
		})
	}
}

func TestLimiter_IndependentKeys(t *testing.T) {
	limiter := NewLimiter(Config{ReadsPerHour: 2})
	defer limiter.Stop()

	key1 := BuildKey("sub-1", LimitTypeRead)
	key2 := BuildKey("sub-2", LimitTypeRead)

	limiter.Allow(key1, LimitTypeRead)
	limiter.Allow(key1, LimitTypeRead)

	if d := limiter.Allow(key1, LimitTypeRead); d.Allowed {
		t.Error("key1 should be rate limited")
	}
	if d := limiter.Allow(key2, LimitTypeRead); !d.Allowed {
		t.Error("key2 should not be affected by key1")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(Config{})
	defer limiter.Stop()

	key := BuildKey("sub-1", LimitTypeWrite)
	for i := 0; i < 100; i++ {
		if d := limiter.Allow(key, LimitTypeWrite); !d.Allowed {
			t.Fatalf("Request %d rejected with limits disabled", i+1)
		}
	}
	if limiter.GetStorage().Count() != 0 {
		t.Error("disabled limits should not allocate buckets")
	}
}

func TestLimiter_Budget(t *testing.T) {
	limiter := NewLimiter(Config{ReadsPerHour: 3600, WritesPerHour: 1800, AuthFailuresPerMin: 120})
	defer limiter.Stop()

	tests := []struct {
		limitType LimitType
		wantRate  rate.Limit
		wantBurst int
	}{
		{LimitTypeRead, 1, 3600},
		{LimitTypeWrite, 0.5, 1800},
		{LimitTypeAuthFailure, 2, 120},
	}

	for _, tt := range tests {
		t.Run(string(tt.limitType), func(t *testing.T) {
			r, burst := limiter.budget(tt.limitType)
			if r != tt.wantRate {
				t.Errorf("rate = %v, want %v", r, tt.wantRate)
			}
			if burst != tt.wantBurst {
				t.Errorf("burst = %d, want %d", burst, tt.wantBurst)
			}
		})
	}
}

func TestBuildKey(t *testing.T) {
	if got := BuildKey("sub-1", LimitTypeWrite); got != "writes:sub-1" {
		t.Errorf("BuildKey() = %q, want writes:sub-1", got)
	}
}
