package ratelimit

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/time/rate"

	"github.com/yaroslav/azrest/server/internal/metrics"
)

// LimitType represents the type of rate limit to apply.
type LimitType string

const (
	// LimitTypeRead is for GET and HEAD requests per subscription.
	LimitTypeRead LimitType = "reads"

	// LimitTypeWrite is for PUT, PATCH, DELETE and POST requests per subscription.
	LimitTypeWrite LimitType = "writes"

	// LimitTypeAuthFailure is for authentication failures per client IP.
	LimitTypeAuthFailure LimitType = "auth_failure"
)

// Config holds the rate limiting configuration.
type Config struct {
	// ReadsPerHour is the read budget of one subscription.
	ReadsPerHour int

	// WritesPerHour is the write budget of one subscription.
	WritesPerHour int

	// AuthFailuresPerMin is the number of auth failures allowed per minute per IP.
	AuthFailuresPerMin int
}

// DefaultConfig returns the budgets ARM applies to a subscription.
func DefaultConfig() Config {
	return Config{
		ReadsPerHour:       12000,
		WritesPerHour:      1200,
		AuthFailuresPerMin: 10,
	}
}

// Decision is the outcome of one Allow call.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool

	// Remaining is the number of whole tokens left in the bucket.
	Remaining int

	// RetryAfter is the number of seconds until a token is available.
	// Zero when Allowed is true.
	RetryAfter int
}

// Limiter implements per-key token buckets for several limit types.
type Limiter struct {
	storage *Storage
	config  Config
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		storage: NewStorage(),
		config:  config,
	}
	for _, lt := range []LimitType{LimitTypeRead, LimitTypeWrite, LimitTypeAuthFailure} {
		_, burst := l.budget(lt)
		metrics.RateLimitBucketCapacity.WithLabelValues(string(lt)).Set(float64(burst))
	}
	return l
}

// Allow takes one token from the bucket stored under key.
func (l *Limiter) Allow(key string, limitType LimitType) Decision {
	limit, burst := l.budget(limitType)
	if limit == rate.Inf {
		return Decision{Allowed: true, Remaining: burst}
	}

	bucket := l.storage.GetOrCreate(key, func() *Bucket {
		return newBucket(rate.NewLimiter(limit, burst))
	})

	now := time.Now()
	bucket.touch(now)

	if bucket.limiter.AllowN(now, 1) {
		metrics.RateLimitChecks.WithLabelValues(string(limitType), "true").Inc()
		return Decision{
			Allowed:   true,
			Remaining: int(math.Floor(bucket.limiter.TokensAt(now))),
		}
	}

	metrics.RateLimitChecks.WithLabelValues(string(limitType), "false").Inc()
	metrics.RateLimitBlocks.WithLabelValues(string(limitType)).Inc()

	tokensNeeded := 1.0 - bucket.limiter.TokensAt(now)
	retrySeconds := int(math.Ceil(tokensNeeded / float64(bucket.limiter.Limit())))
	if retrySeconds < 1 {
		retrySeconds = 1
	}

	return Decision{Allowed: false, RetryAfter: retrySeconds}
}

// budget returns the refill rate and burst for a limit type.
// A non-positive budget disables the limit.
func (l *Limiter) budget(limitType LimitType) (rate.Limit, int) {
	var perPeriod int
	var period time.Duration

	switch limitType {
	case LimitTypeWrite:
		perPeriod, period = l.config.WritesPerHour, time.Hour
	case LimitTypeAuthFailure:
		perPeriod, period = l.config.AuthFailuresPerMin, time.Minute
	default:
		perPeriod, period = l.config.ReadsPerHour, time.Hour
	}

	if perPeriod <= 0 {
		return rate.Inf, math.MaxInt32
	}
	return rate.Limit(float64(perPeriod) / period.Seconds()), perPeriod
}

// BuildKey creates a rate limit key from identifier and limit type.
func BuildKey(identifier string, limitType LimitType) string {
	return fmt.Sprintf("%s:%s", limitType, identifier)
}

// Stop gracefully stops the limiter and cleans up resources.
func (l *Limiter) Stop() {
	l.storage.Stop()
}

// GetStorage returns the underlying storage (for testing).
func (l *Limiter) GetStorage() *Storage {
	return l.storage
}
