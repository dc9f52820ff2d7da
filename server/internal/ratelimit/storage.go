package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/yaroslav/azrest/server/internal/metrics"
)

const (
	cleanupInterval = 5 * time.Minute
	idleExpiry      = time.Hour
)

// Bucket is one token bucket plus the time it was last used.
type Bucket struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func newBucket(limiter *rate.Limiter) *Bucket {
	b := &Bucket{limiter: limiter}
	b.touch(time.Now())
	return b
}

func (b *Bucket) touch(now time.Time) {
	b.lastSeen.Store(now.UnixNano())
}

// LastSeen returns the time the bucket was last used.
func (b *Bucket) LastSeen() time.Time {
	return time.Unix(0, b.lastSeen.Load())
}

// Storage provides thread-safe in-memory storage for rate limit buckets.
// It uses sync.Map for concurrent access and periodically drops idle buckets.
type Storage struct {
	buckets sync.Map
	stopCh  chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup
}

// NewStorage creates a new rate limit storage and starts the cleanup goroutine.
func NewStorage() *Storage {
	s := &Storage{
		stopCh: make(chan struct{}),
	}
	s.startCleanup()
	return s
}

// Get retrieves a bucket by key. Returns nil if not found.
func (s *Storage) Get(key string) *Bucket {
	value, ok := s.buckets.Load(key)
	if !ok {
		return nil
	}
	return value.(*Bucket)
}

// GetOrCreate returns the bucket under key, creating it with create when absent.
func (s *Storage) GetOrCreate(key string, create func() *Bucket) *Bucket {
	if b := s.Get(key); b != nil {
		return b
	}
	value, loaded := s.buckets.LoadOrStore(key, create())
	if !loaded {
		metrics.RateLimitBuckets.Inc()
	}
	return value.(*Bucket)
}

// Delete removes a bucket by key.
func (s *Storage) Delete(key string) {
	if _, loaded := s.buckets.LoadAndDelete(key); loaded {
		metrics.RateLimitBuckets.Dec()
	}
}

// startCleanup starts a background goroutine that periodically drops idle buckets.
func (s *Storage) startCleanup() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.cleanup(time.Now())
			case <-s.stopCh:
				return
			}
		}
	}()
}

// cleanup removes buckets that have not been used within idleExpiry of now.
func (s *Storage) cleanup(now time.Time) {
	threshold := now.Add(-idleExpiry)

	s.buckets.Range(func(key, value any) bool {
		if value.(*Bucket).LastSeen().Before(threshold) {
			s.Delete(key.(string))
		}
		return true
	})
}

// Stop gracefully stops the storage cleanup goroutine.
func (s *Storage) Stop() {
	s.stopped.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Count returns the number of buckets currently stored (for testing/monitoring).
func (s *Storage) Count() int {
	count := 0
	s.buckets.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
