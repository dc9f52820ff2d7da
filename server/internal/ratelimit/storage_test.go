package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestStorage_GetOrCreate(t *testing.T) {
	storage := NewStorage()
	defer storage.Stop()

	if storage.Get("test-key") != nil {
		t.Error("Get() should return nil for non-existent key")
	}

	created := 0
	create := func() *Bucket {
		created++
		return newBucket(rate.NewLimiter(1, 10))
	}

	first := storage.GetOrCreate("test-key", create)
	second := storage.GetOrCreate("test-key", create)

	if first != second {
		t.Error("GetOrCreate() should return the stored bucket")
	}
	if created != 1 {
		t.Errorf("create called %d times, want 1", created)
	}
	if storage.Get("test-key") != first {
		t.Error("Get() should return the bucket after GetOrCreate()")
	}
}

func TestStorage_Delete(t *testing.T) {
	storage := NewStorage()
	defer storage.Stop()

	storage.GetOrCreate("test-key", func() *Bucket { return newBucket(rate.NewLimiter(1, 1)) })
	storage.Delete("test-key")

	if storage.Get("test-key") != nil {
		t.Error("Bucket should not exist after Delete()")
	}
	// Deleting twice is a no-op
	storage.Delete("test-key")
}

func TestStorage_Cleanup(t *testing.T) {
	storage := NewStorage()
	defer storage.Stop()

	now := time.Now()
	stale := storage.GetOrCreate("stale", func() *Bucket { return newBucket(rate.NewLimiter(1, 1)) })
	stale.touch(now.Add(-2 * idleExpiry))
	storage.GetOrCreate("fresh", func() *Bucket { return newBucket(rate.NewLimiter(1, 1)) })

	storage.cleanup(now)

	if storage.Get("stale") != nil {
		t.Error("stale bucket should be removed")
	}
	if storage.Get("fresh") == nil {
		t.Error("fresh bucket should be kept")
	}
	if storage.Count() != 1 {
		t.Errorf("Count() = %d, want 1", storage.Count())
	}
}

func TestStorage_ConcurrentAccess(t *testing.T) {
	storage := NewStorage()
	defer storage.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%10)
			storage.GetOrCreate(key, func() *Bucket { return newBucket(rate.NewLimiter(1, 1)) })
		}(i)
	}
	wg.Wait()

	if storage.Count() != 10 {
		t.Errorf("Count() = %d, want 10", storage.Count())
	}
}

func TestStorage_StopIsIdempotent(t *testing.T) {
	storage := NewStorage()
	storage.Stop()
	storage.Stop()
}
