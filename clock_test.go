package ttlcache_test

import (
	"sync"
	"testing"
	"time"

	ttlcache "github.com/karupanerura/ttl-cache"
)

func TestManualClock(t *testing.T) {
	t.Parallel()

	clock := ttlcache.NewManualClock(base)
	if now := clock.Now(); !now.Equal(base) {
		t.Errorf("expected %v, got %v", base, now)
	}

	clock.Advance(time.Minute)
	if now := clock.Now(); !now.Equal(base.Add(time.Minute)) {
		t.Errorf("expected %v, got %v", base.Add(time.Minute), now)
	}

	later := base.Add(time.Hour)
	clock.Set(later)
	if now := clock.Now(); !now.Equal(later) {
		t.Errorf("expected %v, got %v", later, now)
	}
}

func TestManualClock_Concurrent(t *testing.T) {
	t.Parallel()

	clock := ttlcache.NewManualClock(base)
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
			_ = clock.Now()
		}()
	}
	wg.Wait()

	if now := clock.Now(); !now.Equal(base.Add(100 * time.Second)) {
		t.Errorf("expected %v, got %v", base.Add(100*time.Second), now)
	}
}

func TestSystemClock(t *testing.T) {
	t.Parallel()

	first := ttlcache.SystemClock.Now()
	second := ttlcache.SystemClock.Now()
	if second.Before(first) {
		t.Errorf("system clock must not run backward: %v then %v", first, second)
	}
}
