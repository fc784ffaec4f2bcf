package middleware

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	// 6 per minute gives a burst of 1 and no refill within the test.
	rl := newRateLimiter(6)

	const clients = 50
	var allowed atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.1") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
	if got := rl.limiters.Len(); got != 1 {
		t.Errorf("tracked limiters = %d, want 1", got)
	}
}
