package backend

import (
	"sync"
	"time"
)

// Throttle ensures a minimum interval between successive operations. The
// presenter uses one to pace flips to the configured frame rate.
type Throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

// NewThrottle returns a throttle; a non-positive interval never waits.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{}
	}
	return &Throttle{interval: interval}
}

// ForRate returns a throttle pacing fps operations per second.
func ForRate(fps int) *Throttle {
	if fps <= 0 {
		return NewThrottle(0)
	}
	return NewThrottle(time.Second / time.Duration(fps))
}

// Interval returns the minimum spacing.
func (t *Throttle) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Wait blocks until the interval since the previous call has elapsed.
func (t *Throttle) Wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		now := time.Now()
		wait := t.next.Sub(now)
		if wait <= 0 {
			// a late caller restarts the schedule instead of bursting
			t.next = now.Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		time.Sleep(wait)
	}
}
