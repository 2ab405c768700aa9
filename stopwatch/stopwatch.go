// Package stopwatch measures wall-clock time elapsed since a marked start.
package stopwatch

import (
	"sync"
	"time"
)

// Clock abstracts the time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the default Clock.
var SystemClock Clock = systemClock{}

var (
	mu    sync.RWMutex
	clock = SystemClock
)

// WithClock makes MarkStart and ElapsedSeconds read c until the returned func is called.
func WithClock(c Clock) (restore func()) {
	mu.Lock()
	prev := clock
	clock = c
	mu.Unlock()
	return func() {
		mu.Lock()
		clock = prev
		mu.Unlock()
	}
}

func now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return clock.Now()
}

// Handle is a marked start point.
type Handle struct {
	start time.Time
}

func MarkStart() Handle {
	return Handle{start: now()}
}

// Elapsed returns the time since h was marked.
func (h Handle) Elapsed() time.Duration {
	return now().Sub(h.start)
}

// ElapsedSeconds returns the seconds since h was marked.
func ElapsedSeconds(h Handle) float64 {
	return h.Elapsed().Seconds()
}
