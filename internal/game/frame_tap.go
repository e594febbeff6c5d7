package game

import (
	"sync"
	"time"
)

// frameTap records the last N frame intervals into a ring buffer so the stats
// overlay can show a smoothed frame rate.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{buffer: make([]time.Duration, ringSize)}
}

func (t *frameTap) record(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
	t.mu.Unlock()
}

// snapshot returns up to the last n intervals, oldest first.
func (t *frameTap) snapshot(n int) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.filled {
		n = t.filled
	}
	out := make([]time.Duration, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// fps is the mean rate over the recorded window.
func (t *frameTap) fps() float64 {
	samples := t.snapshot(len(t.buffer))
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range samples {
		total += d
	}
	return float64(len(samples)) / total.Seconds()
}
