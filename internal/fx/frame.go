package fx

import (
	"maps"
	"slices"
)

// FrameID identifies a pending frame callback. Zero is never issued.
type FrameID uint64

// NoFrame is the handle of a field with no pending frame.
const NoFrame FrameID = 0

// Scheduler requests a callback before the next repaint and cancels it by handle.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameLoop is a Scheduler driven by the host's frame tick.
type FrameLoop struct {
	last    FrameID
	pending map[FrameID]func()
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: make(map[FrameID]func())}
}

func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.last++
	l.pending[l.last] = fn
	return l.last
}

func (l *FrameLoop) CancelFrame(id FrameID) {
	delete(l.pending, id)
}

// Pending reports how many callbacks are waiting for the next tick.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Tick runs every callback requested before the call, in request order.
// Callbacks requested while ticking wait for the next Tick. Returns the number run.
func (l *FrameLoop) Tick() int {
	ran := 0
	for _, id := range slices.Sorted(maps.Keys(l.pending)) {
		fn, ok := l.pending[id]
		if !ok {
			continue
		}
		delete(l.pending, id)
		fn()
		ran++
	}
	return ran
}
