package fx

// GateThreshold is the visible area fraction that counts as "on screen".
const GateThreshold = 0.1

// Observer reports visibility transitions of a target. fn receives true when
// the target becomes at least threshold visible and false when it leaves the
// viewport. The returned func stops the observation.
type Observer interface {
	Observe(target Box, threshold float64, fn func(visible bool)) (cancel func())
}

// Gate starts and stops a decoration as its container scrolls in and out of view.
// It forwards transitions only; start and stop must be idempotent themselves.
type Gate struct {
	cancel func()
}

// NewGate subscribes start/stop to target's visibility. A nil observer or
// target yields an inert gate.
func NewGate(obs Observer, target Box, start, stop func()) *Gate {
	g := &Gate{}
	if obs == nil || target == nil || start == nil || stop == nil {
		return g
	}
	g.cancel = obs.Observe(target, GateThreshold, func(visible bool) {
		if visible {
			start()
		} else {
			stop()
		}
	})
	return g
}

// Close ends the observation. Safe to call more than once.
func (g *Gate) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
