package page

import (
	"slices"

	"github.com/iburimskiy/portfolio-fx/internal/fx"
)

// Placed is a target the observer can locate on the page.
type Placed interface {
	fx.Box
	Rect() Rect
}

type observation struct {
	target    Placed
	threshold float64
	fn        func(bool)
	primed    bool
	visible   bool
	cancelled bool
}

// Observer polls target visibility against the viewport once per frame.
// A target becomes visible at threshold and stops being visible only once it
// leaves the viewport entirely.
type Observer struct {
	vp  *Viewport
	obs []*observation
}

var _ fx.Observer = (*Observer)(nil)

func NewObserver(vp *Viewport) *Observer {
	return &Observer{vp: vp}
}

// Observe starts watching target. The first Poll reports its current state.
// Targets the observer cannot place are ignored.
func (o *Observer) Observe(target fx.Box, threshold float64, fn func(bool)) func() {
	p, ok := target.(Placed)
	if !ok || fn == nil {
		return func() {}
	}
	ob := &observation{target: p, threshold: threshold, fn: fn}
	o.obs = append(o.obs, ob)
	return func() {
		ob.cancelled = true
		o.obs = slices.DeleteFunc(o.obs, func(x *observation) bool { return x == ob })
	}
}

// Len reports the number of live observations.
func (o *Observer) Len() int { return len(o.obs) }

// Poll checks every observation and fires callbacks on transitions.
func (o *Observer) Poll() {
	view := o.vp.Rect()
	for _, ob := range slices.Clone(o.obs) {
		if ob.cancelled {
			continue
		}
		ratio := VisibleRatio(ob.target.Rect(), view)
		switch {
		case !ob.primed:
			ob.primed = true
			ob.visible = ratio >= ob.threshold
			ob.fn(ob.visible)
		case !ob.visible && ratio >= ob.threshold:
			ob.visible = true
			ob.fn(true)
		case ob.visible && ratio == 0:
			ob.visible = false
			ob.fn(false)
		}
	}
}

// VisibleRatio is the fraction of target's area inside view. Empty targets are never visible.
func VisibleRatio(target, view Rect) float64 {
	area := target.Area()
	if area <= 0 {
		return 0
	}
	return target.Intersect(view).Area() / area
}

// RevealThreshold is the visible fraction that reveals a content block.
const RevealThreshold = 0.1

// Reveal marks each element Revealed the first time it becomes visible.
// Revealed elements are no longer observed.
func Reveal(o *Observer, els []*Element) {
	for _, el := range els {
		var cancel func()
		cancel = o.Observe(el, RevealThreshold, func(visible bool) {
			if !visible {
				return
			}
			el.Revealed = true
			cancel()
		})
	}
}
