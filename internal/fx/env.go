// Package fx holds the page decorations: a drifting particle field, an ember
// field and the visibility gate that switches them on and off.
package fx

import (
	"image/color"
	"math/rand/v2"
)

// Surface is the 2D drawing context a field paints into.
type Surface interface {
	Resize(w, h int)
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1 float64, clr color.Color)
}

// Box is anything with a current on-screen size: the viewport or a container.
type Box interface {
	Size() (w, h float64)
}

// Env bundles the collaborators a field needs. Box is the viewport for the
// particle field and the parent container for the ember field.
type Env struct {
	Surface   Surface
	Box       Box
	Scheduler Scheduler
	Rand      *rand.Rand
	Touch     bool
}

func (e Env) usable() bool {
	return e.Surface != nil && e.Box != nil && e.Scheduler != nil
}

func (e Env) rng() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
