package page

// Viewport is the visible window onto the document.
type Viewport struct {
	ScrollY       float64
	Width, Height float64
	listeners     []func()
}

func NewViewport(w, h float64) *Viewport {
	return &Viewport{Width: w, Height: h}
}

func (v *Viewport) Size() (w, h float64) { return v.Width, v.Height }

func (v *Viewport) Rect() Rect {
	return Rect{X: 0, Y: v.ScrollY, W: v.Width, H: v.Height}
}

// OnResize registers fn to run after every size change.
func (v *Viewport) OnResize(fn func()) {
	v.listeners = append(v.listeners, fn)
}

// Resize updates the size and notifies listeners. It reports whether the size changed.
func (v *Viewport) Resize(w, h float64) bool {
	if w == v.Width && h == v.Height {
		return false
	}
	v.Width, v.Height = w, h
	for _, fn := range v.listeners {
		fn()
	}
	return true
}

// ToScreen converts a document y into a viewport y.
func (v *Viewport) ToScreen(y float64) float64 { return y - v.ScrollY }
