package fx

import (
	"image/color"
	"math/rand/v2"
)

type circle struct {
	x, y, r float64
	clr     color.NRGBA
}

type line struct {
	x0, y0, x1, y1 float64
	clr            color.NRGBA
}

type recordSurface struct {
	w, h    int
	clears  int
	circles []circle
	lines   []line
}

func (s *recordSurface) Resize(w, h int) { s.w, s.h = w, h }

func (s *recordSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordSurface) FillCircle(x, y, r float64, clr color.Color) {
	s.circles = append(s.circles, circle{x, y, r, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

func (s *recordSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	s.lines = append(s.lines, line{x0, y0, x1, y1, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

type fixedBox struct{ w, h float64 }

func (b *fixedBox) Size() (float64, float64) { return b.w, b.h }

func testEnv(w, h float64) (Env, *recordSurface, *FrameLoop, *fixedBox) {
	s := &recordSurface{}
	l := NewFrameLoop()
	b := &fixedBox{w, h}
	return Env{
		Surface:   s,
		Box:       b,
		Scheduler: l,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	}, s, l, b
}
