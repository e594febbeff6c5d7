package fx

import (
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// ParticleOptions tune the background particle field.
type ParticleOptions struct {
	PointerCount int
	TouchCount   int
	LinkDistance float64
	LinkAlpha    float64
	// SelfLinks pairs every particle with itself in the link pass as well,
	// drawing a zero-length line per particle.
	SelfLinks bool
	Palette   []string
}

func DefaultParticleOptions() ParticleOptions {
	return ParticleOptions{
		PointerCount: 80,
		TouchCount:   40,
		LinkDistance: 150,
		LinkAlpha:    0.2,
		Palette:      []string{"#00f5ff", "#7f5cff"},
	}
}

// Particle is a drifting point. It is reset in place when it leaves the canvas.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   colorful.Color
	Opacity float64
}

// ParticleField draws drifting particles over a viewport-sized canvas and links
// the ones that are close to each other.
type ParticleField struct {
	opts      ParticleOptions
	env       Env
	rng       *rand.Rand
	count     int
	palette   []colorful.Color
	particles []Particle
	width     float64
	height    float64
	frame     FrameID
	frames    uint64
}

func NewParticleField(opts ParticleOptions, env Env) *ParticleField {
	count := opts.PointerCount
	if env.Touch {
		count = opts.TouchCount
	}
	return &ParticleField{
		opts:    opts,
		env:     env,
		rng:     env.rng(),
		count:   count,
		palette: parsePalette(opts.Palette),
	}
}

func parsePalette(hexes []string) []colorful.Color {
	out := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			slog.Warn("skipping palette colour", "hex", h, "error", err)
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		out = append(out, colorful.Color{R: 1, G: 1, B: 1})
	}
	return out
}

// Start sizes the canvas, allocates the particles and begins the frame loop.
// It does nothing while the field is already running.
func (f *ParticleField) Start() {
	if f.Running() || !f.env.usable() {
		return
	}
	f.resize()
	f.particles = make([]Particle, f.count)
	for i := range f.particles {
		f.reset(&f.particles[i])
	}
	slog.Debug("particle field started", "count", f.count, "width", f.width, "height", f.height)
	f.tick()
}

// Stop cancels the pending frame. The particles are left in place.
func (f *ParticleField) Stop() {
	if !f.Running() {
		return
	}
	f.env.Scheduler.CancelFrame(f.frame)
	f.frame = NoFrame
	slog.Debug("particle field stopped", "frames", f.frames)
}

// OnResize follows the viewport size. Particles now outside are reset on their next move.
func (f *ParticleField) OnResize() {
	if !f.env.usable() {
		return
	}
	f.resize()
}

func (f *ParticleField) Running() bool { return f.frame != NoFrame }

// Particles exposes the live collection.
func (f *ParticleField) Particles() []Particle { return f.particles }

// Frames counts rendered frames since construction.
func (f *ParticleField) Frames() uint64 { return f.frames }

func (f *ParticleField) resize() {
	w, h := f.env.Box.Size()
	f.width, f.height = w, h
	f.env.Surface.Resize(int(w), int(h))
}

func (f *ParticleField) reset(p *Particle) {
	r := f.rng
	p.X = r.Float64() * f.width
	p.Y = r.Float64() * f.height
	p.Size = r.Float64()*2 + 1
	p.VX = r.Float64()*0.5 - 0.25
	p.VY = r.Float64()*0.5 - 0.25
	p.Color = f.palette[0]
	if len(f.palette) > 1 && r.Float64() > 0.5 {
		p.Color = f.palette[1]
	}
	p.Opacity = r.Float64()*0.5 + 0.1
}

func (f *ParticleField) tick() {
	f.draw()
	f.frame = f.env.Scheduler.RequestFrame(f.tick)
}

func (f *ParticleField) draw() {
	s := f.env.Surface
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X > f.width || p.X < 0 || p.Y > f.height || p.Y < 0 {
			f.reset(p)
		}
		s.FillCircle(p.X, p.Y, p.Size, rgba(p.Color, p.Opacity))
	}

	// O(n²); n stays at or below PointerCount.
	for i := range f.particles {
		a := &f.particles[i]
		j := i + 1
		if f.opts.SelfLinks {
			j = i
		}
		for ; j < len(f.particles); j++ {
			b := &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < f.opts.LinkDistance {
				alpha := (1 - d/f.opts.LinkDistance) * f.opts.LinkAlpha
				s.StrokeLine(a.X, a.Y, b.X, b.Y, rgba(a.Color, alpha))
			}
		}
	}
	f.frames++
}

func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
