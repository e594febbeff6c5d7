package fx

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// lifeFloor absorbs the float drift of repeated decay subtraction.
const lifeFloor = 1e-9

// EmberOptions tune the footer flame.
type EmberOptions struct {
	Count int
}

func DefaultEmberOptions() EmberOptions {
	return EmberOptions{Count: 30}
}

// Ember rises from the bottom edge and fades out. Size and opacity both scale with Life.
type Ember struct {
	X, Y   float64
	Size   float64
	Speed  float64
	Life   float64
	Decay  float64
	Hue    float64
	Resets int
}

// Radius is the drawn radius at the current life.
func (e *Ember) Radius() float64 { return e.Size * e.Life }

// EmberField draws a rising, fading flame over its container's footprint.
type EmberField struct {
	opts   EmberOptions
	env    Env
	rng    *rand.Rand
	embers []Ember
	width  float64
	height float64
	frame  FrameID
	frames uint64
}

func NewEmberField(opts EmberOptions, env Env) *EmberField {
	return &EmberField{opts: opts, env: env, rng: env.rng()}
}

// Start sizes the canvas to the container, allocates the embers and begins the
// frame loop. It does nothing while the field is already running.
func (f *EmberField) Start() {
	if f.Running() || !f.env.usable() {
		return
	}
	f.resize()
	f.embers = make([]Ember, f.opts.Count)
	for i := range f.embers {
		f.reset(&f.embers[i])
		f.embers[i].Resets = 0
	}
	slog.Debug("ember field started", "count", len(f.embers), "width", f.width, "height", f.height)
	f.tick()
}

func (f *EmberField) Stop() {
	if !f.Running() {
		return
	}
	f.env.Scheduler.CancelFrame(f.frame)
	f.frame = NoFrame
	slog.Debug("ember field stopped", "frames", f.frames)
}

func (f *EmberField) OnResize() {
	if !f.env.usable() {
		return
	}
	f.resize()
}

func (f *EmberField) Running() bool { return f.frame != NoFrame }

func (f *EmberField) Embers() []Ember { return f.embers }

func (f *EmberField) Frames() uint64 { return f.frames }

func (f *EmberField) resize() {
	w, h := f.env.Box.Size()
	f.width, f.height = w, h
	f.env.Surface.Resize(int(w), int(h))
}

func (f *EmberField) reset(e *Ember) {
	r := f.rng
	e.X = r.Float64() * f.width
	e.Y = f.height + r.Float64()*20
	e.Size = r.Float64()*15 + 10
	e.Speed = r.Float64()*2 + 1
	e.Life = 1
	e.Decay = r.Float64()*0.03 + 0.01
	e.Hue = r.Float64()*20 + 15
	e.Resets++
}

func (f *EmberField) tick() {
	f.draw()
	f.frame = f.env.Scheduler.RequestFrame(f.tick)
}

func (f *EmberField) draw() {
	s := f.env.Surface
	s.Clear()
	for i := range f.embers {
		e := &f.embers[i]
		e.advance()
		if e.Life <= lifeFloor {
			f.reset(e)
		}
		s.FillCircle(e.X, e.Y, e.Radius(), rgba(colorful.Hsl(e.Hue, 1, 0.5), e.Life))
	}
	f.frames++
}

func (e *Ember) advance() {
	e.Y -= e.Speed
	e.Life -= e.Decay
}
