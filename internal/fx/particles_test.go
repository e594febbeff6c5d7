package fx

import (
	"math"
	"testing"
)

func TestParticleFieldCountByDevice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		touch bool
		want  int
	}{
		{"pointer", false, 80},
		{"touch", true, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, _, _, _ := testEnv(800, 600)
			env.Touch = tt.touch
			f := NewParticleField(DefaultParticleOptions(), env)
			f.Start()
			if got := len(f.Particles()); got != tt.want {
				t.Errorf("len(Particles()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParticleFieldCountConstantAndInBounds(t *testing.T) {
	t.Parallel()

	env, _, loop, _ := testEnv(320, 200)
	f := NewParticleField(DefaultParticleOptions(), env)
	f.Start()
	for i := 0; i < 2000; i++ {
		loop.Tick()
		if n := len(f.Particles()); n != 80 {
			t.Fatalf("frame %d: %d particles, want 80", i, n)
		}
		for _, p := range f.Particles() {
			if p.X < 0 || p.X > 320 || p.Y < 0 || p.Y > 200 {
				t.Fatalf("frame %d: particle out of bounds at (%v, %v)", i, p.X, p.Y)
			}
			if p.Opacity < 0.1 || p.Opacity > 0.6 {
				t.Fatalf("opacity %v outside [0.1, 0.6]", p.Opacity)
			}
		}
	}
}

func TestParticleFieldResetsImmediatelyOnExit(t *testing.T) {
	t.Parallel()

	env, _, _, _ := testEnv(100, 100)
	f := NewParticleField(ParticleOptions{PointerCount: 1, LinkDistance: 150, LinkAlpha: 0.2}, env)
	f.Start()
	p := &f.Particles()[0]
	p.X, p.Y, p.VX, p.VY = 99.9, 50, 5, 0
	f.draw()
	if p.X < 0 || p.X > 100 {
		t.Errorf("particle still outside after one frame: x=%v", p.X)
	}
}

func TestParticleFieldStartIsIdempotent(t *testing.T) {
	t.Parallel()

	env, _, loop, _ := testEnv(800, 600)
	f := NewParticleField(DefaultParticleOptions(), env)
	f.Start()
	first := &f.Particles()[0]
	f.Start()

	if loop.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", loop.Pending())
	}
	if &f.Particles()[0] != first || len(f.Particles()) != 80 {
		t.Error("second Start reallocated the particles")
	}
}

func TestParticleFieldStopThenStart(t *testing.T) {
	t.Parallel()

	env, _, loop, _ := testEnv(800, 600)
	f := NewParticleField(DefaultParticleOptions(), env)
	f.Start()
	loop.Tick()
	f.Stop()
	f.Stop()

	if f.Running() {
		t.Fatal("Running() after Stop")
	}
	before := f.Frames()
	for i := 0; i < 5; i++ {
		if loop.Tick() != 0 {
			t.Fatal("frame callback fired after Stop")
		}
	}
	if f.Frames() != before {
		t.Errorf("frames advanced while stopped: %d -> %d", before, f.Frames())
	}
	if len(f.Particles()) != 80 {
		t.Error("Stop discarded the particles")
	}

	f.Start()
	if !f.Running() || loop.Pending() != 1 {
		t.Errorf("restart: running=%v pending=%d", f.Running(), loop.Pending())
	}
}

func TestParticleFieldDrawsOneLinkForTwoCloseParticles(t *testing.T) {
	t.Parallel()

	env, surface, _, _ := testEnv(800, 600)
	f := NewParticleField(ParticleOptions{PointerCount: 2, LinkDistance: 150, LinkAlpha: 0.2, Palette: []string{"#00f5ff"}}, env)
	f.Start()
	ps := f.Particles()
	ps[0] = Particle{X: 100, Y: 100, Size: 2, Color: f.palette[0], Opacity: 0.5}
	ps[1] = Particle{X: 160, Y: 180, Size: 2, Color: f.palette[0], Opacity: 0.5}

	f.draw()

	if len(surface.circles) != 2 {
		t.Errorf("circles = %d, want 2", len(surface.circles))
	}
	if len(surface.lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(surface.lines))
	}
	d := math.Hypot(60, 80)
	want := math.Round((1 - d/150) * 0.2 * 255)
	if got := float64(surface.lines[0].clr.A); math.Abs(got-want) > 1 {
		t.Errorf("line alpha = %v, want %v", got, want)
	}
	if c := surface.lines[0].clr; c.R != 0x00 || c.G != 0xf5 || c.B != 0xff {
		t.Errorf("line colour = %v, want first particle's colour", c)
	}
}

func TestParticleFieldSkipsFarPairs(t *testing.T) {
	t.Parallel()

	env, surface, _, _ := testEnv(800, 600)
	f := NewParticleField(ParticleOptions{PointerCount: 2, LinkDistance: 150, LinkAlpha: 0.2}, env)
	f.Start()
	ps := f.Particles()
	ps[0] = Particle{X: 10, Y: 10, Size: 1, Opacity: 0.5}
	ps[1] = Particle{X: 500, Y: 500, Size: 1, Opacity: 0.5}

	f.draw()
	if len(surface.lines) != 0 {
		t.Errorf("lines = %d, want 0", len(surface.lines))
	}
}

// The j-from-i pass adds a zero-length line per particle. Off by default.
func TestParticleFieldSelfLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		self bool
		want int
	}{
		{false, 1},
		{true, 3},
	}
	for _, tt := range tests {
		env, surface, _, _ := testEnv(800, 600)
		f := NewParticleField(ParticleOptions{PointerCount: 2, LinkDistance: 150, LinkAlpha: 0.2, SelfLinks: tt.self}, env)
		f.Start()
		ps := f.Particles()
		ps[0] = Particle{X: 100, Y: 100, Size: 1, Opacity: 0.5}
		ps[1] = Particle{X: 110, Y: 100, Size: 1, Opacity: 0.5}

		f.draw()
		if len(surface.lines) != tt.want {
			t.Errorf("SelfLinks=%v: lines = %d, want %d", tt.self, len(surface.lines), tt.want)
		}
		zero := 0
		for _, l := range surface.lines {
			if l.x0 == l.x1 && l.y0 == l.y1 {
				zero++
			}
		}
		if tt.self && zero != 2 || !tt.self && zero != 0 {
			t.Errorf("SelfLinks=%v: %d zero-length lines", tt.self, zero)
		}
	}
}

func TestParticleFieldResizeKeepsParticles(t *testing.T) {
	t.Parallel()

	env, surface, _, box := testEnv(800, 600)
	f := NewParticleField(DefaultParticleOptions(), env)
	f.Start()
	before := f.Particles()[3]

	box.w, box.h = 400, 300
	f.OnResize()
	if surface.w != 400 || surface.h != 300 {
		t.Errorf("surface = %dx%d, want 400x300", surface.w, surface.h)
	}
	if f.Particles()[3] != before {
		t.Error("OnResize moved particles")
	}
}

func TestParticleFieldWithoutSurfaceIsNoop(t *testing.T) {
	t.Parallel()

	env, _, loop, _ := testEnv(800, 600)
	env.Surface = nil
	f := NewParticleField(DefaultParticleOptions(), env)
	f.Start()
	f.OnResize()
	f.Stop()
	if f.Running() || loop.Pending() != 0 || len(f.Particles()) != 0 {
		t.Error("field without a surface did work")
	}
}
