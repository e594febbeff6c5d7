package page

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	scrollFrequency = 6.0
	scrollDamping   = 1.0
	settleDistance  = 0.5
	settleVelocity  = 5.0
)

// Scroller owns the scroll offset. Wheel and key scrolling are instant;
// anchor jumps ease towards their target on a critically damped spring.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	limit  float64
	easing bool
}

func NewScroller(fps int) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), scrollFrequency, scrollDamping)}
}

// SetLimit sets the largest reachable offset (document height minus viewport height).
func (s *Scroller) SetLimit(limit float64) {
	s.limit = max(limit, 0)
	s.pos = s.clamp(s.pos)
	s.target = s.clamp(s.target)
}

func (s *Scroller) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), s.limit)
}

// ScrollBy moves instantly and cancels any running ease.
func (s *Scroller) ScrollBy(dy float64) {
	s.Jump(s.pos + dy)
}

func (s *Scroller) Jump(y float64) {
	s.pos = s.clamp(y)
	s.target = s.pos
	s.vel = 0
	s.easing = false
}

// ScrollTo eases to y over the next frames.
func (s *Scroller) ScrollTo(y float64) {
	s.target = s.clamp(y)
	s.easing = s.target != s.pos
}

// Step advances one frame and returns the new offset.
func (s *Scroller) Step() float64 {
	if !s.easing {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleDistance && math.Abs(s.vel) < settleVelocity {
		s.pos, s.vel, s.easing = s.target, 0, false
	}
	s.pos = s.clamp(s.pos)
	return s.pos
}

func (s *Scroller) Position() float64 { return s.pos }

func (s *Scroller) Easing() bool { return s.easing }
