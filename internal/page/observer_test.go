package page

import "testing"

func TestObserverTransitions(t *testing.T) {
	t.Parallel()

	vp := NewViewport(800, 600)
	o := NewObserver(vp)
	el := &Element{ID: "box", Bounds: Rect{X: 0, Y: 1000, W: 800, H: 200}}

	var got []bool
	o.Observe(el, 0.1, func(v bool) { got = append(got, v) })

	steps := []struct {
		scroll float64
		want   []bool
	}{
		{0, []bool{false}},                 // initial report
		{410, []bool{false}},               // 5% visible, below threshold
		{430, []bool{false, true}},         // 15% visible
		{1100, []bool{false, true}},        // partly visible, still on
		{1250, []bool{false, true, false}}, // gone
		{1250, []bool{false, true, false}},
	}
	for i, s := range steps {
		vp.ScrollY = s.scroll
		o.Poll()
		if len(got) != len(s.want) {
			t.Fatalf("step %d: callbacks %v, want %v", i, got, s.want)
		}
		for j := range got {
			if got[j] != s.want[j] {
				t.Fatalf("step %d: callbacks %v, want %v", i, got, s.want)
			}
		}
	}
}

func TestObserverNeverIntersecting(t *testing.T) {
	t.Parallel()

	vp := NewViewport(800, 600)
	o := NewObserver(vp)
	el := &Element{Bounds: Rect{Y: 5000, W: 800, H: 100}}
	started := false
	o.Observe(el, 0.1, func(v bool) { started = started || v })
	for y := 0.0; y < 4000; y += 100 {
		vp.ScrollY = y
		o.Poll()
	}
	if started {
		t.Error("visible reported for an element never in view")
	}
}

func TestObserverCancel(t *testing.T) {
	t.Parallel()

	vp := NewViewport(800, 600)
	o := NewObserver(vp)
	calls := 0
	cancel := o.Observe(&Element{Bounds: Rect{W: 10, H: 10}}, 0.1, func(bool) { calls++ })
	cancel()
	o.Poll()
	if calls != 0 || o.Len() != 0 {
		t.Errorf("calls=%d len=%d after cancel", calls, o.Len())
	}
}

type sizeOnly struct{}

func (sizeOnly) Size() (float64, float64) { return 1, 1 }

func TestObserverIgnoresUnplacedTargets(t *testing.T) {
	t.Parallel()

	o := NewObserver(NewViewport(800, 600))
	o.Observe(sizeOnly{}, 0.1, func(bool) { t.Error("callback for unplaced target") })()
	o.Poll()
}

func TestRevealIsOneShot(t *testing.T) {
	t.Parallel()

	d := testDocument(800)
	vp := NewViewport(800, 600)
	o := NewObserver(vp)
	Reveal(o, d.Reveals)

	o.Poll()
	if !d.Reveals[0].Revealed || d.Reveals[2].Revealed {
		t.Fatalf("initial reveal state wrong: %v %v", d.Reveals[0].Revealed, d.Reveals[2].Revealed)
	}

	vp.ScrollY = 1200
	o.Poll()
	vp.ScrollY = 0
	o.Poll()
	if !d.Reveals[2].Revealed {
		t.Error("experience content not revealed")
	}
	if !d.Reveals[0].Revealed {
		t.Error("reveal reverted after scrolling away")
	}
}
