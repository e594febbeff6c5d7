package page

import "testing"

func TestDocumentLayout(t *testing.T) {
	t.Parallel()

	d := testDocument(1000)
	if d.Height() != 2500 {
		t.Errorf("Height() = %v, want 2500", d.Height())
	}
	if got := d.Section("experience").Bounds.Y; got != 1100 {
		t.Errorf("experience top = %v, want 1100", got)
	}
	if d.Footer.Bounds.Y != 2300 || d.Footer.Bounds.H != 200 {
		t.Errorf("footer = %+v", d.Footer.Bounds)
	}
	if d.Timeline == nil || d.Timeline.Bounds.Y != 1180 {
		t.Errorf("timeline = %+v", d.Timeline)
	}
	if d.Hero().ID != "home" {
		t.Errorf("Hero() = %q", d.Hero().ID)
	}
	if len(d.Reveals) != 4 {
		t.Errorf("reveals = %d, want 4", len(d.Reveals))
	}
}

func TestDocumentRelayoutFollowsWidth(t *testing.T) {
	t.Parallel()

	d := testDocument(1000)
	d.Relayout(400)
	if w, _ := d.Footer.Size(); w != 400 {
		t.Errorf("footer width = %v, want 400", w)
	}
	if d.Height() != 2500 {
		t.Errorf("Height() changed to %v", d.Height())
	}
}

func TestRectIntersect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}},
		{"inside", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, Rect{2, 2, 2, 2}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 0, 5, 5}, Rect{}},
		{"touching", Rect{0, 0, 10, 10}, Rect{10, 0, 5, 5}, Rect{}},
	}
	for _, tt := range tests {
		if got := tt.a.Intersect(tt.b); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
