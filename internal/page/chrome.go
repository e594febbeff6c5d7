package page

import "math"

const (
	navScrolledAt   = 50
	scrollTopAt     = 300
	sectionLeadIn   = 150
	timelineStretch = 150
)

// Chrome is the scroll-driven state of the page furniture.
type Chrome struct {
	Progress         float64 // percent of the scrollable height
	NavScrolled      bool
	ScrollTopVisible bool
	ActiveSection    string
	TimelinePercent  float64
}

// ComputeChrome derives the chrome for the current scroll offset. prev carries
// the active section and timeline progress over frames where they do not change.
func ComputeChrome(d *Document, vp *Viewport, prev Chrome) Chrome {
	y := vp.ScrollY
	c := Chrome{
		NavScrolled:      y > navScrolledAt,
		ScrollTopVisible: y > scrollTopAt,
		ActiveSection:    prev.ActiveSection,
		TimelinePercent:  prev.TimelinePercent,
	}

	if scrollable := d.Height() - vp.Height; scrollable > 0 {
		c.Progress = y / scrollable * 100
	}

	for _, s := range d.Sections {
		top := s.Bounds.Y - sectionLeadIn
		if y >= top && y < top+s.Bounds.H {
			c.ActiveSection = s.ID
		}
	}

	if tl := d.Timeline; tl != nil {
		top := vp.ToScreen(tl.Bounds.Y)
		if top < vp.Height && top+tl.Bounds.H > 0 {
			p := (vp.Height - top) / (vp.Height + tl.Bounds.H)
			c.TimelinePercent = math.Min(math.Max(p*timelineStretch, 0), 100)
		}
	}
	return c
}
