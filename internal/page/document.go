// Package page models the scrollable portfolio page the decorations live on:
// its layout, the viewport over it, visibility polling and scroll-driven chrome.
package page

// Rect is an axis-aligned box in document coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Area() float64 { return r.W * r.H }

// Intersect returns the overlap of r and o, or a zero Rect when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

type Kind int

const (
	KindSection Kind = iota
	KindFooter
	KindTimeline
	KindReveal
)

// Element is a laid-out block of the page.
type Element struct {
	ID       string
	Kind     Kind
	Bounds   Rect
	Revealed bool
}

// Size reports the element's rendered box, like offsetWidth/offsetHeight.
func (e *Element) Size() (w, h float64) { return e.Bounds.W, e.Bounds.H }

func (e *Element) Rect() Rect { return e.Bounds }

// SectionSpec describes one section in page order.
type SectionSpec struct {
	ID     string
	Height float64
}

// TimelineSection hosts the timeline element when present.
const TimelineSection = "experience"

// Document is the page laid out top to bottom: sections, then the footer.
type Document struct {
	Sections []*Element
	Footer   *Element
	Timeline *Element
	Reveals  []*Element
	specs    []SectionSpec
	footerH  float64
	height   float64
}

func NewDocument(sections []SectionSpec, footerHeight, width float64) *Document {
	d := &Document{specs: sections, footerH: footerHeight}
	for _, s := range sections {
		d.Sections = append(d.Sections, &Element{ID: s.ID, Kind: KindSection})
		d.Reveals = append(d.Reveals, &Element{ID: s.ID + "-content", Kind: KindReveal})
		if s.ID == TimelineSection {
			d.Timeline = &Element{ID: "timeline", Kind: KindTimeline}
		}
	}
	d.Footer = &Element{ID: "footer", Kind: KindFooter}
	d.Relayout(width)
	return d
}

// Relayout recomputes every box for a new page width. Heights are fixed.
func (d *Document) Relayout(width float64) {
	y := 0.0
	for i, s := range d.specs {
		sec := d.Sections[i]
		sec.Bounds = Rect{X: 0, Y: y, W: width, H: s.Height}
		d.Reveals[i].Bounds = Rect{X: width * 0.1, Y: y + s.Height*0.25, W: width * 0.8, H: s.Height * 0.5}
		if s.ID == TimelineSection && d.Timeline != nil {
			d.Timeline.Bounds = Rect{X: width/2 - 2, Y: y + 80, W: 4, H: max(s.Height-160, 1)}
		}
		y += s.Height
	}
	d.Footer.Bounds = Rect{X: 0, Y: y, W: width, H: d.footerH}
	d.height = y + d.footerH
}

// Height is the full scrollable height.
func (d *Document) Height() float64 { return d.height }

// Hero is the first section; the particle field sits behind it.
func (d *Document) Hero() *Element {
	if len(d.Sections) == 0 {
		return nil
	}
	return d.Sections[0]
}

func (d *Document) Section(id string) *Element {
	for _, s := range d.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}
