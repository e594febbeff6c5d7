// Package game hosts the portfolio page in an ebiten window: it scrolls the
// page, polls visibility, drives the decorations' frame loop and composites
// their canvases under the page chrome.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/canvas"
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/fx"
	"github.com/iburimskiy/portfolio-fx/internal/page"
)

const (
	navHeight     = 40
	navLinkWidth  = 90
	progressH     = 3
	topButtonSize = 44
	topButtonPad  = 20
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var (
	backgroundColor = color.RGBA{R: 8, G: 10, B: 20, A: 255}
	accentColor     = color.RGBA{R: 0, G: 245, B: 255, A: 255}
	navColor        = color.RGBA{R: 12, G: 14, B: 28, A: 255}
	textDimColor    = color.RGBA{R: 150, G: 160, B: 190, A: 255}
)

type Game struct {
	cfg *config.Config

	doc      *page.Document
	vp       *page.Viewport
	observer *page.Observer
	scroller *page.Scroller
	chrome   page.Chrome

	loop       *fx.FrameLoop
	bgCanvas   *canvas.Canvas
	fireCanvas *canvas.Canvas
	particles  *fx.ParticleField
	embers     *fx.EmberField
	gates      []*fx.Gate

	tap       *frameTap
	lastTick  time.Time
	started   time.Time
	showStats bool

	// input state
	hoveredLink   int
	topHovered    bool
	buttonPressed bool
}

// New lays out the page and wires both decorations to their containers.
// touch selects the reduced particle count.
func New(cfg *config.Config, touch bool) *Game {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)

	specs := make([]page.SectionSpec, len(cfg.Page.Sections))
	for i, s := range cfg.Page.Sections {
		specs[i] = page.SectionSpec{ID: s.ID, Height: s.Height}
	}

	g := &Game{
		cfg:         cfg,
		doc:         page.NewDocument(specs, cfg.Page.FooterHeight, w),
		vp:          page.NewViewport(w, h),
		scroller:    page.NewScroller(config.FPS),
		loop:        fx.NewFrameLoop(),
		bgCanvas:    canvas.New(cfg.Window.Antialias),
		fireCanvas:  canvas.New(cfg.Window.Antialias),
		tap:         newFrameTap(config.FrameTapSize),
		hoveredLink: -1,
		started:     time.Now(),
	}
	g.observer = page.NewObserver(g.vp)
	g.scroller.SetLimit(g.doc.Height() - h)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	p := cfg.Particles
	g.particles = fx.NewParticleField(fx.ParticleOptions{
		PointerCount: p.PointerCount,
		TouchCount:   p.TouchCount,
		LinkDistance: p.LinkDistance,
		LinkAlpha:    p.LinkAlpha,
		SelfLinks:    p.SelfLinks,
		Palette:      p.Palette,
	}, fx.Env{Surface: g.bgCanvas, Box: g.vp, Scheduler: g.loop, Rand: rng, Touch: touch})

	g.embers = fx.NewEmberField(fx.EmberOptions{Count: cfg.Embers.Count},
		fx.Env{Surface: g.fireCanvas, Box: g.doc.Footer, Scheduler: g.loop, Rand: rng})

	if hero := g.doc.Hero(); hero != nil {
		g.gates = append(g.gates, fx.NewGate(g.observer, hero, g.particles.Start, g.particles.Stop))
	}
	g.gates = append(g.gates, fx.NewGate(g.observer, g.doc.Footer, g.embers.Start, g.embers.Stop))
	page.Reveal(g.observer, g.doc.Reveals)

	g.vp.OnResize(g.onResize)

	slog.Info("page ready",
		"sections", len(specs),
		"height", g.doc.Height(),
		"touch", touch,
	)
	return g
}

func (g *Game) onResize() {
	g.doc.Relayout(g.vp.Width)
	g.scroller.SetLimit(g.doc.Height() - g.vp.Height)
	g.particles.OnResize()
	g.embers.OnResize()
	slog.Debug("viewport resized", "width", g.vp.Width, "height", g.vp.Height)
}

// Close stops both decorations and drops their observations.
func (g *Game) Close() {
	for _, gate := range g.gates {
		gate.Close()
	}
	g.particles.Stop()
	g.embers.Stop()
}

func (g *Game) Update() error {
	now := time.Now()
	if !g.lastTick.IsZero() {
		g.tap.record(now.Sub(g.lastTick))
	}
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleInput()

	g.vp.ScrollY = g.scroller.Step()
	g.observer.Poll()
	g.loop.Tick()
	g.chrome = page.ComputeChrome(g.doc, g.vp, g.chrome)
	return nil
}

func (g *Game) handleInput() {
	step := g.cfg.Page.WheelStep

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroller.ScrollBy(-dy * step)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.scroller.ScrollBy(step / 4)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.scroller.ScrollBy(-step / 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scroller.ScrollTo(g.scroller.Position() + g.vp.Height*0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scroller.ScrollTo(g.scroller.Position() - g.vp.Height*0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.scroller.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.scroller.ScrollTo(g.doc.Height())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}
	for i, k := range digitKeys {
		if i < len(g.doc.Sections) && inpututil.IsKeyJustPressed(k) {
			g.jumpTo(i)
		}
	}

	// Nav links and the back-to-top button
	mouseX, mouseY := ebiten.CursorPosition()
	g.hoveredLink = g.linkAt(mouseX, mouseY)
	bx, by := g.topButtonPos()
	g.topHovered = g.chrome.ScrollTopVisible &&
		mouseX >= bx && mouseX <= bx+topButtonSize &&
		mouseY >= by && mouseY <= by+topButtonSize

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = g.hoveredLink >= 0 || g.topHovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed {
			switch {
			case g.topHovered:
				g.scroller.ScrollTo(0)
			case g.hoveredLink >= 0:
				g.jumpTo(g.hoveredLink)
			}
		}
		g.buttonPressed = false
	}
}

// jumpTo eases to the i-th section, leaving room for the navbar.
func (g *Game) jumpTo(i int) {
	sec := g.doc.Sections[i]
	target := sec.Bounds.Y
	if i > 0 {
		target -= navHeight
	}
	slog.Debug("anchor scroll", "section", sec.ID, "target", target)
	g.scroller.ScrollTo(target)
}

func (g *Game) linkX(i int) int {
	return int(g.vp.Width) - (len(g.doc.Sections)-i)*navLinkWidth - 10
}

func (g *Game) linkAt(x, y int) int {
	if y < 0 || y > navHeight {
		return -1
	}
	for i := range g.doc.Sections {
		lx := g.linkX(i)
		if x >= lx && x < lx+navLinkWidth {
			return i
		}
	}
	return -1
}

func (g *Game) topButtonPos() (int, int) {
	return int(g.vp.Width) - topButtonSize - topButtonPad, int(g.vp.Height) - topButtonSize - topButtonPad
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawSections(screen)

	if hero := g.doc.Hero(); hero != nil {
		g.bgCanvas.DrawTo(screen, 0, g.vp.ToScreen(hero.Bounds.Y))
	}
	g.drawFooter(screen)
	g.fireCanvas.DrawTo(screen, 0, g.vp.ToScreen(g.doc.Footer.Bounds.Y))

	g.drawNavbar(screen)
	g.drawProgress(screen)
	g.drawTopButton(screen)

	if g.showStats {
		g.drawStats(screen)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	width := float32(g.vp.Width)
	for i, sec := range g.doc.Sections {
		top := g.vp.ToScreen(sec.Bounds.Y)
		if top > g.vp.Height || top+sec.Bounds.H < 0 {
			continue
		}
		if i > 0 {
			vector.DrawFilledRect(screen, 0, float32(top), width, float32(sec.Bounds.H), sectionTint(i), false)
		}
		ebitenutil.DebugPrintAt(screen, "#"+sec.ID, 24, int(top)+navHeight+12)

		block := g.doc.Reveals[i]
		if block.Revealed {
			bt := g.vp.ToScreen(block.Bounds.Y)
			vector.DrawFilledRect(screen, float32(block.Bounds.X), float32(bt),
				float32(block.Bounds.W), float32(block.Bounds.H), withAlpha(navColor, 0.6), false)
			vector.StrokeRect(screen, float32(block.Bounds.X), float32(bt),
				float32(block.Bounds.W), float32(block.Bounds.H), 1, withAlpha(accentColor, 0.25), false)
		}
	}

	if tl := g.doc.Timeline; tl != nil {
		top := g.vp.ToScreen(tl.Bounds.Y)
		drawn := tl.Bounds.H * g.chrome.TimelinePercent / 100
		vector.DrawFilledRect(screen, float32(tl.Bounds.X), float32(top),
			float32(tl.Bounds.W), float32(tl.Bounds.H), withAlpha(textDimColor, 0.2), false)
		vector.DrawFilledRect(screen, float32(tl.Bounds.X), float32(top),
			float32(tl.Bounds.W), float32(drawn), accentColor, false)
	}
}

func (g *Game) drawFooter(screen *ebiten.Image) {
	f := g.doc.Footer
	top := g.vp.ToScreen(f.Bounds.Y)
	if top > g.vp.Height {
		return
	}
	vector.DrawFilledRect(screen, 0, float32(top), float32(f.Bounds.W), float32(f.Bounds.H), navColor, false)
	ebitenutil.DebugPrintAt(screen, "built with ebiten", 24, int(top)+24)
}

func (g *Game) drawNavbar(screen *ebiten.Image) {
	alpha := 0.4
	if g.chrome.NavScrolled {
		alpha = 0.95
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.vp.Width), navHeight, withAlpha(navColor, alpha), false)

	for i, sec := range g.doc.Sections {
		x := g.linkX(i)
		if sec.ID == g.chrome.ActiveSection {
			vector.DrawFilledRect(screen, float32(x+8), navHeight-6, navLinkWidth-16, 2, accentColor, false)
		}
		if i == g.hoveredLink {
			vector.StrokeRect(screen, float32(x+4), 6, navLinkWidth-8, navHeight-12, 1, withAlpha(accentColor, 0.5), false)
		}
		ebitenutil.DebugPrintAt(screen, sec.ID, x+12, 12)
	}
}

func (g *Game) drawProgress(screen *ebiten.Image) {
	w := g.vp.Width * clamp01(g.chrome.Progress/100)
	vector.DrawFilledRect(screen, 0, 0, float32(w), progressH, accentColor, false)
}

func (g *Game) drawTopButton(screen *ebiten.Image) {
	if !g.chrome.ScrollTopVisible {
		return
	}
	x, y := g.topButtonPos()
	bg := withAlpha(navColor, 0.85)
	if g.topHovered {
		bg = withAlpha(accentColor, 0.35)
	}
	r := float32(topButtonSize) / 2
	vector.DrawFilledCircle(screen, float32(x)+r, float32(y)+r, r, bg, true)
	vector.StrokeCircle(screen, float32(x)+r, float32(y)+r, r, 1, accentColor, true)
	ebitenutil.DebugPrintAt(screen, "^", x+int(r)-3, y+int(r)-8)
}

func (g *Game) drawStats(screen *ebiten.Image) {
	status := fmt.Sprintf(
		"up %s  %.0f fps  scroll %.0f/%.0f (%.0f%%)\n"+
			"particles running=%v frames=%d\n"+
			"embers    running=%v frames=%d\n"+
			"pending frames %d  active #%s",
		formatDuration(time.Since(g.started)), g.tap.fps(),
		g.vp.ScrollY, g.doc.Height(), g.chrome.Progress,
		g.particles.Running(), g.particles.Frames(),
		g.embers.Running(), g.embers.Frames(),
		g.loop.Pending(), g.chrome.ActiveSection,
	)
	ebitenutil.DebugPrintAt(screen, status, 12, navHeight+8)
}

// Layout tracks the window size so the page reflows on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.vp.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
