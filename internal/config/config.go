package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Portfolio FX - wheel/arrows scroll, 1-9 jump, Home top, F3 stats, Esc/Q quit"

	FPS = 60

	// Background particle field
	PointerParticleCount = 80
	TouchParticleCount   = 40
	LinkDistance         = 150
	LinkAlpha            = 0.2

	// Footer embers
	EmberCount = 30

	FooterHeight = 260
	WheelStep    = 60

	FrameTapSize = 120

	DefaultLogLevel = "info"
)

// DefaultPalette holds the two accent colours particles pick from.
var DefaultPalette = []string{"#00f5ff", "#7f5cff"}

// DefaultSections is the page outline, top to bottom.
var DefaultSections = []Section{
	{ID: "home", Height: 720},
	{ID: "about", Height: 640},
	{ID: "skills", Height: 700},
	{ID: "projects", Height: 900},
	{ID: "experience", Height: 960},
	{ID: "contact", Height: 620},
}
