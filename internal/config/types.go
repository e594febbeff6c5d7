// Package config loads the portfolio-fx settings from YAML, fills in defaults
// and validates the result.
package config

// Config is the full settings tree.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Device    DeviceConfig    `yaml:"device"`
	Particles ParticlesConfig `yaml:"particles"`
	Embers    EmbersConfig    `yaml:"embers"`
	Page      PageConfig      `yaml:"page"`
	Log       LogConfig       `yaml:"log"`
	// Seed fixes the random source. Zero seeds from the runtime.
	Seed uint64 `yaml:"seed"`
}

type WindowConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Title       string `yaml:"title"`
	Antialias   bool   `yaml:"antialias"`
	ErrorDialog bool   `yaml:"error_dialog"`
}

// Touch modes.
const (
	TouchAuto = "auto"
	TouchOn   = "true"
	TouchOff  = "false"
)

type DeviceConfig struct {
	Touch string `yaml:"touch"`
}

type ParticlesConfig struct {
	PointerCount int      `yaml:"pointer_count"`
	TouchCount   int      `yaml:"touch_count"`
	LinkDistance float64  `yaml:"link_distance"`
	LinkAlpha    float64  `yaml:"link_alpha"`
	SelfLinks    bool     `yaml:"self_links"`
	Palette      []string `yaml:"palette"`
}

type EmbersConfig struct {
	Count int `yaml:"count"`
}

type Section struct {
	ID     string  `yaml:"id"`
	Height float64 `yaml:"height"`
}

type PageConfig struct {
	Sections     []Section `yaml:"sections"`
	FooterHeight float64   `yaml:"footer_height"`
	WheelStep    float64   `yaml:"wheel_step"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Format is "text", "json" or "auto" (text on a terminal, JSON otherwise).
	Format string `yaml:"format"`
}
