package config

import "slices"

// NewDefaultConfig returns a fresh Config holding every default.
func NewDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:       WindowWidth,
			Height:      WindowHeight,
			Title:       WindowTitle,
			Antialias:   true,
			ErrorDialog: true,
		},
		Device: DeviceConfig{Touch: TouchAuto},
		Particles: ParticlesConfig{
			PointerCount: PointerParticleCount,
			TouchCount:   TouchParticleCount,
			LinkDistance: LinkDistance,
			LinkAlpha:    LinkAlpha,
			Palette:      slices.Clone(DefaultPalette),
		},
		Embers: EmbersConfig{Count: EmberCount},
		Page: PageConfig{
			Sections:     slices.Clone(DefaultSections),
			FooterHeight: FooterHeight,
			WheelStep:    WheelStep,
		},
		Log: LogConfig{Level: DefaultLogLevel, Format: "auto"},
	}
}
