package config

import (
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Validate checks every field and reports all problems at once.
func Validate(cfg *Config) error {
	var errs []ValidationError
	add := func(field, msg string, v any) {
		errs = append(errs, ValidationError{Field: field, Message: msg, Value: v})
	}

	if cfg.Window.Width <= 0 {
		add("window.width", "must be positive", cfg.Window.Width)
	}
	if cfg.Window.Height <= 0 {
		add("window.height", "must be positive", cfg.Window.Height)
	}
	switch cfg.Device.Touch {
	case TouchAuto, TouchOn, TouchOff:
	default:
		add("device.touch", "must be one of auto, true, false", cfg.Device.Touch)
	}

	p := cfg.Particles
	if p.PointerCount < 0 {
		add("particles.pointer_count", "must not be negative", p.PointerCount)
	}
	if p.TouchCount < 0 {
		add("particles.touch_count", "must not be negative", p.TouchCount)
	}
	if p.LinkDistance <= 0 {
		add("particles.link_distance", "must be positive", p.LinkDistance)
	}
	if p.LinkAlpha < 0 || p.LinkAlpha > 1 {
		add("particles.link_alpha", "must be within [0, 1]", p.LinkAlpha)
	}
	if len(p.Palette) == 0 {
		add("particles.palette", "needs at least one colour", nil)
	}
	for _, h := range p.Palette {
		if _, err := colorful.Hex(h); err != nil {
			add("particles.palette", "not a #rrggbb colour", h)
		}
	}

	if cfg.Embers.Count < 0 {
		add("embers.count", "must not be negative", cfg.Embers.Count)
	}

	if len(cfg.Page.Sections) == 0 {
		add("page.sections", "needs at least one section", nil)
	}
	seen := make(map[string]bool, len(cfg.Page.Sections))
	for _, s := range cfg.Page.Sections {
		if s.ID == "" {
			add("page.sections", "section id is empty", nil)
		} else if seen[s.ID] {
			add("page.sections", "duplicate section id", s.ID)
		}
		seen[s.ID] = true
		if s.Height <= 0 {
			add("page.sections", "section height must be positive", s.ID)
		}
	}
	if cfg.Page.FooterHeight <= 0 {
		add("page.footer_height", "must be positive", cfg.Page.FooterHeight)
	}
	if cfg.Page.WheelStep <= 0 {
		add("page.wheel_step", "must be positive", cfg.Page.WheelStep)
	}

	if _, ok := ParseLevel(cfg.Log.Level); !ok {
		add("log.level", "must be one of debug, info, warn, error", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "auto", "text", "json":
	default:
		add("log.format", "must be one of auto, text, json", cfg.Log.Format)
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
