package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mattn/go-isatty"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/game"
)

type options struct {
	configPath string
	touch      string
	seed       uint64
	selfLinks  bool
	logLevel   string
	width      int
	height     int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "portfolio-fx",
		Short: "Portfolio page decorations: drifting particles and footer embers",
		Long: `portfolio-fx renders a scrollable portfolio page with a particle field
behind the hero and an ember flame in the footer. Each decoration animates
only while its container is on screen.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	f.StringVar(&opts.touch, "touch", "", "touch device mode: auto, true or false")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the runtime)")
	f.BoolVar(&opts.selfLinks, "self-links", false, "also link every particle with itself")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	f.IntVar(&opts.width, "width", 0, "window width")
	f.IntVar(&opts.height, "height", 0, "window height")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fail(nil, err)
	}
	applyFlags(cmd, opts, cfg)
	if err := config.Validate(cfg); err != nil {
		return fail(cfg, err)
	}
	setupLogging(cfg.Log, os.Stderr)

	touch := isTouch(cfg.Device.Touch)
	g := game.New(cfg, touch)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fail(cfg, fmt.Errorf("run: %w", err))
	}
	slog.Info("bye")
	return nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("touch") {
		cfg.Device.Touch = opts.touch
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("self-links") {
		cfg.Particles.SelfLinks = opts.selfLinks
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if f.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Window.Height = opts.height
	}
}

// setupLogging installs the default slog logger: text on a terminal, JSON otherwise.
func setupLogging(lc config.LogConfig, w *os.File) {
	level, _ := config.ParseLevel(lc.Level)
	hopts := &slog.HandlerOptions{Level: level}

	format := lc.Format
	if format == "auto" {
		format = "json"
		if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
			format = "text"
		}
	}
	var h slog.Handler = slog.NewTextHandler(w, hopts)
	if format == "json" {
		h = slog.NewJSONHandler(w, hopts)
	}
	slog.SetDefault(slog.New(h))
}

// isTouch resolves the touch setting. auto means a mobile build.
func isTouch(mode string) bool {
	switch mode {
	case config.TouchOn:
		return true
	case config.TouchOff:
		return false
	}
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// fail logs err and, when enabled, shows it in a native dialog.
func fail(cfg *config.Config, err error) error {
	slog.Error("portfolio-fx failed", "error", err)
	if cfg == nil || cfg.Window.ErrorDialog {
		if derr := zenity.Error(err.Error(), zenity.Title("Portfolio FX")); derr != nil {
			slog.Debug("error dialog unavailable", "error", derr)
		}
	}
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
