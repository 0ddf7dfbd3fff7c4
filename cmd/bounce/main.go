package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/This-Is-Prince/learning-physics/internal/config"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

var (
	configFile string
	preset     string
	logLevel   string
	surfaceID  string
	// Physics and scheduler overrides
	frames      int
	maxFPS      float64
	gravity     float64
	restitution float64
	vx          float64
	vy          float64
	// Output
	format    string
	realtime  bool
	gifOutput string
	svgOutput string
	theme     string
	every     int
	scale     float64
	// Scenarios and sweeps
	scenarioFile string
	sweepMin     float64
	sweepMax     float64
	sweepSteps   int
	// Braille surface size, also used by headless runs
	cols = 50
	rows = 25
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bounce",
		Short:         "bouncing ball on a frame scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&surfaceID, "surface", "", "surface id to draw on")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", 0, "frames to draw, 0 for no limit")
	rootCmd.PersistentFlags().Float64Var(&maxFPS, "max-fps", 0, "cap on callbacks per second, 0 for uncapped")
	rootCmd.PersistentFlags().Float64Var(&gravity, "gravity", 0, "gravity per frame")
	rootCmd.PersistentFlags().Float64Var(&restitution, "restitution", 0, "bouncing factor in [0, 1]")
	rootCmd.PersistentFlags().Float64Var(&vx, "vx", 0, "initial horizontal velocity")
	rootCmd.PersistentFlags().Float64Var(&vy, "vy", 0, "initial vertical velocity")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print a summary",
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&format, "format", "", "write the trace to stdout (json, csv)")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace refreshes on the wall clock")

	compareCmd := &cobra.Command{
		Use:   "compare [preset...]",
		Short: "run presets side by side",
		RunE:  comparePresets,
	}
	compareCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file (yaml) instead of presets")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter (gravity, vx, vy, restitution, radius, max_fps)",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepParam,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.1, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot height and vertical velocity",
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the bounce height",
		RunE:  analyzeRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")
	liveCmd.Flags().IntVar(&cols, "cols", 50, "terminal columns for the surface")
	liveCmd.Flags().IntVar(&rows, "rows", 25, "terminal rows for the surface")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a raylib window",
		RunE:  runGUI,
	}

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "render an animated gif",
		RunE:  exportGIF,
	}
	gifCmd.Flags().StringVarP(&gifOutput, "output", "o", "bounce.gif", "output path, - for stdout")
	gifCmd.Flags().IntVar(&every, "every", 2, "capture one frame in every n")
	gifCmd.Flags().Float64Var(&scale, "scale", 0.5, "pixels per surface unit")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the trajectory as svg",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOutput, "output", "o", "-", "output path, - for stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(runCmd, compareCmd, sweepCmd, plotCmd, analyzeCmd, liveCmd, guiCmd, gifCmd, svgCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and changed
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		cfg, err = config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("frames") {
		cfg.Scheduler.Frames = frames
	}
	if flags.Changed("max-fps") {
		cfg.Scheduler.MaxFPS = maxFPS
	}
	if flags.Changed("gravity") {
		cfg.Physics.Gravity = gravity
	}
	if flags.Changed("restitution") {
		cfg.Physics.Restitution = restitution
	}
	if flags.Changed("vx") {
		cfg.Physics.VX = vx
	}
	if flags.Changed("vy") {
		cfg.Physics.VY = vy
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("surface") {
		cfg.Surface.ID = surfaceID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// prepare resolves the config and builds a scene drawing on a small
// braille surface, enough for headless runs.
func prepare(cmd *cobra.Command) (*config.Config, *sim.Scene, *slog.Logger, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)
	scene, err := sim.Build(cfg, surface.BrailleFactory(cols, rows), logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, scene, logger, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput opens path for writing, with "" and "-" meaning the
// command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	return os.Create(path)
}

// writeTo runs write against out and closes it. A close error is returned
// when the write itself succeeded, since buffered data may be lost.
func writeTo(out io.WriteCloser, write func(io.Writer) error) error {
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
