package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/This-Is-Prince/learning-physics/internal/export"
	"github.com/This-Is-Prince/learning-physics/internal/gui"
	"github.com/This-Is-Prince/learning-physics/internal/metrics"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
	"github.com/This-Is-Prince/learning-physics/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, scene, _, err := prepare(cmd)
	if err != nil {
		return err
	}

	view, ok := scene.Context.(*surface.Braille)
	if !ok {
		return errors.New("live view needs a braille surface")
	}

	title := preset
	if title == "" {
		title = "bounce"
	}
	m := viz.NewModel(scene, view, viz.Options{
		Title:      title,
		Theme:      theme,
		MaxFPS:     cfg.Scheduler.MaxFPS,
		RefreshHz:  cfg.Scheduler.RefreshRate,
		Frames:     cfg.Scheduler.Frames,
		StopAtRest: cfg.Scheduler.StopAtRest,
	})
	return viz.Run(cmd.Context(), m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	scene, err := sim.Build(cfg, gui.Factory, logger)
	if err != nil {
		return err
	}

	app := gui.NewApp(scene, gui.Options{
		Title:      "bounce",
		MaxFPS:     cfg.Scheduler.MaxFPS,
		RefreshHz:  cfg.Scheduler.RefreshRate,
		Frames:     cfg.Scheduler.Frames,
		StopAtRest: cfg.Scheduler.StopAtRest,
	})
	return app.Run(cmd.Context())
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	scene, err := sim.Build(cfg, surface.ImageFactory(scale), logger)
	if err != nil {
		return err
	}
	img, ok := scene.Context.(*surface.Image)
	if !ok {
		return errors.New("gif export needs an image surface")
	}

	// Delay in hundredths of a second per captured frame.
	delay := int(float64(every)*cfg.RefreshInterval()/10 + 0.5)
	rec := export.NewGIFRecorder(img, every, delay)
	scene.AddObserver(rec)

	result, err := scene.RunHeadless(cmd.Context(), sim.OptionsFrom(cfg), metrics.NewBounces())
	if err != nil {
		return err
	}

	out, err := openOutput(cmd, gifOutput)
	if err != nil {
		return err
	}
	if err := writeTo(out, rec.Encode); err != nil {
		return fmt.Errorf("write gif: %w", err)
	}
	logger.Info("gif written", "path", gifOutput, "frames", rec.Frames(), "simulated", result.Frames)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, result, err := headless(cmd)
	if err != nil {
		return err
	}

	out, err := openOutput(cmd, svgOutput)
	if err != nil {
		return err
	}
	err = writeTo(out, func(w io.Writer) error {
		return export.WriteSVG(w, result.Samples, cfg.Surface.Width, cfg.Surface.Height, cfg.Ball.Radius, "#00ff00")
	})
	if err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
