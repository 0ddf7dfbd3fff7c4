package sim

import (
	"fmt"
	"log/slog"

	"github.com/This-Is-Prince/learning-physics/internal/body"
	"github.com/This-Is-Prince/learning-physics/internal/config"
	"github.com/This-Is-Prince/learning-physics/internal/physics"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

// OpenSurface finds the configured surface in doc, sizes it and returns
// its 2D context cleared to the background color.
func OpenSurface(cfg *config.Config, doc *surface.Document) (surface.Context, error) {
	el, err := doc.Canvas(cfg.Surface.ID)
	if err != nil {
		return nil, err
	}
	if err := el.SetSize(cfg.Surface.Width, cfg.Surface.Height); err != nil {
		return nil, err
	}
	ctx, err := el.Context2D()
	if err != nil {
		return nil, err
	}

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	ctx.SetClearColor(bg)
	ctx.Clear()
	return ctx, nil
}

// Setup builds the configured scene on a surface from doc.
func Setup(cfg *config.Config, doc *surface.Document) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, err := OpenSurface(cfg, doc)
	if err != nil {
		return nil, fmt.Errorf("open surface: %w", err)
	}

	c, err := cfg.BallColor()
	if err != nil {
		return nil, err
	}
	ball := body.NewBall(cfg.Ball.Radius, cfg.Ball.X, cfg.Ball.Y, c)

	bounce, err := physics.New(cfg.PhysicsParams())
	if err != nil {
		return nil, err
	}
	return NewScene(ball, bounce, ctx), nil
}

// OptionsFrom maps the scheduler section of cfg onto run options.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Frames:          cfg.Scheduler.Frames,
		StopAtRest:      cfg.Scheduler.StopAtRest,
		MaxFPS:          cfg.Scheduler.MaxFPS,
		RefreshInterval: cfg.RefreshInterval(),
	}
}

// Build registers the default surface with the configured size on a new
// document and sets the scene up on it. A different configured surface id
// goes through the document's fallback.
func Build(cfg *config.Config, factory surface.Factory, logger *slog.Logger) (*Scene, error) {
	doc := surface.NewDocument(factory, cfg.Surface.Fallback, logger)
	if _, err := doc.Add(config.DefaultSurfaceID, cfg.Surface.Width, cfg.Surface.Height); err != nil {
		return nil, err
	}
	return Setup(cfg, doc)
}
