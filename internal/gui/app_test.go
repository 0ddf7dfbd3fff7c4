package gui

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/This-Is-Prince/learning-physics/internal/body"
	"github.com/This-Is-Prince/learning-physics/internal/physics"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

func newScene(t *testing.T, ctx surface.Context) *sim.Scene {
	t.Helper()
	bounce, err := physics.New(physics.DefaultParams())
	require.NoError(t, err)
	return sim.NewScene(body.NewBall(10, 20, 20, color.Black), bounce, ctx)
}

func TestRunRejectsOffscreenSurface(t *testing.T) {
	app := NewApp(newScene(t, surface.NewImage(50, 50, 1)), Options{Frames: 1})
	err := app.Run(context.Background())
	require.ErrorContains(t, err, "*surface.Image")
}
