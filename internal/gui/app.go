package gui

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/This-Is-Prince/learning-physics/internal/frame"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(40, 40, 40, 255)
)

// Host refreshes once per raylib frame and reads the raylib clock.
type Host struct {
	pending []func()
}

func (h *Host) Now() float64 { return rl.GetTime() * 1000 }

func (h *Host) RequestTick(fn func()) { h.pending = append(h.pending, fn) }

func (h *Host) refresh() {
	batch := h.pending
	h.pending = nil
	for _, fn := range batch {
		fn()
	}
}

type Options struct {
	Title      string
	MaxFPS     float64
	RefreshHz  float64
	Frames     int
	StopAtRest bool
}

type App struct {
	Scene *sim.Scene
	Opts  Options

	host    *Host
	sched   *frame.Scheduler
	window  *Context
	bounces int
}

func NewApp(scene *sim.Scene, opts Options) *App {
	a := &App{Scene: scene, Opts: opts, host: &Host{}}
	a.window, _ = scene.Context.(*Context)
	scene.AddObserver(a)
	a.sched = frame.New(a.host, a.frame, opts.MaxFPS)
	return a
}

func (a *App) OnFrame(s sim.Sample) {
	if s.Bounced {
		a.bounces++
	}
}

func (a *App) frame(dt float64) {
	a.Scene.Frame(dt)
	if a.Opts.Frames > 0 && a.Scene.Frames() >= a.Opts.Frames {
		a.sched.Stop()
	}
	if a.Opts.StopAtRest && a.Scene.Physics.AtRest() {
		a.sched.Stop()
	}
}

func initWindow(width, height int, title string, hz float64) {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(hz))
}

// Run opens a window the size of the scene's surface and blocks until it
// is closed or ctx is done. The scene must draw into a *Context.
func (a *App) Run(ctx context.Context) error {
	if a.window == nil {
		return fmt.Errorf("gui: scene draws into %T, want *gui.Context", a.Scene.Context)
	}
	hz := a.Opts.RefreshHz
	if hz <= 0 {
		hz = frame.DefaultRefreshRate
	}
	title := a.Opts.Title
	if title == "" {
		title = "bounce"
	}

	initWindow(a.Scene.Context.Width(), a.Scene.Context.Height(), title, hz)
	defer rl.CloseWindow()
	defer a.window.Release()

	a.sched.Start()
	defer a.sched.Stop()

	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Draw()
	}
	return nil
}

func (a *App) Draw() {
	rl.BeginDrawing()

	// Refreshes skipped by the cap or after a stop present the last frame.
	a.host.refresh()
	a.window.Present()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	col := ColSelect
	switch {
	case a.sched.Active():
	case a.Scene.Physics.AtRest():
		status, col = "AT REST", ColText
	default:
		status, col = "STOPPED", ColTextDim
	}
	rl.DrawText(status, 10, 10, 16, col)
	rl.DrawText(fmt.Sprintf("frame %d  bounces %d", a.Scene.Frames(), a.bounces), 10, 30, 14, ColText)
	rl.DrawFPS(int32(a.Scene.Context.Width())-90, 10)
}
