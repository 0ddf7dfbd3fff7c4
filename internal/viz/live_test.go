package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/This-Is-Prince/learning-physics/internal/config"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

func newTestModel(t *testing.T, opts Options) (Model, *surface.Braille) {
	t.Helper()
	cfg := config.DefaultConfig()
	doc := surface.NewDocument(surface.BrailleFactory(40, 20), true, nil)
	scene, err := sim.Setup(cfg, doc)
	require.NoError(t, err)

	b, ok := scene.Context.(*surface.Braille)
	require.True(t, ok)
	return NewModel(scene, b, opts), b
}

func tickAt(m Model, start time.Time, ms int) (Model, tea.Cmd) {
	next, cmd := m.Update(TickMsg(start.Add(time.Duration(ms) * time.Millisecond)))
	return next.(Model), cmd
}

func TestModelTickDrivesScene(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	start := m.host.start

	require.NotNil(t, m.Init())
	require.True(t, m.sched.Active())

	var cmd tea.Cmd
	for i := 1; i <= 3; i++ {
		m, cmd = tickAt(m, start, 16*i)
		require.NotNil(t, cmd)
	}

	require.Equal(t, 3, m.scene.Frames())
	require.Equal(t, 3, m.panel.last.Frame)
	require.InDelta(t, 0.048, m.panel.last.Time, 1e-9)
}

func TestModelCapped(t *testing.T) {
	m, _ := newTestModel(t, Options{MaxFPS: 50})
	start := m.host.start
	m.Init()

	for i := 1; i <= 6; i++ {
		m, _ = tickAt(m, start, 10*i)
	}
	require.Equal(t, 3, m.scene.Frames())
}

func TestModelStopsAfterFrames(t *testing.T) {
	m, _ := newTestModel(t, Options{Frames: 2})
	start := m.host.start
	m.Init()

	m, cmd := tickAt(m, start, 16)
	require.NotNil(t, cmd)
	m, cmd = tickAt(m, start, 32)
	require.Nil(t, cmd)
	require.False(t, m.sched.Active())

	m, _ = tickAt(m, start, 48)
	require.Equal(t, 2, m.scene.Frames())
	require.Contains(t, m.View(), "STOPPED")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, next.(Model).sched.Active())
}

func TestModelView(t *testing.T) {
	m, b := newTestModel(t, Options{Title: "classic"})
	start := m.host.start
	m.Init()
	m, _ = tickAt(m, start, 16)
	m, _ = tickAt(m, start, 32)

	view := m.View()
	require.Contains(t, view, "CLASSIC")
	require.Contains(t, view, "RUNNING")
	require.Contains(t, view, "Height")
	require.NotEmpty(t, strings.TrimSpace(b.String()))
}

func TestGetTheme(t *testing.T) {
	require.Equal(t, "retro", GetTheme("retro").Name)
	require.Equal(t, "cyberpunk", GetTheme("nope").Name)
	require.Len(t, ThemeNames(), len(Themes))
}
