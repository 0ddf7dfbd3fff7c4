package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/This-Is-Prince/learning-physics/internal/frame"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
)

const historyCapacity = 120

type TickMsg time.Time

// host turns tick messages into frame refreshes. It lives behind a
// pointer so copies of Model share it.
type host struct {
	start   time.Time
	now     float64
	pending []func()
}

func (h *host) Now() float64 { return h.now }

func (h *host) RequestTick(fn func()) { h.pending = append(h.pending, fn) }

func (h *host) refresh(t time.Time) {
	h.now = float64(t.Sub(h.start)) / float64(time.Millisecond)
	batch := h.pending
	h.pending = nil
	for _, fn := range batch {
		fn()
	}
}

type Options struct {
	Title      string
	Theme      string
	MaxFPS     float64
	RefreshHz  float64
	Frames     int
	StopAtRest bool
}

// panel keeps what the stats view shows. Shared by pointer with the
// scene observer.
type panel struct {
	last    sim.Sample
	bounces int
	heights []float64
	energy  []float64
}

func (p *panel) OnFrame(s sim.Sample) {
	p.last = s
	if s.Bounced {
		p.bounces++
	}
	p.heights = appendCapped(p.heights, s.Height())
	p.energy = appendCapped(p.energy, s.Energy)
}

func appendCapped(values []float64, v float64) []float64 {
	values = append(values, v)
	if len(values) > historyCapacity {
		values = values[len(values)-historyCapacity:]
	}
	return values
}

// Model is a Bubble Tea model driving a scene through a frame.Scheduler.
type Model struct {
	scene    *sim.Scene
	view     fmt.Stringer
	host     *host
	sched    *frame.Scheduler
	panel    *panel
	opts     Options
	interval time.Duration
	styles   styles
}

// NewModel wires scene to a scheduler hosted by the model. view renders
// the scene's surface, usually a *surface.Braille.
func NewModel(scene *sim.Scene, view fmt.Stringer, opts Options) Model {
	hz := opts.RefreshHz
	if hz <= 0 {
		hz = frame.DefaultRefreshRate
	}
	m := Model{
		scene:    scene,
		view:     view,
		host:     &host{start: time.Now()},
		panel:    &panel{},
		opts:     opts,
		interval: time.Duration(float64(time.Second) / hz),
		styles:   newStyles(GetTheme(opts.Theme)),
	}
	scene.AddObserver(m.panel)

	var sched *frame.Scheduler
	sched = frame.New(m.host, func(dt float64) {
		scene.Frame(dt)
		if opts.Frames > 0 && scene.Frames() >= opts.Frames {
			sched.Stop()
		}
		if opts.StopAtRest && scene.Physics.AtRest() {
			sched.Stop()
		}
	}, opts.MaxFPS)
	m.sched = sched
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.sched.Start()
	return m.tick()
}

// Update delivers refreshes on tick messages until the scheduler stops.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sched.Stop()
			return m, tea.Quit
		}
	case TickMsg:
		m.host.refresh(time.Time(msg))
		if len(m.host.pending) == 0 {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) status() string {
	switch {
	case m.sched.Active():
		return m.styles.running.Render("RUNNING")
	case m.scene.Physics.AtRest():
		return m.styles.rest.Render("AT REST")
	default:
		return m.styles.stopped.Render("STOPPED")
	}
}

func (m Model) View() string {
	p := m.panel
	canvasView := m.styles.canvas.Render(m.view.String())

	title := m.opts.Title
	if title == "" {
		title = "bounce"
	}

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(p.heights) > 1 {
		chart := asciigraph.Plot(p.heights, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Height"))
		s.WriteString(m.styles.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", p.last.Frame))
	row("Time", fmt.Sprintf("%.2fs", p.last.Time))
	row("Position", fmt.Sprintf("%.1f, %.1f", p.last.X, p.last.Y))
	row("Velocity", fmt.Sprintf("%.2f, %.2f", p.last.VX, p.last.VY))
	row("Bounces", fmt.Sprintf("%d", p.bounces))
	if m.sched.MinInterval() > 0 {
		row("Cap", fmt.Sprintf("%.0f fps", m.opts.MaxFPS))
	}
	s.WriteString(m.styles.label.Render("Energy") + m.styles.sparkline(p.energy, 30) + "\n")

	if m.opts.Frames > 0 {
		s.WriteString(m.styles.label.Render("Progress") +
			m.styles.progressBar(float64(p.last.Frame)/float64(m.opts.Frames), 20) + "\n")
	}

	s.WriteString(m.styles.help.Render("\n─────────────────────\nQ:Quit"))
	statsView := m.styles.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run shows the model full screen until the user quits or ctx is done.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
