package sim

import (
	"context"

	"github.com/This-Is-Prince/learning-physics/internal/frame"
)

type metricObserver struct {
	metrics []Metric
}

func (m *metricObserver) OnFrame(s Sample) {
	for _, metric := range m.metrics {
		metric.Observe(s)
	}
}

// run is the shared bookkeeping of one scheduled run.
type run struct {
	scene   *Scene
	opts    Options
	metrics []Metric
	rec     *Recorder
	watch   *metricObserver
	result  *Result
	sched   *frame.Scheduler
}

func (s *Scene) newRun(host frame.Host, opts Options, metrics []Metric) (*run, error) {
	if opts.Frames <= 0 && !opts.StopAtRest {
		return nil, ErrUnbounded
	}
	for _, m := range metrics {
		m.Reset()
	}

	r := &run{
		scene:   s,
		opts:    opts,
		metrics: metrics,
		rec:     &Recorder{Samples: make([]Sample, 0, max(opts.Frames, 0))},
		watch:   &metricObserver{metrics: metrics},
		result:  &Result{Metrics: make(map[string]float64)},
	}
	s.AddObserver(r.rec)
	s.AddObserver(r.watch)
	r.sched = frame.New(host, r.frame, opts.MaxFPS)
	return r, nil
}

func (r *run) frame(dt float64) {
	r.scene.Frame(dt)
	r.result.Frames++
	if r.opts.Frames > 0 && r.result.Frames >= r.opts.Frames {
		r.sched.Stop()
	}
	if r.opts.StopAtRest && r.scene.Physics.AtRest() {
		r.sched.Stop()
	}
}

func (r *run) finish(refreshes int) *Result {
	r.sched.Stop()
	r.scene.RemoveObserver(r.rec)
	r.scene.RemoveObserver(r.watch)

	r.result.Samples = r.rec.Samples
	r.result.Refreshes = refreshes
	r.result.AtRest = r.scene.Physics.AtRest()
	for _, m := range r.metrics {
		r.result.Metrics[m.Name()] = m.Value()
	}
	return r.result
}

// RunHeadless drives the scene from a virtual host until the frame limit
// is reached, the ball comes to rest (with StopAtRest) or ctx is done.
// On cancellation the partial result is returned with ctx.Err().
func (s *Scene) RunHeadless(ctx context.Context, opts Options, metrics ...Metric) (*Result, error) {
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	maxRefreshes := opts.MaxRefreshes
	if maxRefreshes <= 0 {
		maxRefreshes = DefaultMaxRefreshes
	}

	host := frame.NewStepHost(interval)
	r, err := s.newRun(host, opts, metrics)
	if err != nil {
		return nil, err
	}

	r.sched.Start()
	for host.Refreshes() < maxRefreshes {
		if err = ctx.Err(); err != nil {
			break
		}
		if host.Advance(1) == 0 {
			break
		}
	}
	return r.finish(host.Refreshes()), err
}

// RunRealtime is RunHeadless on the wall clock: refreshes come from a
// ticker at the configured refresh interval. MaxRefreshes is ignored.
func (s *Scene) RunRealtime(ctx context.Context, opts Options, metrics ...Metric) (*Result, error) {
	hz := frame.DefaultRefreshRate
	if opts.RefreshInterval > 0 {
		hz = 1000 / opts.RefreshInterval
	}

	host := frame.NewTickerHost(hz)
	counter := &countingHost{Host: host}
	r, err := s.newRun(counter, opts, metrics)
	if err != nil {
		return nil, err
	}

	r.sched.Start()
	err = host.Run(ctx)
	return r.finish(counter.refreshes), err
}

// countingHost counts the ticks delivered through it.
type countingHost struct {
	frame.Host
	refreshes int
}

func (c *countingHost) RequestTick(fn func()) {
	c.Host.RequestTick(func() {
		c.refreshes++
		fn()
	})
}
