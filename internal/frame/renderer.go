package frame

// Renderer owns a single scheduler created on first use.
type Renderer struct {
	host   Host
	maxFPS float64
	loop   *Scheduler
}

func NewRenderer(host Host, maxFPS float64) *Renderer {
	return &Renderer{host: host, maxFPS: maxFPS}
}

// Render starts the render loop. The first call binds callback; later
// calls restart the existing loop and keep the original callback.
func (r *Renderer) Render(callback Callback) *Scheduler {
	if r.loop == nil {
		r.loop = New(r.host, callback, r.maxFPS)
	}
	r.loop.Start()
	return r.loop
}

// Stop halts the loop if one was started.
func (r *Renderer) Stop() {
	if r.loop != nil {
		r.loop.Stop()
	}
}

// Loop returns the underlying scheduler, nil before the first Render.
func (r *Renderer) Loop() *Scheduler { return r.loop }
