package frame

// StepHost is a virtual host whose clock advances by a fixed interval on
// every delivered refresh.
type StepHost struct {
	origin    float64
	interval  float64
	refreshes int
	requests  int
	pending   []func()
}

// NewStepHost creates a host refreshing every interval milliseconds with
// the clock starting at zero.
func NewStepHost(interval float64) *StepHost {
	return &StepHost{interval: interval}
}

// NewStepHostAt is NewStepHost with the clock starting at origin.
func NewStepHostAt(origin, interval float64) *StepHost {
	return &StepHost{origin: origin, interval: interval}
}

// Now is computed from the refresh count so long runs do not accumulate
// rounding drift.
func (h *StepHost) Now() float64 {
	return h.origin + float64(h.refreshes)*h.interval
}

func (h *StepHost) RequestTick(fn func()) {
	h.requests++
	h.pending = append(h.pending, fn)
}

// Advance delivers up to n refreshes and returns how many were delivered.
// It stops early once nothing is pending.
func (h *StepHost) Advance(n int) int {
	delivered := 0
	for delivered < n && len(h.pending) > 0 {
		h.refreshes++
		batch := h.pending
		h.pending = nil
		for _, fn := range batch {
			fn()
		}
		delivered++
	}
	return delivered
}

// Pending reports the number of ticks waiting for the next refresh.
func (h *StepHost) Pending() int { return len(h.pending) }

// Requests reports the total number of RequestTick calls.
func (h *StepHost) Requests() int { return h.requests }

// Refreshes reports the number of refreshes delivered so far.
func (h *StepHost) Refreshes() int { return h.refreshes }

// Interval returns the refresh interval in milliseconds.
func (h *StepHost) Interval() float64 { return h.interval }
