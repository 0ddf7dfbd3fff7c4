package frame

import (
	"context"
	"sync"
	"time"
)

// DefaultRefreshRate is the refresh rate assumed for display hosts.
const DefaultRefreshRate = 60.0

// TickerHost delivers refreshes from a time.Ticker on the goroutine that
// calls Run.
type TickerHost struct {
	start    time.Time
	interval time.Duration

	mu      sync.Mutex
	pending []func()
}

// NewTickerHost creates a host refreshing hz times per second. hz <= 0
// selects DefaultRefreshRate.
func NewTickerHost(hz float64) *TickerHost {
	if hz <= 0 {
		hz = DefaultRefreshRate
	}
	return &TickerHost{
		start:    time.Now(),
		interval: time.Duration(float64(time.Second) / hz),
	}
}

func (h *TickerHost) Now() float64 {
	return float64(time.Since(h.start)) / float64(time.Millisecond)
}

func (h *TickerHost) RequestTick(fn func()) {
	h.mu.Lock()
	h.pending = append(h.pending, fn)
	h.mu.Unlock()
}

// Run delivers refreshes until ctx is done or no tick is pending after a
// refresh. It returns ctx.Err() on cancellation and nil when the tick
// chain ended.
func (h *TickerHost) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		if h.idle() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, fn := range h.take() {
				fn()
			}
		}
	}
}

func (h *TickerHost) take() []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	batch := h.pending
	h.pending = nil
	return batch
}

func (h *TickerHost) idle() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending) == 0
}
