package sim

import "errors"

// ErrUnbounded indicates a headless run with no frame limit that would
// not stop at rest either.
var ErrUnbounded = errors.New("sim: run has no frame limit and does not stop at rest")

// Sample is the ball's state after one fired frame.
type Sample struct {
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	DT      float64 `json:"dt"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Floor   float64 `json:"floor"`
	Energy  float64 `json:"energy"`
	Bounced bool    `json:"bounced"`
	AtRest  bool    `json:"at_rest"`
}

// Height is the distance between the ball's lowest point and the floor.
func (s Sample) Height() float64 { return s.Floor - s.Y }

type Observer interface {
	OnFrame(s Sample)
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Recorder keeps every sample it observes.
type Recorder struct {
	Samples []Sample
}

func (r *Recorder) OnFrame(s Sample) { r.Samples = append(r.Samples, s) }

type Options struct {
	// Frames is the number of callbacks to fire, 0 for no limit.
	Frames int
	// StopAtRest ends the run on the first frame the ball is at rest.
	StopAtRest bool
	// MaxFPS caps the callback rate, 0 for uncapped.
	MaxFPS float64
	// RefreshInterval is the virtual host's refresh period in milliseconds.
	RefreshInterval float64
	// MaxRefreshes bounds the host refreshes delivered, 0 for DefaultMaxRefreshes.
	MaxRefreshes int
}

const (
	DefaultRefreshInterval = 1000.0 / 60
	DefaultMaxRefreshes    = 1_000_000
)

type Result struct {
	Samples   []Sample
	Frames    int
	Refreshes int
	AtRest    bool
	Metrics   map[string]float64
}

// Final returns the last recorded sample.
func (r *Result) Final() (Sample, bool) {
	if len(r.Samples) == 0 {
		return Sample{}, false
	}
	return r.Samples[len(r.Samples)-1], true
}
