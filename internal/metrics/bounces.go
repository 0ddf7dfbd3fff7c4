package metrics

import "github.com/This-Is-Prince/learning-physics/internal/sim"

type Bounces struct {
	name  string
	count int
}

func NewBounces() *Bounces {
	return &Bounces{name: "bounces"}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) Observe(s sim.Sample) {
	if s.Bounced {
		b.count++
	}
}

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) Reset() { b.count = 0 }

// RestFrame is the first frame at which the ball was at rest, -1 if it
// never came to rest.
type RestFrame struct {
	name  string
	frame int
}

func NewRestFrame() *RestFrame {
	return &RestFrame{name: "rest_frame", frame: -1}
}

func (r *RestFrame) Name() string { return r.name }

func (r *RestFrame) Observe(s sim.Sample) {
	if s.AtRest && r.frame < 0 {
		r.frame = s.Frame
	}
}

func (r *RestFrame) Value() float64 { return float64(r.frame) }

func (r *RestFrame) Reset() { r.frame = -1 }

// All returns a fresh instance of every metric.
func All() []sim.Metric {
	return []sim.Metric{
		NewBounces(),
		NewPeakRebound(),
		NewEnergyLoss(),
		NewRestFrame(),
	}
}
