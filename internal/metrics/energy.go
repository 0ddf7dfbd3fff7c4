package metrics

import (
	"math"

	"github.com/This-Is-Prince/learning-physics/internal/sim"
)

// EnergyLoss is the fraction of the first sample's energy lost by the
// latest sample.
type EnergyLoss struct {
	name          string
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss() *EnergyLoss {
	return &EnergyLoss{name: "energy_loss"}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(s sim.Sample) {
	if e.samples == 0 {
		e.initialEnergy = s.Energy
	}
	e.currentEnergy = s.Energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.samples == 0 || e.initialEnergy == 0 {
		return 0
	}
	return (e.initialEnergy - e.currentEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}

// PeakRebound is the greatest height above the floor reached after the
// first bounce.
type PeakRebound struct {
	name    string
	bounced bool
	peak    float64
}

func NewPeakRebound() *PeakRebound {
	return &PeakRebound{name: "peak_rebound"}
}

func (p *PeakRebound) Name() string { return p.name }

func (p *PeakRebound) Observe(s sim.Sample) {
	if s.Bounced {
		p.bounced = true
		return
	}
	if p.bounced {
		p.peak = math.Max(p.peak, s.Height())
	}
}

func (p *PeakRebound) Value() float64 { return p.peak }

func (p *PeakRebound) Reset() {
	p.bounced = false
	p.peak = 0
}
