package analysis

import "github.com/This-Is-Prince/learning-physics/internal/sim"

func Heights(samples []sim.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Height()
	}
	return out
}

// BouncePeriods returns the elapsed time between consecutive bounces.
func BouncePeriods(samples []sim.Sample) []float64 {
	var periods []float64
	last := -1.0
	for _, s := range samples {
		if !s.Bounced {
			continue
		}
		if last >= 0 {
			periods = append(periods, s.Time-last)
		}
		last = s.Time
	}
	return periods
}
