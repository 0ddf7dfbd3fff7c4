package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns the magnitudes of the first half of the FFT of
// data zero-padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	n := nextPow2(len(data))
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest bin after
// removing the mean. sampleRate is in samples per second.
func DominantFrequency(data []float64, sampleRate float64) (float64, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%w: %d samples", ErrNoData, len(data))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("analysis: invalid sample rate %v", sampleRate)
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if ps[best] == 0 {
		return 0, fmt.Errorf("%w: constant series", ErrNoData)
	}

	n := nextPow2(len(data))
	return float64(best) * sampleRate / float64(n), nil
}

// LowBand returns the lowest quarter of a spectrum without the DC bin,
// widened to two bins where the spectrum has them. It returns nil when
// fewer than two non-DC bins exist.
func LowBand(ps []float64) []float64 {
	if len(ps) < 3 {
		return nil
	}
	hi := min(max(len(ps)/4+1, 3), len(ps))
	return ps[1:hi]
}
