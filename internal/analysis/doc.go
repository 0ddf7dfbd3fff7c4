// Package analysis provides spectral tools for bounce traces.
//
// The package includes:
//
//   - [PowerSpectrum]: FFT magnitude of a real series, zero-padded to a power of two
//   - [DominantFrequency]: strongest non-DC frequency of a series
//   - [Heights]: height-above-floor series of a recorded run
//   - [BouncePeriods]: time between consecutive floor contacts
//
// # Bounce Frequency
//
// The height of a bouncing ball is close to periodic between bounces, so
// its dominant frequency estimates the bounce rate:
//
//	freq, err := analysis.DominantFrequency(analysis.Heights(result.Samples), 60)
package analysis
