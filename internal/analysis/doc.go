// Package analysis provides spectral tools for headless traces.
//
//   - [FFT]: radix-2 fast Fourier transform
//   - [PowerSpectrum]: magnitude spectrum of a real series
//   - [DominantPeriod]: period of the strongest oscillation
//
// A body on a circular orbit traces a sinusoid in x, so the dominant period
// of its x series approaches 2π/speed frames:
//
//	period := analysis.DominantPeriod(trace.X())
package analysis
