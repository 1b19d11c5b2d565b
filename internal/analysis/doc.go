// Package analysis extracts orbital properties from sampled series.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed series
//   - [DominantPeriod]: period of the strongest oscillation
//
// A planet's distance to the star oscillates once per orbit on an
// eccentric path, so the dominant period of its distance series
// estimates the orbital period:
//
//	days := analysis.DominantPeriod(distances, 1)
package analysis
