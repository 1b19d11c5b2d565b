package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the spectrum
// of data after removing its mean.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
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

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in units of step, of the strongest
// non-constant component of data. It returns 0 when data has fewer than
// four samples, has no variation, or peaks in the lowest frequency bin.
// A peak there means the series spans less than about two cycles, and
// the bin only measures the length of the series.
func DominantPeriod(data []float64, step float64) float64 {
	if len(data) < 4 {
		return 0
	}

	ps := PowerSpectrum(data)
	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] || peak == 0 {
			peak = k
		}
	}
	if ps[peak] == 0 || peak < 2 {
		return 0
	}

	// Parabolic interpolation around the peak bin.
	bin := float64(peak)
	if peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if d := a - 2*b + c; d != 0 {
			bin += 0.5 * (a - c) / d
		}
	}
	return float64(len(data)) * step / bin
}
