package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Magnitudes computes single-sided FFT amplitudes for a real signal.
// Bin i corresponds to frequency i * sampleRate / len(samples); values
// are scaled so a pure sinusoid of amplitude A shows up as A in its
// bin (half-spectrum convention, DC excluded from the doubling).
func Magnitudes(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("spectrum: empty signal")
	}

	spec := fft.FFTReal(samples)
	n := len(spec)/2 + 1
	mags := make([]float64, n)
	scale := 2 / float64(len(samples))
	for i := 0; i < n; i++ {
		mags[i] = cmplx.Abs(spec[i]) * scale
	}
	mags[0] /= 2
	return mags, nil
}

// PeakBin returns the index and value of the strongest bin.
func PeakBin(mags []float64) (int, float64) {
	if len(mags) == 0 {
		return -1, 0
	}
	i := floats.MaxIdx(mags)
	return i, mags[i]
}

// BinFrequency converts a bin index to its frequency in the same units
// as sampleRate (per-second for Hz, per-radian-time for angular grids).
func BinFrequency(bin, blockLen int, sampleRate float64) float64 {
	if blockLen == 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(blockLen)
}
