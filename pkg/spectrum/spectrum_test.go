package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tone(frequency, sampleRate float64, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / sampleRate
		samples[i] = math.Sin(2 * math.Pi * frequency * t)
	}
	return samples
}

func TestGoertzelToneAmplitude(t *testing.T) {
	// 5 Hz tone, one full second at 100 Hz: exactly 5 cycles.
	samples := tone(5, 100, 100)

	amp, err := ToneAmplitude(samples, 5, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, amp, 1e-6)

	// A bin-aligned off-target frequency sees nothing.
	amp, err = ToneAmplitude(samples, 10, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, amp, 1e-6)
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(5, 100)
	require.NoError(t, err)

	g.ProcessBlock(tone(5, 100, 100))
	assert.Greater(t, g.Power(), 0.0)

	g.Reset()
	assert.Zero(t, g.Power())
	assert.Zero(t, g.Amplitude())
}

func TestGoertzelInvalidArgs(t *testing.T) {
	_, err := NewGoertzel(5, 0)
	assert.Error(t, err)

	_, err = NewGoertzel(-1, 100)
	assert.Error(t, err)

	// Above Nyquist.
	_, err = NewGoertzel(60, 100)
	assert.Error(t, err)
}

func TestMagnitudes(t *testing.T) {
	samples := tone(5, 100, 100)

	mags, err := Magnitudes(samples)
	require.NoError(t, err)
	require.Len(t, mags, 51)

	bin, peak := PeakBin(mags)
	assert.Equal(t, 5, bin)
	assert.InDelta(t, 1.0, peak, 1e-6)

	assert.InDelta(t, 5.0, BinFrequency(bin, len(samples), 100), 1e-6)
}

func TestMagnitudesEmpty(t *testing.T) {
	_, err := Magnitudes(nil)
	assert.Error(t, err)
}

func TestPeakBinEmpty(t *testing.T) {
	bin, peak := PeakBin(nil)
	assert.Equal(t, -1, bin)
	assert.Zero(t, peak)
}
