package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin without computing a full FFT.
// The explorer uses it as an independent cross-check on the quadrature
// coefficients: over an exactly periodic block the Goertzel magnitude
// at the analysis frequency should agree with the coefficient magnitude
// the trapezoidal integral produces.
//
// The analyzer is stateful; Power and Magnitude reflect every sample
// processed since the last Reset.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	processed  int
}

// NewGoertzel creates an analyzer for the target frequency. frequency
// must lie in [0, sampleRate/2].
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	g := &Goertzel{frequency: frequency, sampleRate: sampleRate}
	g.coeff = 2 * math.Cos(2*math.Pi*frequency/sampleRate)
	return g, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
	g.processed = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
	g.processed += len(input)
}

// Power returns the squared magnitude of the frequency component,
// equivalent to |X[k]|^2 of a DFT over the processed block.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// Amplitude returns the estimated sinusoid amplitude at the target
// frequency, assuming the processed block covers a whole number of
// cycles.
func (g *Goertzel) Amplitude() float64 {
	if g.processed == 0 {
		return 0
	}
	return 2 * g.Magnitude() / float64(g.processed)
}

// ToneAmplitude estimates the amplitude of a single frequency in one
// shot over the given block.
func ToneAmplitude(input []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(input)
	return g.Amplitude(), nil
}
