package signal

import "math"

// Component is a single sinusoid A*sin(w*t + phi) inside the composite
// signal under analysis.
type Component struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// Eval evaluates the component at time t.
func (c Component) Eval(t float64) float64 {
	return c.Amplitude * math.Sin(c.Frequency*t+c.Phase)
}

// Period returns the component's fundamental period 2*pi/w.
func (c Component) Period() float64 {
	return 2 * math.Pi / c.Frequency
}

// Composite is the fixed multi-frequency waveform under analysis.
type Composite []Component

// Eval evaluates the sum of all components at time t.
func (s Composite) Eval(t float64) float64 {
	var sum float64
	for _, c := range s {
		sum += c.Eval(t)
	}
	return sum
}

// Periods returns the fundamental periods of all components.
func (s Composite) Periods() []float64 {
	periods := make([]float64, len(s))
	for i, c := range s {
		periods[i] = c.Period()
	}
	return periods
}

// Default returns the teaching composite: unit-amplitude sinusoids at
// frequencies 1, 2, 3. The second component carries a 45 degree phase
// shift, which is what makes both its cosine and sine coefficients come
// out at sqrt(2)/2 and gives the visualization its highlighted 0.707.
func Default() Composite {
	return Composite{
		{Frequency: 1, Amplitude: 1, Phase: 0},
		{Frequency: 2, Amplitude: 1, Phase: math.Pi / 4},
		{Frequency: 3, Amplitude: 1, Phase: 0},
	}
}

// Point is one (time, value) sample.
type Point struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// Series is an ordered sequence of uniformly spaced samples. The
// display grid and the integration grid are both Series but live on
// different time axes and must never be conflated.
type Series []Point

// Values returns the sample values without their timestamps.
func (s Series) Values() []float64 {
	vs := make([]float64, len(s))
	for i, p := range s {
		vs[i] = p.Value
	}
	return vs
}

// Times returns the timestamps without their sample values.
func (s Series) Times() []float64 {
	ts := make([]float64, len(s))
	for i, p := range s {
		ts[i] = p.Time
	}
	return ts
}

// BasisKind selects the probe sinusoid used for coefficient extraction.
type BasisKind string

const (
	BasisCosine BasisKind = "cosine"
	BasisSine   BasisKind = "sine"
)

// Basis returns the probe function of the given kind at frequency
// omega.
func Basis(kind BasisKind, omega float64) func(float64) float64 {
	if kind == BasisCosine {
		return func(t float64) float64 { return math.Cos(omega * t) }
	}
	return func(t float64) float64 { return math.Sin(omega * t) }
}

// Product returns the pointwise product of two functions, typically the
// composite signal and a basis sinusoid.
func Product(f, g func(float64) float64) func(float64) float64 {
	return func(t float64) float64 { return f(t) * g(t) }
}

// Sample evaluates f at n evenly spaced points over [start, end],
// inclusive of both endpoints.
func Sample(f func(float64) float64, start, end float64, n int) Series {
	if n <= 0 || end < start {
		return nil
	}
	if n == 1 {
		return Series{{Time: start, Value: f(start)}}
	}

	step := (end - start) / float64(n-1)
	series := make(Series, n)
	for i := range series {
		t := start + float64(i)*step
		if i == n-1 {
			// Pin the far endpoint so accumulated rounding cannot push
			// it past window bounds checked inclusively downstream.
			t = end
		}
		series[i] = Point{Time: t, Value: f(t)}
	}
	return series
}

// SamplePeriodic evaluates f at n evenly spaced points over one period
// starting at start, excluding the far endpoint. The resulting block is
// exactly periodic, which is what single-bin spectral estimators need.
func SamplePeriodic(f func(float64) float64, start, period float64, n int) Series {
	if n <= 0 || period <= 0 {
		return nil
	}

	step := period / float64(n)
	series := make(Series, n)
	for i := range series {
		t := start + float64(i)*step
		series[i] = Point{Time: t, Value: f(t)}
	}
	return series
}
