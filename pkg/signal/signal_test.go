package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentEvalAndPeriod(t *testing.T) {
	c := Component{Frequency: 2, Amplitude: 3, Phase: math.Pi / 2}

	// 3*sin(2t + pi/2) = 3*cos(2t)
	assert.InDelta(t, 3.0, c.Eval(0), 1e-12)
	assert.InDelta(t, math.Pi, c.Period(), 1e-12)
}

func TestCompositeEval(t *testing.T) {
	s := Composite{
		{Frequency: 1, Amplitude: 1, Phase: 0},
		{Frequency: 3, Amplitude: 0.5, Phase: 0},
	}

	at := math.Pi / 2
	want := math.Sin(at) + 0.5*math.Sin(3*at)
	assert.InDelta(t, want, s.Eval(at), 1e-12)
}

func TestDefaultComposite(t *testing.T) {
	s := Default()
	require.Len(t, s, 3)

	periods := s.Periods()
	assert.InDelta(t, 2*math.Pi, periods[0], 1e-12)
	assert.InDelta(t, math.Pi, periods[1], 1e-12)
	assert.InDelta(t, 2*math.Pi/3, periods[2], 1e-12)

	// The second component carries the 45 degree shift that produces
	// the highlighted 0.707 coefficients.
	assert.InDelta(t, math.Pi/4, s[1].Phase, 1e-12)
}

func TestSample(t *testing.T) {
	series := Sample(func(t float64) float64 { return 2 * t }, -1, 1, 5)
	require.Len(t, series, 5)

	// Inclusive endpoints, uniform spacing.
	assert.InDelta(t, -1.0, series[0].Time, 1e-12)
	assert.InDelta(t, 1.0, series[4].Time, 1e-12)
	for i := 1; i < len(series); i++ {
		assert.InDelta(t, 0.5, series[i].Time-series[i-1].Time, 1e-12)
	}
	assert.InDelta(t, -2.0, series[0].Value, 1e-12)
	assert.InDelta(t, 0.0, series[2].Value, 1e-12)
}

func TestSampleDegenerate(t *testing.T) {
	assert.Nil(t, Sample(math.Sin, 0, 1, 0))
	assert.Nil(t, Sample(math.Sin, 1, 0, 10))

	single := Sample(math.Sin, 0.5, 1, 1)
	require.Len(t, single, 1)
	assert.InDelta(t, 0.5, single[0].Time, 1e-12)
}

func TestSamplePeriodic(t *testing.T) {
	series := SamplePeriodic(math.Sin, 0, 2*math.Pi, 8)
	require.Len(t, series, 8)

	// Far endpoint excluded: last sample sits one step before the
	// period boundary.
	step := 2 * math.Pi / 8
	assert.InDelta(t, 7*step, series[7].Time, 1e-12)

	assert.Nil(t, SamplePeriodic(math.Sin, 0, 0, 8))
	assert.Nil(t, SamplePeriodic(math.Sin, 0, 1, 0))
}

func TestBasis(t *testing.T) {
	cosine := Basis(BasisCosine, 2)
	sine := Basis(BasisSine, 2)

	assert.InDelta(t, 1.0, cosine(0), 1e-12)
	assert.InDelta(t, 0.0, sine(0), 1e-12)
	assert.InDelta(t, math.Sin(2*0.3), sine(0.3), 1e-12)
}

func TestProduct(t *testing.T) {
	p := Product(func(t float64) float64 { return t }, func(t float64) float64 { return t + 1 })
	assert.InDelta(t, 6.0, p(2), 1e-12)
}

func TestSeriesValuesAndTimes(t *testing.T) {
	series := Series{{Time: 1, Value: 10}, {Time: 2, Value: 20}}
	assert.Equal(t, []float64{10, 20}, series.Values())
	assert.Equal(t, []float64{1, 2}, series.Times())
}
