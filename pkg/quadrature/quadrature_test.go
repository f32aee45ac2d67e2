package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
)

func constantSamples(v float64, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = v
	}
	return samples
}

func TestIntegrateConstant(t *testing.T) {
	// The trapezoidal rule is exact on constants: the result is 2v for
	// any sample count and any period.
	for _, n := range []int{2, 3, 10, 1000} {
		for _, period := range []float64{1, math.Pi, 4 * math.Pi} {
			got, err := Integrate(constantSamples(1.5, n), period)
			require.NoError(t, err)
			assert.InDelta(t, 3.0, got, 1e-12, "n=%d period=%v", n, period)
		}
	}
}

func TestIntegrateDegenerateSeries(t *testing.T) {
	got, err := Integrate(nil, math.Pi)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = Integrate([]float64{42}, math.Pi)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestIntegrateInvalidPeriod(t *testing.T) {
	for _, period := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Integrate([]float64{1, 2, 3}, period)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "period %v", period)
	}
}

func TestIntegrateSineProducts(t *testing.T) {
	const n = 1001
	period := 2 * math.Pi

	// sin(t)*sin(t) over one period: coefficient 1.
	matched := signal.Sample(func(t float64) float64 {
		return math.Sin(t) * math.Sin(t)
	}, -math.Pi, math.Pi, n)
	got, err := IntegrateSeries(matched, period)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)

	// sin(t)*sin(2t): orthogonal, coefficient 0.
	orthogonal := signal.Sample(func(t float64) float64 {
		return math.Sin(t) * math.Sin(2*t)
	}, -math.Pi, math.Pi, n)
	got, err = IntegrateSeries(orthogonal, period)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-6)
}

func TestPartitionByWindow(t *testing.T) {
	series := signal.Series{
		{Time: -2, Value: 0.1},
		{Time: -1, Value: 0.2},
		{Time: 0, Value: 0.3},
		{Time: 1, Value: 0.4},
		{Time: 2, Value: 0.5},
	}

	inside, outside := PartitionByWindow(series, -1, 1)

	require.Len(t, inside, len(series))
	require.Len(t, outside, len(series))

	for i := range series {
		assert.Equal(t, series[i].Time, inside[i].Time)
		assert.Equal(t, series[i].Time, outside[i].Time)

		insideHolds := !math.IsNaN(inside[i].Value)
		outsideHolds := !math.IsNaN(outside[i].Value)
		assert.NotEqual(t, insideHolds, outsideHolds,
			"exactly one bucket must hold the sample at index %d", i)

		if insideHolds {
			assert.Equal(t, series[i].Value, inside[i].Value)
		} else {
			assert.Equal(t, series[i].Value, outside[i].Value)
		}
	}

	// Window bounds are inclusive on both ends.
	assert.False(t, math.IsNaN(inside[1].Value))
	assert.False(t, math.IsNaN(inside[3].Value))
	assert.True(t, math.IsNaN(inside[0].Value))
	assert.True(t, math.IsNaN(inside[4].Value))
}

func TestPartitionByWindowEmpty(t *testing.T) {
	inside, outside := PartitionByWindow(nil, -1, 1)
	assert.Empty(t, inside)
	assert.Empty(t, outside)
}

func TestFormatCoefficient(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.0003, "0"},
		{-0.0009, "0"},
		{0.706, "0.707"},
		{0.7, "0.707"},
		{-0.71, "-0.707"},
		{2.4, "2"},
		{1.0, "1"},
		{-1.2, "-1"},
		{0.6, "1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCoefficient(tt.value), "value=%v", tt.value)
	}
}
