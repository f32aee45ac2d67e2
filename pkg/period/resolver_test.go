package period

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixed teaching composite has components at frequencies 1, 2, 3,
// so periods 2pi, pi, 2pi/3.
func componentPeriods() []float64 {
	return []float64{2 * math.Pi, math.Pi, 2 * math.Pi / 3}
}

func TestResolvePeriodKnownFrequencies(t *testing.T) {
	tests := []struct {
		name  string
		omega float64
		want  float64
	}{
		{"matching first component", 1.0, 2 * math.Pi},
		{"matching second component", 2.0, 2 * math.Pi},
		{"matching third component", 3.0, 2 * math.Pi},
		{"below all components", 0.5, 4 * math.Pi},
		{"between components", 1.5, 4 * math.Pi},
		{"half-integer above one", 2.5, 4 * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriod(componentPeriods(), tt.omega)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolvePeriodInvalidFrequency(t *testing.T) {
	for _, omega := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ResolvePeriod(componentPeriods(), omega)
		assert.ErrorIs(t, err, ErrInvalidFrequency, "omega %v", omega)
	}
}

func TestRationalizeShortcuts(t *testing.T) {
	tests := []struct {
		x    float64
		want Ratio
	}{
		{2.0, Ratio{2, 1}},
		{1.0, Ratio{1, 1}},
		{2.0 / 3.0, Ratio{2, 3}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rationalize(tt.x, DefaultTolerance), "x=%v", tt.x)
	}
}

func TestRationalizeIntegerAndHalfIntegerFrequencies(t *testing.T) {
	tests := []struct {
		omega float64
		want  Ratio
	}{
		{0.5, Ratio{4, 1}},
		{1.5, Ratio{4, 3}},
		{2.5, Ratio{4, 5}},
		{4.0, Ratio{1, 2}},
		{5.0, Ratio{2, 5}},
	}

	for _, tt := range tests {
		x := 2 / tt.omega // period/pi for the analysis sinusoid
		assert.Equal(t, tt.want, Rationalize(x, DefaultTolerance), "omega=%v", tt.omega)
	}
}

func TestRationalizeContinuedFraction(t *testing.T) {
	// 2/1.3 = 20/13 has no shortcut and needs the expansion.
	r := Rationalize(20.0/13.0, DefaultTolerance)
	assert.Equal(t, Ratio{20, 13}, r)

	// 2/0.7 = 20/7.
	r = Rationalize(20.0/7.0, DefaultTolerance)
	assert.Equal(t, Ratio{20, 7}, r)
}

func TestRationalizeDenominatorBound(t *testing.T) {
	// An irrational input cannot match exactly; the expansion must stop
	// at the denominator bound and still land close.
	r := Rationalize(math.Pi, DefaultTolerance)
	assert.LessOrEqual(t, r.Den, maxDenominator)
	assert.Positive(t, r.Den)
	assert.InDelta(t, math.Pi, r.Float(), 1e-3)
}

func TestRationalizeDegenerateInput(t *testing.T) {
	for _, x := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		r := Rationalize(x, DefaultTolerance)
		assert.Positive(t, r.Den, "x=%v", x)
	}
}

func TestLCMOfPeriods(t *testing.T) {
	assert.Zero(t, LCMOfPeriods(nil))

	got := LCMOfPeriods(componentPeriods())
	assert.InDelta(t, 2*math.Pi, got, 1e-9)

	// A single period is its own LCM.
	got = LCMOfPeriods([]float64{math.Pi})
	assert.InDelta(t, math.Pi, got, 1e-9)
}

func TestMaxPeriodOverRange(t *testing.T) {
	// Coarse scan: the longest window in 0.5..3.0 step 0.5 comes from
	// the half-integer frequencies, at 4pi.
	got, err := MaxPeriodOverRange(componentPeriods(), 0.5, 3.0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, got, 1e-9)

	// Fine scan picks up frequencies like 0.7 whose windows stretch to
	// 20pi.
	got, err = MaxPeriodOverRange(componentPeriods(), 0.5, 3.0, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 20*math.Pi, got, 1e-9)
}

func TestMaxPeriodOverRangeInclusiveUpperBound(t *testing.T) {
	// 0.5 must be visited even when the step lands on it last.
	got, err := MaxPeriodOverRange(componentPeriods(), 0.5, 0.5, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 4*math.Pi, got, 1e-9)
}

func TestMaxPeriodOverRangeInvalid(t *testing.T) {
	_, err := MaxPeriodOverRange(componentPeriods(), 0, 3, 0.1)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = MaxPeriodOverRange(componentPeriods(), 1, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = MaxPeriodOverRange(componentPeriods(), 3, 1, 0.1)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestRatioFloat(t *testing.T) {
	assert.InDelta(t, 0.75, Ratio{3, 4}.Float(), 1e-12)
}
