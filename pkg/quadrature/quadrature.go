package quadrature

import (
	"errors"
	"math"
	"strconv"

	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
)

// ErrInvalidPeriod is returned when a non-positive or non-finite period
// reaches the integrator. Letting it through would propagate NaN or Inf
// into the display layer.
var ErrInvalidPeriod = errors.New("integration period must be positive and finite")

// Integrate applies the composite trapezoidal rule to samples taken
// over one resolved period and scales the result by 2/period, the
// standard Fourier inner-product normalization.
//
// The samples are assumed to span the full period inclusive of both
// endpoints, so the step is period/(n-1). The rule is open-ended: no
// wrap segment from the last sample back to the first is added. For an
// exactly periodic integrand the two endpoint samples carry the same
// value, so the inclusive grid slightly double-weights that value; the
// display-rounding thresholds are tuned around this discretization.
//
// Fewer than two samples yield 0 with no error: there are no pairs to
// sum, and an empty series is a neutral condition rather than a
// failure.
func Integrate(samples []float64, period float64) (float64, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return 0, ErrInvalidPeriod
	}
	if len(samples) < 2 {
		return 0, nil
	}

	dt := period / float64(len(samples)-1)
	var sum float64
	for i := 0; i < len(samples)-1; i++ {
		sum += (samples[i] + samples[i+1]) * dt / 2
	}

	return sum * 2 / period, nil
}

// IntegrateSeries integrates the values of a sampled series over the
// given period.
func IntegrateSeries(series signal.Series, period float64) (float64, error) {
	return Integrate(series.Values(), period)
}

// PartitionByWindow splits a series into an inside bucket and an
// outside bucket relative to [start, end], inclusive on both ends.
//
// Both outputs have the same length as the input and align
// index-for-index: for every i exactly one of inside[i], outside[i]
// carries the sampled value while the other carries NaN as a "no data"
// marker. Renderers can draw the two as overlapping partial series
// without reflowing indices or knowing anything about windows.
func PartitionByWindow(series signal.Series, start, end float64) (inside, outside signal.Series) {
	inside = make(signal.Series, len(series))
	outside = make(signal.Series, len(series))

	for i, p := range series {
		inside[i] = signal.Point{Time: p.Time, Value: math.NaN()}
		outside[i] = signal.Point{Time: p.Time, Value: math.NaN()}
		if p.Time >= start && p.Time <= end {
			inside[i].Value = p.Value
		} else {
			outside[i].Value = p.Value
		}
	}

	return inside, outside
}

// FormatCoefficient renders a coefficient the way the teaching tool
// displays it. Values near zero collapse to "0", values near
// sqrt(2)/2 are pinned to the literal "0.707" the lesson is built
// around, and everything else rounds to the nearest integer.
//
// This is a deliberately lossy, pedagogy-driven policy with fixed
// literal thresholds, not general numeric formatting.
func FormatCoefficient(v float64) string {
	switch {
	case math.Abs(v) < 0.001:
		return "0"
	case math.Abs(v-0.707) < 0.01:
		return "0.707"
	case math.Abs(v+0.707) < 0.01:
		return "-0.707"
	default:
		return strconv.Itoa(int(math.Round(v)))
	}
}
