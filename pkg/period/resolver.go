package period

import (
	"errors"
	"math"
)

// DefaultTolerance is the matching tolerance used by the exact-fraction
// shortcuts in Rationalize. Slider-style analysis frequencies arrive as
// clean decimals, so a loose tolerance is safe here.
const DefaultTolerance = 1e-6

const (
	// maxDenominator bounds the continued-fraction expansion. Larger
	// denominators would resolve more exotic frequency ratios but blow
	// up the integration window beyond anything displayable.
	maxDenominator = 100

	// remainderFloor stops the expansion once the fractional remainder
	// is numerically indistinguishable from zero.
	remainderFloor = 1e-10

	maxIterations = 30
)

// ErrInvalidFrequency is returned when an analysis frequency is zero,
// negative, or not finite. A zero frequency would imply an infinite
// period and a division by zero further down.
var ErrInvalidFrequency = errors.New("analysis frequency must be positive and finite")

// Ratio is a reduced rational approximation of a real value,
// typically a period expressed as a multiple of pi. Den is always
// positive.
type Ratio struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// Float returns the ratio as a float64.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Rationalize converts a pi-normalized period (x = period/pi) into a
// small integer fraction.
//
// The lookup order matters and is part of the observable behavior:
// exact shortcuts for the fixed composite-signal periods (2, 1, 2/3)
// come first, then the integer and half-integer checks on 2/x that
// cover every period of the form 2/omega for a "nice" slider frequency,
// then a bounded continued-fraction expansion for everything else.
func Rationalize(x, tol float64) Ratio {
	switch {
	case math.Abs(x-2) < tol:
		return Ratio{Num: 2, Den: 1}
	case math.Abs(x-1) < tol:
		return Ratio{Num: 1, Den: 1}
	case math.Abs(x-2.0/3.0) < tol:
		return Ratio{Num: 2, Den: 3}
	}

	if x > 0 {
		// x = 2/omega, so 2/x recovers omega. Integer and half-integer
		// frequencies map to exact fractions without touching the
		// continued-fraction path.
		inv := 2 / x
		if r := math.Round(inv); r > 0 && math.Abs(inv-r) < tol {
			return reduce(2, int(r))
		}
		if r := math.Round(2 * inv); r > 0 && math.Abs(2*inv-r) < tol {
			return reduce(4, int(r))
		}
	}

	return continuedFraction(x)
}

// continuedFraction expands x into convergents p/q and returns the best
// one whose denominator stays within maxDenominator. Terminates in at
// most maxIterations steps for any finite input.
func continuedFraction(x float64) Ratio {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return Ratio{Num: 1, Den: 1}
	}

	h0, k0 := 0, 1
	h1, k1 := 1, 0

	frac := x
	for i := 0; i < maxIterations; i++ {
		a := int(math.Floor(frac))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenominator {
			break
		}
		h0, k0, h1, k1 = h1, k1, h2, k2

		rem := frac - math.Floor(frac)
		if rem < remainderFloor {
			break
		}
		frac = 1 / rem
	}

	return reduce(h1, k1)
}

// reduce lowers num/den to lowest terms with a positive denominator.
func reduce(num, den int) Ratio {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	return Ratio{Num: num, Den: den}
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// LCMOfPeriods returns the smallest period that is an integer multiple
// of every period in the input. Each period is normalized to a rational
// multiple of pi; the result is LCM of the numerators over GCD of the
// denominators, times pi. Returns 0 for an empty input.
func LCMOfPeriods(periods []float64) float64 {
	if len(periods) == 0 {
		return 0
	}

	first := Rationalize(periods[0]/math.Pi, DefaultTolerance)
	num, den := first.Num, first.Den
	for _, p := range periods[1:] {
		r := Rationalize(p/math.Pi, DefaultTolerance)
		num = lcm(num, r.Num)
		den = gcd(den, r.Den)
	}

	return float64(num) / float64(den) * math.Pi
}

// ResolvePeriod computes the minimal period over which the product of
// the composite signal and a test sinusoid at omega is periodic. This
// is the window the quadrature engine integrates over to extract a
// Fourier coefficient.
func ResolvePeriod(componentPeriods []float64, omega float64) (float64, error) {
	if omega <= 0 || math.IsNaN(omega) || math.IsInf(omega, 0) {
		return 0, ErrInvalidFrequency
	}

	all := make([]float64, 0, len(componentPeriods)+1)
	all = append(all, componentPeriods...)
	all = append(all, 2*math.Pi/omega)

	return LCMOfPeriods(all), nil
}

// MaxPeriodOverRange scans the legal analysis-frequency range and
// returns the largest orthogonal period it produces. Computed once at
// startup to size a display window that stays stable while the
// analysis frequency moves.
func MaxPeriodOverRange(componentPeriods []float64, wMin, wMax, wStep float64) (float64, error) {
	if wMin <= 0 || wStep <= 0 || wMax < wMin {
		return 0, ErrInvalidFrequency
	}

	var maxPeriod float64
	// Half a step of slack keeps the upper bound inclusive despite
	// accumulated floating-point error in the scan.
	for w := wMin; w <= wMax+wStep/2; w += wStep {
		p, err := ResolvePeriod(componentPeriods, w)
		if err != nil {
			return 0, err
		}
		if p > maxPeriod {
			maxPeriod = p
		}
	}

	return maxPeriod, nil
}
