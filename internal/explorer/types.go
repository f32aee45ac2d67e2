package explorer

import (
	"time"

	"github.com/RyanBlaney/fourier-explorer/pkg/period"
)

// Coefficient pairs a raw Fourier coefficient with its display form.
type Coefficient struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Result holds the analysis outcome for one analysis frequency.
type Result struct {
	Omega   float64      `json:"omega"`
	Period  float64      `json:"period"`
	PiRatio period.Ratio `json:"pi_ratio"`

	Cosine    Coefficient `json:"cosine"`
	Sine      Coefficient `json:"sine"`
	Magnitude float64     `json:"magnitude"`

	// Discovered is set when the analysis frequency matches one of the
	// composite's component frequencies.
	Discovered       bool    `json:"discovered"`
	MatchedFrequency float64 `json:"matched_frequency,omitempty"`
}

// Resolution reports the resolved orthogonal period for one analysis
// frequency, including the rational pi-ratios behind it.
type Resolution struct {
	Omega          float64 `json:"omega"`
	Period         float64 `json:"period"`
	AnalysisPeriod float64 `json:"analysis_period"`

	PiRatio         period.Ratio   `json:"pi_ratio"`
	ComponentRatios []period.Ratio `json:"component_ratios"`
}

// Summary aggregates a sweep across the analysis-frequency range.
type Summary struct {
	Results []*Result `json:"results"`

	// DisplayPeriod is the fixed display window length, the maximum
	// orthogonal period over the whole legal frequency range.
	DisplayPeriod float64 `json:"display_period"`

	DiscoveredCount int     `json:"discovered_count"`
	MeanMagnitude   float64 `json:"mean_magnitude"`
	MaxMagnitude    float64 `json:"max_magnitude"`

	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	TotalDuration time.Duration `json:"total_duration"`
}

// VerifyResult compares the quadrature coefficient magnitude against an
// independent Goertzel estimate over the same window.
type VerifyResult struct {
	Omega               float64 `json:"omega"`
	QuadratureMagnitude float64 `json:"quadrature_magnitude"`
	GoertzelAmplitude   float64 `json:"goertzel_amplitude"`
	Deviation           float64 `json:"deviation"`
}

// SpectrumBin is one bin of the composite's FFT magnitude spectrum,
// keyed by angular frequency.
type SpectrumBin struct {
	Omega     float64 `json:"omega"`
	Magnitude float64 `json:"magnitude"`
}
