package explorer

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/fourier-explorer/configs"
	"github.com/RyanBlaney/fourier-explorer/pkg/logging"
	"github.com/RyanBlaney/fourier-explorer/pkg/period"
	"github.com/RyanBlaney/fourier-explorer/pkg/quadrature"
	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
	"github.com/RyanBlaney/fourier-explorer/pkg/spectrum"
)

// Engine coordinates period resolution, sampling, and quadrature for
// the composite signal. Every analysis call is a pure function of its
// arguments; the only state fixed at construction is the display
// period, which never changes while the analysis frequency moves.
type Engine struct {
	composite signal.Composite
	analysis  configs.AnalysisConfig
	sampling  configs.SamplingConfig
	logger    logging.Logger

	// Maximum orthogonal period over the legal frequency range,
	// computed once so the display x-axis stays stable.
	displayPeriod float64
}

// NewEngine creates an analysis engine from configuration.
func NewEngine(cfg *configs.Config, logger logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	if err := configs.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	composite := cfg.Signal.Composite()

	displayPeriod, err := period.MaxPeriodOverRange(
		composite.Periods(),
		cfg.Analysis.MinFrequency,
		cfg.Analysis.MaxFrequency,
		cfg.Analysis.Step,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to size display window: %w", err)
	}

	logger.Debug("Analysis engine initialized", logging.Fields{
		"components":     len(composite),
		"min_frequency":  cfg.Analysis.MinFrequency,
		"max_frequency":  cfg.Analysis.MaxFrequency,
		"display_period": displayPeriod,
	})

	return &Engine{
		composite:     composite,
		analysis:      cfg.Analysis,
		sampling:      cfg.Sampling,
		logger:        logger,
		displayPeriod: displayPeriod,
	}, nil
}

// Composite returns the signal under analysis.
func (e *Engine) Composite() signal.Composite {
	return e.composite
}

// DisplayPeriod returns the fixed display window length.
func (e *Engine) DisplayPeriod() float64 {
	return e.displayPeriod
}

// Resolve computes the orthogonal period for one analysis frequency
// along with the rational pi-ratios that produced it.
func (e *Engine) Resolve(omega float64) (*Resolution, error) {
	periods := e.composite.Periods()
	resolved, err := period.ResolvePeriod(periods, omega)
	if err != nil {
		return nil, err
	}

	ratios := make([]period.Ratio, len(periods))
	for i, p := range periods {
		ratios[i] = period.Rationalize(p/math.Pi, period.DefaultTolerance)
	}

	return &Resolution{
		Omega:           omega,
		Period:          resolved,
		AnalysisPeriod:  2 * math.Pi / omega,
		PiRatio:         period.Rationalize(resolved/math.Pi, period.DefaultTolerance),
		ComponentRatios: ratios,
	}, nil
}

// Analyze computes the cosine and sine Fourier coefficients for one
// analysis frequency over its resolved orthogonal period.
func (e *Engine) Analyze(omega float64) (*Result, error) {
	if omega < e.analysis.MinFrequency-e.analysis.Tolerance ||
		omega > e.analysis.MaxFrequency+e.analysis.Tolerance {
		return nil, fmt.Errorf("frequency %.3f outside legal range [%.3f, %.3f]: %w",
			omega, e.analysis.MinFrequency, e.analysis.MaxFrequency, period.ErrInvalidFrequency)
	}

	resolved, err := period.ResolvePeriod(e.composite.Periods(), omega)
	if err != nil {
		return nil, err
	}

	n := e.sampling.IntegrationPoints
	half := resolved / 2

	cosSeries := signal.Sample(
		signal.Product(e.composite.Eval, signal.Basis(signal.BasisCosine, omega)),
		-half, half, n)
	sinSeries := signal.Sample(
		signal.Product(e.composite.Eval, signal.Basis(signal.BasisSine, omega)),
		-half, half, n)

	a, err := quadrature.IntegrateSeries(cosSeries, resolved)
	if err != nil {
		return nil, err
	}
	b, err := quadrature.IntegrateSeries(sinSeries, resolved)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Omega:     omega,
		Period:    resolved,
		PiRatio:   period.Rationalize(resolved/math.Pi, period.DefaultTolerance),
		Cosine:    Coefficient{Value: a, Display: quadrature.FormatCoefficient(a)},
		Sine:      Coefficient{Value: b, Display: quadrature.FormatCoefficient(b)},
		Magnitude: math.Hypot(a, b),
	}

	for _, c := range e.composite {
		if math.Abs(c.Frequency-omega) < e.analysis.Tolerance {
			result.Discovered = true
			result.MatchedFrequency = c.Frequency
			break
		}
	}

	e.logger.Debug("Frequency analyzed", logging.Fields{
		"omega":      omega,
		"period":     resolved,
		"cosine":     result.Cosine.Display,
		"sine":       result.Sine.Display,
		"discovered": result.Discovered,
	})

	return result, nil
}

// Sweep analyzes every frequency in the legal range and aggregates a
// summary. Per-frequency work fans out across a bounded worker pool;
// results come back ordered by frequency regardless of completion
// order.
func (e *Engine) Sweep(ctx context.Context) (*Summary, error) {
	startTime := time.Now()

	omegas := e.sweepFrequencies()

	e.logger.Debug("Starting frequency sweep", logging.Fields{
		"frequencies":     len(omegas),
		"max_concurrency": e.analysis.MaxConcurrency,
	})

	results := make([]*Result, len(omegas))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, e.analysis.MaxConcurrency)

	for i, omega := range omegas {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, w float64) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := e.Analyze(w)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("analysis failed at omega %.3f: %w", w, err)
				}
				mu.Unlock()
				return
			}
			results[idx] = res
		}(i, omega)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	endTime := time.Now()
	summary := &Summary{
		Results:       results,
		DisplayPeriod: e.displayPeriod,
		StartTime:     startTime,
		EndTime:       endTime,
		TotalDuration: endTime.Sub(startTime),
	}

	mags := make([]float64, len(results))
	for i, r := range results {
		mags[i] = r.Magnitude
		if r.Discovered {
			summary.DiscoveredCount++
		}
		if r.Magnitude > summary.MaxMagnitude {
			summary.MaxMagnitude = r.Magnitude
		}
	}
	summary.MeanMagnitude = stat.Mean(mags, nil)

	e.logger.Debug("Frequency sweep completed", logging.Fields{
		"discovered":     summary.DiscoveredCount,
		"max_magnitude":  summary.MaxMagnitude,
		"mean_magnitude": summary.MeanMagnitude,
		"duration_ms":    summary.TotalDuration.Milliseconds(),
	})

	return summary, nil
}

// sweepFrequencies expands the configured range into concrete analysis
// frequencies, inclusive of both bounds.
func (e *Engine) sweepFrequencies() []float64 {
	var omegas []float64
	for w := e.analysis.MinFrequency; w <= e.analysis.MaxFrequency+e.analysis.Step/2; w += e.analysis.Step {
		omegas = append(omegas, w)
	}
	return omegas
}

// DisplaySeries samples the composite over the fixed display window.
func (e *Engine) DisplaySeries() signal.Series {
	half := e.displayPeriod / 2
	return signal.Sample(e.composite.Eval, -half, half, e.sampling.DisplayPoints)
}

// IntegrationWindow returns the bounds of the integration window for
// one analysis frequency. By construction the window never exceeds the
// display window.
func (e *Engine) IntegrationWindow(omega float64) (start, end float64, err error) {
	resolved, err := period.ResolvePeriod(e.composite.Periods(), omega)
	if err != nil {
		return 0, 0, err
	}
	return -resolved / 2, resolved / 2, nil
}

// PartitionDisplay splits the display series into the part inside the
// integration window for omega and the part outside it.
func (e *Engine) PartitionDisplay(omega float64) (inside, outside signal.Series, err error) {
	start, end, err := e.IntegrationWindow(omega)
	if err != nil {
		return nil, nil, err
	}
	inside, outside = quadrature.PartitionByWindow(e.DisplaySeries(), start, end)
	return inside, outside, nil
}

// Verify cross-checks the quadrature coefficient magnitude at omega
// against a Goertzel single-bin amplitude estimate over the same
// resolved period. The two use unrelated arithmetic, so agreement is a
// strong signal the resolver picked a valid orthogonal window.
func (e *Engine) Verify(omega float64) (*VerifyResult, error) {
	result, err := e.Analyze(omega)
	if err != nil {
		return nil, err
	}

	n := e.sampling.IntegrationPoints
	// Exclusive far endpoint: the Goertzel estimate assumes an exactly
	// periodic block with no repeated sample.
	block := signal.SamplePeriodic(e.composite.Eval, -result.Period/2, result.Period, n)

	sampleRate := float64(n) / result.Period
	amp, err := spectrum.ToneAmplitude(block.Values(), omega/(2*math.Pi), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("goertzel cross-check failed: %w", err)
	}

	verify := &VerifyResult{
		Omega:               omega,
		QuadratureMagnitude: result.Magnitude,
		GoertzelAmplitude:   amp,
	}
	if result.Magnitude > 1e-6 {
		verify.Deviation = math.Abs(result.Magnitude-amp) / result.Magnitude
	} else {
		verify.Deviation = math.Abs(result.Magnitude - amp)
	}

	return verify, nil
}

// Spectrum computes the composite's single-sided FFT magnitude
// spectrum over one display period, keyed by angular frequency. Bins
// above maxOmega are dropped; pass 0 to keep everything.
func (e *Engine) Spectrum(maxOmega float64) ([]SpectrumBin, error) {
	n := e.sampling.DisplayPoints
	block := signal.SamplePeriodic(e.composite.Eval, -e.displayPeriod/2, e.displayPeriod, n)

	mags, err := spectrum.Magnitudes(block.Values())
	if err != nil {
		return nil, err
	}

	bins := make([]SpectrumBin, 0, len(mags))
	for i, m := range mags {
		// One display period spans the block, so bin i sits at angular
		// frequency 2*pi*i/displayPeriod.
		w := 2 * math.Pi * float64(i) / e.displayPeriod
		if maxOmega > 0 && w > maxOmega {
			break
		}
		bins = append(bins, SpectrumBin{Omega: w, Magnitude: m})
	}

	return bins, nil
}
