package app

import (
	"context"
	"fmt"
	"os"

	"github.com/RyanBlaney/fourier-explorer/configs"
	"github.com/RyanBlaney/fourier-explorer/internal/explorer"
	"github.com/RyanBlaney/fourier-explorer/internal/render"
	"github.com/RyanBlaney/fourier-explorer/pkg/logging"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	ConfigFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// ExplorerApp handles the explorer application lifecycle
type ExplorerApp struct {
	ctx    *Context
	config *configs.Config
	engine *explorer.Engine
	logger logging.Logger
}

// NewExplorerApp creates a new explorer application
func NewExplorerApp(ctx *Context) (*ExplorerApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if ctx.OutputFormat != "" {
		config.OutputFormat = ctx.OutputFormat
	}
	ctx.Config = config

	engine, err := explorer.NewEngine(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis engine: %w", err)
	}

	logger.Debug("Explorer application initialized", logging.Fields{
		"config_file":    ctx.ConfigFile,
		"output_format":  config.OutputFormat,
		"components":     len(config.Signal.Components),
		"display_period": engine.DisplayPeriod(),
	})

	return &ExplorerApp{
		ctx:    ctx,
		config: config,
		engine: engine,
		logger: logger,
	}, nil
}

// Engine exposes the analysis engine for commands that need direct
// access.
func (app *ExplorerApp) Engine() *explorer.Engine {
	return app.engine
}

func (app *ExplorerApp) renderer() *render.Renderer {
	return render.NewRenderer(app.config.OutputFormat, app.config.Output.Precision, os.Stdout)
}

// RunResolve prints the resolved orthogonal period for one frequency.
func (app *ExplorerApp) RunResolve(omega float64) error {
	res, err := app.engine.Resolve(omega)
	if err != nil {
		return err
	}
	return app.renderer().Resolution(res)
}

// RunAnalyze prints the Fourier coefficients for one frequency.
func (app *ExplorerApp) RunAnalyze(omega float64) error {
	res, err := app.engine.Analyze(omega)
	if err != nil {
		return err
	}
	return app.renderer().Result(res)
}

// RunVerify prints the Goertzel cross-check for one frequency.
func (app *ExplorerApp) RunVerify(omega float64) error {
	res, err := app.engine.Verify(omega)
	if err != nil {
		return err
	}
	return app.renderer().Verify(res)
}

// RunSweep analyzes the whole legal frequency range and prints the
// summary.
func (app *ExplorerApp) RunSweep(ctx context.Context) error {
	summary, err := app.engine.Sweep(ctx)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}
	return app.renderer().Summary(summary)
}

// RunSignal renders the display-window series partitioned by the
// integration window for omega. Table output becomes an ASCII chart;
// structured formats emit the index-aligned partition.
func (app *ExplorerApp) RunSignal(omega float64) error {
	inside, outside, err := app.engine.PartitionDisplay(omega)
	if err != nil {
		return err
	}

	if render.Format(app.config.OutputFormat) == render.FormatTable {
		chart := render.Chart(inside, outside, app.config.Output.ChartRows, app.config.Output.ChartCols)
		_, err = fmt.Fprint(os.Stdout, chart)
		return err
	}

	return app.renderer().Series(inside, outside)
}

// RunSpectrum prints the composite's FFT magnitude spectrum.
func (app *ExplorerApp) RunSpectrum(maxOmega float64) error {
	bins, err := app.engine.Spectrum(maxOmega)
	if err != nil {
		return err
	}
	return app.renderer().Spectrum(bins)
}

// setupLogging configures logging based on context
func setupLogging(ctx *Context) logging.Logger {
	if ctx.Quiet {
		return logging.NewNopLogger()
	}
	if ctx.Verbose {
		return logging.NewLogger("debug")
	}
	return logging.NewDefaultLogger()
}
