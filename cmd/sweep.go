package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/fourier-explorer/internal/app"
)

var (
	sweepMin  float64
	sweepMax  float64
	sweepStep float64
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Analyze the whole legal analysis-frequency range",
	Long: `Scan the analysis frequency across its legal range and report both
Fourier coefficients at every step. Frequencies matching a component of
the composite signal are marked as discovered.

Examples:
  # Sweep with the configured range
  fourier-explorer sweep

  # Custom range and step
  fourier-explorer sweep --min 0.5 --max 3.0 --step 0.25

  # Machine-readable output
  fourier-explorer sweep --output csv`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0,
		"minimum analysis frequency (0 keeps the configured value)")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0,
		"maximum analysis frequency (0 keeps the configured value)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0,
		"frequency step (0 keeps the configured value)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	// Range overrides feed viper before the config is unmarshaled so
	// the display window is sized from the same range that is swept.
	if sweepMin > 0 {
		viper.Set("analysis.min_frequency", sweepMin)
	}
	if sweepMax > 0 {
		viper.Set("analysis.max_frequency", sweepMax)
	}
	if sweepStep > 0 {
		viper.Set("analysis.step", sweepStep)
	}

	explorerApp, err := app.NewExplorerApp(&app.Context{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	return explorerApp.RunSweep(context.Background())
}
