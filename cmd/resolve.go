package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/fourier-explorer/internal/app"
)

var resolveOmega float64

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the orthogonal period for an analysis frequency",
	Long: `Resolve the minimal time window over which the product of the
composite signal and a test sinusoid at the given frequency is exactly
periodic. Integrating over exactly this window is what makes the
extracted Fourier coefficient frequency-selective.

Examples:
  # Period for an exact component frequency
  fourier-explorer resolve --omega 2.0

  # Period for a frequency between components
  fourier-explorer resolve --omega 1.5 --output json`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().Float64VarP(&resolveOmega, "omega", "w", 1.0,
		"analysis angular frequency (rad/s)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	explorerApp, err := app.NewExplorerApp(&app.Context{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	return explorerApp.RunResolve(resolveOmega)
}
