package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/fourier-explorer/internal/app"
)

var spectrumMaxOmega float64

// spectrumCmd represents the spectrum command
var spectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "FFT magnitude spectrum of the composite signal",
	Long: `Compute the single-sided FFT magnitude spectrum of the composite
signal over one display period. The component frequencies show up as
isolated peaks, which makes the spectrum a useful cross-check on the
coefficients the quadrature engine extracts one frequency at a time.

Examples:
  # Spectrum up to the default frequency cap
  fourier-explorer spectrum

  # Full spectrum as CSV
  fourier-explorer spectrum --max-omega 0 --output csv`,
	RunE: runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)

	spectrumCmd.Flags().Float64Var(&spectrumMaxOmega, "max-omega", 6.0,
		"drop bins above this angular frequency (0 keeps all bins)")
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	explorerApp, err := app.NewExplorerApp(&app.Context{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	return explorerApp.RunSpectrum(spectrumMaxOmega)
}
