package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/fourier-explorer/internal/app"
)

var signalOmega float64

// signalCmd represents the signal command
var signalCmd = &cobra.Command{
	Use:   "signal",
	Short: "Display the composite signal and the integration window",
	Long: `Sample the composite signal over the fixed display window and split
it against the integration window for the given analysis frequency.
Table output draws an ASCII chart with the inside-window samples
highlighted ('*') and the outside-window samples faded ('.'); JSON,
YAML, and CSV emit the index-aligned partition.

Examples:
  # Chart the signal with the integration window for omega = 2
  fourier-explorer signal --omega 2.0

  # Emit the partitioned series for another renderer
  fourier-explorer signal --omega 0.5 --output json`,
	RunE: runSignal,
}

func init() {
	rootCmd.AddCommand(signalCmd)

	signalCmd.Flags().Float64VarP(&signalOmega, "omega", "w", 1.0,
		"analysis angular frequency (rad/s)")
}

func runSignal(cmd *cobra.Command, args []string) error {
	explorerApp, err := app.NewExplorerApp(&app.Context{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return err
	}

	return explorerApp.RunSignal(signalOmega)
}
