package configs

import (
	"math"

	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components.
// The default signal is the fixed teaching composite: unit sinusoids at
// frequencies 1, 2, 3 with a 45 degree phase shift on the second
// component.
func SetDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "table")

	// Composite signal defaults
	v.SetDefault("signal.components", []map[string]any{
		{"frequency": 1.0, "amplitude": 1.0, "phase": 0.0},
		{"frequency": 2.0, "amplitude": 1.0, "phase": math.Pi / 4},
		{"frequency": 3.0, "amplitude": 1.0, "phase": 0.0},
	})

	// Legal analysis-frequency range. The display window is sized from
	// this range once at startup, so widening it changes the x-axis.
	v.SetDefault("analysis.min_frequency", 0.5)
	v.SetDefault("analysis.max_frequency", 3.0)
	v.SetDefault("analysis.step", 0.1)
	v.SetDefault("analysis.tolerance", 1e-6)
	v.SetDefault("analysis.max_concurrency", 4)

	// Sampling defaults
	v.SetDefault("sampling.integration_points", 1001)
	v.SetDefault("sampling.display_points", 2001)

	// Output defaults
	v.SetDefault("output.precision", 3)
	v.SetDefault("output.colors", false)
	v.SetDefault("output.chart_rows", 17)
	v.SetDefault("output.chart_cols", 96)
}
