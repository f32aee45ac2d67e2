package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RyanBlaney/fourier-explorer/pkg/signal"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Composite signal under analysis
	Signal SignalConfig `mapstructure:"signal"`

	// Analysis frequency range and matching tolerances
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Sampling grids
	Sampling SamplingConfig `mapstructure:"sampling"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// SignalConfig declares the components of the composite signal.
type SignalConfig struct {
	Components []ComponentConfig `mapstructure:"components"`
}

// ComponentConfig is one sinusoid of the composite signal.
type ComponentConfig struct {
	Frequency float64 `mapstructure:"frequency"`
	Amplitude float64 `mapstructure:"amplitude"`
	Phase     float64 `mapstructure:"phase"`
}

// AnalysisConfig bounds the legal analysis-frequency range.
type AnalysisConfig struct {
	MinFrequency   float64 `mapstructure:"min_frequency"`
	MaxFrequency   float64 `mapstructure:"max_frequency"`
	Step           float64 `mapstructure:"step"`
	Tolerance      float64 `mapstructure:"tolerance"`
	MaxConcurrency int     `mapstructure:"max_concurrency"`
}

// SamplingConfig sizes the integration and display grids.
type SamplingConfig struct {
	IntegrationPoints int `mapstructure:"integration_points"`
	DisplayPoints     int `mapstructure:"display_points"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision int  `mapstructure:"precision"`
	Colors    bool `mapstructure:"colors"`
	ChartRows int  `mapstructure:"chart_rows"`
	ChartCols int  `mapstructure:"chart_cols"`
}

// Composite converts the declared components into a signal.Composite.
func (s SignalConfig) Composite() signal.Composite {
	comps := make(signal.Composite, len(s.Components))
	for i, c := range s.Components {
		comps[i] = signal.Component{
			Frequency: c.Frequency,
			Amplitude: c.Amplitude,
			Phase:     c.Phase,
		}
	}
	return comps
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if len(config.Signal.Components) == 0 {
		return fmt.Errorf("signal must declare at least one component")
	}

	for i, c := range config.Signal.Components {
		if c.Frequency <= 0 {
			return fmt.Errorf("component %d: frequency must be positive", i)
		}
	}

	if config.Analysis.MinFrequency <= 0 {
		return fmt.Errorf("analysis minimum frequency must be positive")
	}

	if config.Analysis.MaxFrequency < config.Analysis.MinFrequency {
		return fmt.Errorf("analysis maximum frequency must be >= minimum frequency")
	}

	if config.Analysis.Step <= 0 {
		return fmt.Errorf("analysis step must be positive")
	}

	if config.Analysis.MaxConcurrency < 1 {
		return fmt.Errorf("analysis max concurrency must be at least 1")
	}

	if config.Sampling.IntegrationPoints < 2 {
		return fmt.Errorf("integration points must be at least 2")
	}

	if config.Sampling.DisplayPoints < 2 {
		return fmt.Errorf("display points must be at least 2")
	}

	return nil
}
