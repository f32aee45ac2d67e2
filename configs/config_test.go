package configs

import (
	"math"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LogLevel:     "info",
		OutputFormat: "table",
		Signal: SignalConfig{
			Components: []ComponentConfig{
				{Frequency: 1, Amplitude: 1, Phase: 0},
				{Frequency: 2, Amplitude: 1, Phase: math.Pi / 4},
			},
		},
		Analysis: AnalysisConfig{
			MinFrequency:   0.5,
			MaxFrequency:   3.0,
			Step:           0.1,
			Tolerance:      1e-6,
			MaxConcurrency: 4,
		},
		Sampling: SamplingConfig{
			IntegrationPoints: 1001,
			DisplayPoints:     2001,
		},
		Output: OutputConfig{Precision: 3, ChartRows: 17, ChartCols: 96},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no components", func(c *Config) { c.Signal.Components = nil }},
		{"non-positive component frequency", func(c *Config) { c.Signal.Components[0].Frequency = 0 }},
		{"non-positive min frequency", func(c *Config) { c.Analysis.MinFrequency = 0 }},
		{"inverted range", func(c *Config) { c.Analysis.MaxFrequency = 0.1 }},
		{"non-positive step", func(c *Config) { c.Analysis.Step = 0 }},
		{"zero concurrency", func(c *Config) { c.Analysis.MaxConcurrency = 0 }},
		{"too few integration points", func(c *Config) { c.Sampling.IntegrationPoints = 1 }},
		{"too few display points", func(c *Config) { c.Sampling.DisplayPoints = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}

func TestDefaultsProduceValidConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults(viper.GetViper())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg))

	require.Len(t, cfg.Signal.Components, 3)
	assert.InDelta(t, math.Pi/4, cfg.Signal.Components[1].Phase, 1e-12)
	assert.InDelta(t, 0.5, cfg.Analysis.MinFrequency, 1e-12)
	assert.InDelta(t, 3.0, cfg.Analysis.MaxFrequency, 1e-12)
	assert.Equal(t, "table", cfg.OutputFormat)
}

func TestCompositeConversion(t *testing.T) {
	cfg := validConfig()
	composite := cfg.Signal.Composite()

	require.Len(t, composite, 2)
	assert.InDelta(t, 2*math.Pi, composite[0].Period(), 1e-12)
	assert.InDelta(t, math.Pi, composite[1].Period(), 1e-12)
}
