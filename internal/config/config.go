// Package config provides YAML-based configuration for the neurokit CLI.
package config

import (
	"errors"

	"github.com/Dzjnt/NeuroKit/complexity"
)

// Config is the top-level configuration struct for neurokit.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Surrogate SurrogateConfig `mapstructure:"surrogate"`
}

// AnalysisConfig holds complexity analysis settings.
type AnalysisConfig struct {
	Threshold   string `mapstructure:"threshold"`
	Normalize   bool   `mapstructure:"normalize"`
	EntropyBins int    `mapstructure:"entropy_bins"`
}

// SurrogateConfig holds surrogate test settings.
type SurrogateConfig struct {
	N    int   `mapstructure:"n"`
	Seed int64 `mapstructure:"seed"`
}

// Analysis defaults.
const (
	DefaultThreshold   = "median"
	DefaultNormalize   = true
	DefaultEntropyBins = 16
)

// Surrogate test defaults.
const (
	DefaultSurrogateN    = 100
	DefaultSurrogateSeed = 0
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidThreshold indicates an unsupported binarization threshold.
	ErrInvalidThreshold = errors.New("analysis.threshold must be median or mean")
	// ErrInvalidEntropyBins indicates a negative histogram bin count.
	ErrInvalidEntropyBins = errors.New("analysis.entropy_bins must be non-negative")
	// ErrInvalidSurrogateN indicates a surrogate count below 2.
	ErrInvalidSurrogateN = errors.New("surrogate.n must be at least 2")
)

// Validate checks Config invariants and returns the first error found.
// Zero values mean "unset" and pass validation; the loader fills them
// with defaults.
func (c *Config) Validate() error {
	if c.Analysis.Threshold != "" && !complexity.ThresholdMode(c.Analysis.Threshold).Valid() {
		return ErrInvalidThreshold
	}

	if c.Analysis.EntropyBins < 0 {
		return ErrInvalidEntropyBins
	}

	if c.Surrogate.N < 0 || c.Surrogate.N == 1 {
		return ErrInvalidSurrogateN
	}

	return nil
}

// Options maps the analysis section onto complexity options.
func (c *Config) Options() complexity.Options {
	threshold := complexity.ThresholdMode(c.Analysis.Threshold)
	if c.Analysis.Threshold == "" {
		threshold = complexity.ThresholdMedian
	}

	return complexity.Options{
		Threshold: threshold,
		Normalize: c.Analysis.Normalize,
	}
}

// SurrogateSettings maps the surrogate section onto surrogate test
// parameters.
func (c *Config) SurrogateSettings() complexity.SurrogateConfig {
	n := c.Surrogate.N
	if n == 0 {
		n = DefaultSurrogateN
	}

	return complexity.SurrogateConfig{
		N:    n,
		Seed: c.Surrogate.Seed,
	}
}
