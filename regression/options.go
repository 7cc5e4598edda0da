package regression

import (
	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/options"
)

// FitConfig holds configuration for a single Fit call.
type FitConfig struct {
	// DegenerateError switches the vertical-line policy from the sentinel
	// result to ErrDegenerateInput.
	DegenerateError bool
}

// defaultFitConfig returns the default config (sentinel result for
// degenerate input).
func defaultFitConfig() FitConfig {
	return FitConfig{}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithDegenerateError makes Fit return ErrDegenerateInput instead of the
// zero-valued sentinel result when all x values are identical.
func WithDegenerateError() FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.DegenerateError = true
	})
}

// applyFitOptions applies opts to cfg in order.
func applyFitOptions(cfg *FitConfig, opts ...FitOption) error {
	return options.Apply(cfg, opts...)
}
