package regression

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInsufficientData is returned by Fit when fewer than two
	// observations are provided.
	ErrInsufficientData = errors.New("insufficient data: at least 2 observations required")

	// ErrDegenerateInput is returned by Fit, only when WithDegenerateError
	// is set, for inputs whose x values all coincide.
	ErrDegenerateInput = errors.New("degenerate input: zero variance in x, slope undefined")
)

// degenerateFormula is the sentinel Formula for vertical configurations.
const degenerateFormula = "Undefined (Vertical Line)"

// Fit performs a closed-form ordinary least-squares fit over the given
// observations and returns the fitted line with R², RMSE and a formatted
// equation.
//
// Fit requires at least two observations and fails with ErrInsufficientData
// otherwise. When all x values are identical the slope is undefined; by
// default Fit returns the zero-valued sentinel result described in the
// package documentation, or ErrDegenerateInput when WithDegenerateError is
// set.
//
// The computation is O(n) with two passes over the input. Sums accumulate in
// input order, so a fixed input sequence reproduces bit-identical output.
func Fit(observations []Observation, opts ...FitOption) (*FitResult, error) {
	if len(observations) < 2 {
		return nil, ErrInsufficientData
	}

	cfg := defaultFitConfig()
	if err := applyFitOptions(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid fit option: %w", err)
	}

	n := float64(len(observations))

	var sumX, sumY, sumXY, sumX2 float64
	for _, o := range observations {
		sumX += o.X
		sumY += o.Y
		sumXY += o.X * o.Y
		sumX2 += o.X * o.X
	}

	// All x identical collapses the normal equations; y = mx + b has no
	// defined slope for a vertical configuration.
	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		if cfg.DegenerateError {
			return nil, ErrDegenerateInput
		}

		return &FitResult{Formula: degenerateFormula}, nil
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n
	line := FittedLine{Slope: slope, Intercept: intercept}

	meanY := sumY / n
	var ssTot, ssRes float64
	for _, o := range observations {
		dTot := o.Y - meanY
		ssTot += dTot * dTot
		residual := o.Y - line.Predict(o.X)
		ssRes += residual * residual
	}

	// ssTot == 0 means all y are identical: nothing to explain, R² defined
	// as 0. Otherwise R² stays unclamped and may be negative.
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1.0 - ssRes/ssTot
	}

	return &FitResult{
		Line:     line,
		RSquared: r2,
		RMSE:     math.Sqrt(ssRes / n),
		Formula:  fmt.Sprintf("y = %.4fx + %.2f", slope, intercept),
	}, nil
}

// Predict evaluates the fitted line at x: line.Slope*x + line.Intercept.
//
// Predict always succeeds. It performs no validation of x; domain checks
// (positivity, upper bounds) are the caller's responsibility.
func Predict(x float64, line FittedLine) float64 {
	return line.Predict(x)
}
