package regression

import "fmt"

// Observation is a single (x, y) training sample, e.g. one (area, price)
// pair. Observations are plain values; a collection of them has no required
// ordering and may contain duplicate x values.
type Observation struct {
	// X is the independent variable (area).
	X float64
	// Y is the dependent variable (price).
	Y float64
}

// FittedLine holds the parameters of the model y = Slope*x + Intercept.
// It is produced by Fit and immutable once produced.
type FittedLine struct {
	// Slope is the fitted slope m of y = mx + b.
	Slope float64
	// Intercept is the fitted intercept b of y = mx + b.
	Intercept float64
}

// Predict evaluates the line at x: Slope*x + Intercept.
//
// No validation is performed; non-finite values of x or the line parameters
// propagate into the result.
func (l FittedLine) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// FitResult bundles a fitted line with its fit-quality statistics.
//
// Fields:
//   - Line: The fitted slope and intercept
//   - RSquared: Coefficient of determination (1 = perfect, 0 = mean baseline,
//     negative = worse than the mean baseline; never clamped)
//   - RMSE: Root mean square error, same units as y
//   - Formula: Human-readable rendering of the equation
//
// A FitResult is a snapshot: it describes the observation collection it was
// computed from and becomes stale when that collection changes. The caller is
// responsible for discarding and recomputing it.
type FitResult struct {
	// Line is the fitted line parameters.
	Line FittedLine
	// RSquared is the coefficient of determination.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// Formula is a human-readable representation of the fitted equation,
	// e.g. "y = 0.1234x + 56.78".
	Formula string
}

// String returns a string representation of the result.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{Formula: %s, R²: %.4f, RMSE: %.4f}",
		r.Formula, r.RSquared, r.RMSE)
}
