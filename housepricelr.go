// Package housepricelr predicts house prices from living area using simple
// (single-variable) linear regression.
//
// The model is an ordinary least-squares line fitted through user-provided
// (area, price) observations, reported together with its coefficient of
// determination (R²) and root mean squared error (RMSE).
//
// # Basic Usage
//
// Fitting and predicting:
//
//	import "github.com/husein14azimi/house-price-prediction-simple-lr"
//
//	result, err := housepricelr.Fit([]housepricelr.Observation{
//	    {X: 50, Y: 100_000},
//	    {X: 100, Y: 200_000},
//	    {X: 150, Y: 300_000},
//	})
//	if err != nil {
//	    // fewer than two observations
//	}
//	fmt.Println(result.Formula) // y = 2000.0000x + 0.00
//
//	price := housepricelr.Predict(75, result.Line)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression
// package, simplifying the most common use cases. The supporting packages
// (housing, snapshot, storage/sqlite, compress) back the houseprice CLI in
// cmd/houseprice and are usable on their own.
package housepricelr

import (
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

// Observation is one (x, y) training sample, re-exported for convenience.
type Observation = regression.Observation

// FittedLine is a fitted slope/intercept pair, re-exported for convenience.
type FittedLine = regression.FittedLine

// FitResult is a fitted line with its statistics, re-exported for
// convenience.
type FitResult = regression.FitResult

// ErrInsufficientData is returned by Fit for fewer than two observations.
var ErrInsufficientData = regression.ErrInsufficientData

// Fit computes the least-squares line through the observations.
//
// See regression.Fit for the full behavior, including the handling of
// zero-variance input.
func Fit(observations []Observation) (*FitResult, error) {
	return regression.Fit(observations)
}

// Predict evaluates the fitted line at x.
func Predict(x float64, line FittedLine) float64 {
	return regression.Predict(x, line)
}
