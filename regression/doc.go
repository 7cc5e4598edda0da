// Package regression provides the ordinary least-squares core for house price
// prediction: fitting a line to a set of (area, price) observations and
// predicting prices for new areas.
//
// The package is deliberately small and pure. Both operations take their
// inputs explicitly and touch no shared state, so every call is independent
// and safe for concurrent use.
//
// # Fitting
//
// Fit consumes a finite slice of observations and produces the fitted line
// together with its goodness-of-fit statistics:
//
//	obs := []regression.Observation{{X: 50, Y: 100000}, {X: 100, Y: 200000}, {X: 150, Y: 300000}}
//	result, err := regression.Fit(obs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Formula)  // y = 2000.0000x + 0.00
//	fmt.Println(result.RSquared) // 1
//
// Fewer than two observations fail with ErrInsufficientData before any
// computation runs.
//
// # Prediction
//
// Predict evaluates a fitted line at a single x value:
//
//	price := regression.Predict(75, result.Line) // 150000
//
// Predict performs no domain validation; range checks on x belong to the
// caller. Non-finite inputs propagate into the result unguarded.
//
// # Degenerate input
//
// When every observation shares the same x value the slope of y = mx + b is
// mathematically undefined. The default policy mirrors the original system:
// Fit returns a zero-valued sentinel result whose Formula reads
// "Undefined (Vertical Line)" instead of failing. Callers preferring strict
// error semantics can opt in via WithDegenerateError, which turns the same
// condition into ErrDegenerateInput. The two policies are not interchangeable
// at the API level; pick one per call site.
//
// # Statistics
//
// RSquared follows the standard definition R² = 1 - ssRes/ssTot, with the
// ssTot == 0 case (all y identical) defined as 0 rather than NaN. The value
// is not clamped: a fit worse than the mean baseline legitimately yields a
// negative R². RMSE is sqrt(ssRes/n) in the same units as y.
package regression
