package cli

import (
	"context"
	"errors"

	"github.com/husein14azimi/house-price-prediction-simple-lr/housing"
	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/logger"
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
	"github.com/husein14azimi/house-price-prediction-simple-lr/storage/sqlite"
)

// currentModel returns the fit for the stored listing collection, reusing the
// cached result when its fingerprint still matches and refitting otherwise.
func currentModel(ctx context.Context, store *sqlite.Store, opts ...regression.FitOption) (*regression.FitResult, []housing.Listing, error) {
	listings, err := store.Listings().List(ctx)
	if err != nil {
		return nil, nil, err
	}

	fingerprint := housing.Fingerprint(listings)

	// Caching only applies to the default fit configuration.
	if len(opts) == 0 {
		cached, err := store.Fits().GetFit(ctx)
		switch {
		case err == nil && cached.Fingerprint == fingerprint:
			logger.Debug("fit cache hit (fingerprint %x)", fingerprint)
			return &cached.Result, listings, nil
		case err == nil:
			logger.Debug("fit cache stale (have %x, want %x)", cached.Fingerprint, fingerprint)
		case !errors.Is(err, sqlite.ErrNotFound):
			return nil, nil, err
		}
	}

	result, err := regression.Fit(housing.Observations(listings), opts...)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("fitted %d listings: %s", len(listings), result.Formula)

	if len(opts) == 0 {
		if err := store.Fits().SaveFit(ctx, fingerprint, result); err != nil {
			return nil, nil, err
		}
	}

	return result, listings, nil
}
