// Package cli implements the houseprice command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/config"
	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/logger"
	"github.com/husein14azimi/house-price-prediction-simple-lr/storage/sqlite"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "houseprice",
	Short: "Estimate house prices from area with simple linear regression",
	Long: `houseprice keeps a small collection of (area, price) listings, fits a
least-squares line through them and predicts prices for new areas.

Listings are stored in a local SQLite database. The fitted line is cached
and recomputed automatically whenever the listing collection changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		path := flagConfig
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("config loaded from %s", path)

		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"config file (default ~/.houseprice/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"database directory (default ~/.houseprice/data)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"verbose output on stderr")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func openStore() (*sqlite.Store, error) {
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("database: %s", store.Path())
	return store, nil
}
