package cli

import (
	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

var fitStrict bool

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit the regression line through the stored listings",
	Long: `Fits a least-squares line through the stored listings and prints the
model statistics. The result is cached; later predictions reuse it until
the listing collection changes.

With --strict, a collection where every listing has the same area is an
error instead of the undefined-slope placeholder result.`,
	Args: cobra.NoArgs,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().BoolVar(&fitStrict, "strict", false,
		"fail on zero variance in area instead of returning a placeholder")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var opts []regression.FitOption
	if fitStrict {
		opts = append(opts, regression.WithDegenerateError())
	}

	result, listings, err := currentModel(cmd.Context(), store, opts...)
	if err != nil {
		return err
	}

	cmd.Printf("Fitted %d listing(s)\n", len(listings))
	cmd.Printf("  Model:  %s\n", result.Formula)
	cmd.Printf("  R²:     %.4f\n", result.RSquared)
	cmd.Printf("  RMSE:   %.4f\n", result.RMSE)
	return nil
}
