package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

var predictCmd = &cobra.Command{
	Use:   "predict <area>",
	Short: "Predict the price for a given area",
	Long: `Predicts the price for the given area using the fitted line. The cached
fit is reused when the listing collection has not changed; otherwise the
line is refitted first.`,
	Args: cobra.ExactArgs(1),
	RunE: runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	area, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid area %q: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	result, _, err := currentModel(cmd.Context(), store)
	if err != nil {
		return err
	}

	if strings.HasPrefix(result.Formula, "Undefined") {
		return fmt.Errorf("model is undefined (all listings share the same area); " +
			"add listings with different areas")
	}

	price := regression.Predict(area, result.Line)
	cmd.Printf("Predicted price for area %.2f: %.2f\n", area, price)
	cmd.Printf("  Model: %s (R² = %.4f)\n", result.Formula, result.RSquared)
	return nil
}
