package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/internal/chart"
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
)

var (
	plotWidth   int
	plotHeight  int
	plotNoColor bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the listings and fitted line in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width (default from config)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "plot height (default from config)")
	plotCmd.Flags().BoolVar(&plotNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	result, listings, err := currentModel(cmd.Context(), store)
	if err != nil && !errors.Is(err, regression.ErrInsufficientData) {
		return err
	}

	opts := chart.Options{
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
		NoColor: plotNoColor,
	}
	if plotWidth > 0 {
		opts.Width = plotWidth
	}
	if plotHeight > 0 {
		opts.Height = plotHeight
	}

	if errors.Is(err, regression.ErrInsufficientData) {
		// Fewer than two listings: plot whatever exists without a line.
		listings, err = store.Listings().List(cmd.Context())
		if err != nil {
			return err
		}
		result = nil
	}

	cmd.Print(chart.Render(listings, result, opts))
	return nil
}
