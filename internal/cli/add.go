package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/housing"
)

var addCmd = &cobra.Command{
	Use:   "add <area> <price>",
	Short: "Add a listing",
	Long:  `Adds one (area, price) listing to the collection. Area is in square meters.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	area, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid area %q: %w", args[0], err)
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", args[1], err)
	}

	listing, err := housing.NewListing(area, price)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Listings().Save(cmd.Context(), listing); err != nil {
		return err
	}

	cmd.Printf("Added listing %s (area %.2f, price %.2f)\n", listing.ID, area, price)
	return nil
}
