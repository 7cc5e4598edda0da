package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all listings",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output listings as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	listings, err := store.Listings().List(cmd.Context())
	if err != nil {
		return err
	}

	if listJSON {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling listings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(listings) == 0 {
		cmd.Println("No listings. Use 'houseprice add <area> <price>' to add one.")
		return nil
	}

	cmd.Printf("%-36s  %10s  %12s\n", "ID", "AREA", "PRICE")
	for _, l := range listings {
		cmd.Printf("%-36s  %10.2f  %12.2f\n", l.ID, l.Area, l.Price)
	}
	cmd.Printf("\n%d listing(s)\n", len(listings))
	return nil
}
