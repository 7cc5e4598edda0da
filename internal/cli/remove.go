package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var removeAll bool

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a listing, or all listings with --all",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every listing")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if removeAll == (len(args) == 1) {
		return errors.New("specify exactly one of <id> or --all")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if removeAll {
		if err := store.Listings().DeleteAll(ctx); err != nil {
			return err
		}
		if err := store.Fits().InvalidateFit(ctx); err != nil {
			return err
		}
		cmd.Println("Removed all listings")
		return nil
	}

	if err := store.Listings().Delete(ctx, args[0]); err != nil {
		return err
	}
	cmd.Printf("Removed listing %s\n", args[0])
	return nil
}
