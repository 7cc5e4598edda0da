package cli

import (
	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/compress"
	"github.com/husein14azimi/house-price-prediction-simple-lr/snapshot"
)

var (
	importMerge       bool
	importCompression string
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import listings from a snapshot file",
	Long: `Reads a snapshot and loads its listings into the database. By default
the existing collection is replaced; with --merge, snapshot listings are
added to it, overwriting entries with the same ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false,
		"merge into the existing collection instead of replacing it")
	importCmd.Flags().StringVar(&importCompression, "compression", "",
		"compression codec: none, zstd, s2 or lz4 (default: infer from extension)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	var opts []snapshot.Option
	if importCompression != "" {
		ct, err := compress.ParseCompressionType(importCompression)
		if err != nil {
			return err
		}
		opts = append(opts, snapshot.WithCompression(ct))
	}

	listings, err := snapshot.Load(path, opts...)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if !importMerge {
		if err := store.Listings().DeleteAll(ctx); err != nil {
			return err
		}
		if err := store.Fits().InvalidateFit(ctx); err != nil {
			return err
		}
	}

	for _, l := range listings {
		if err := store.Listings().Save(ctx, l); err != nil {
			return err
		}
	}

	cmd.Printf("Imported %d listing(s) from %s\n", len(listings), path)
	return nil
}
