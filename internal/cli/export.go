package cli

import (
	"github.com/spf13/cobra"

	"github.com/husein14azimi/house-price-prediction-simple-lr/compress"
	"github.com/husein14azimi/house-price-prediction-simple-lr/snapshot"
)

var exportCompression string

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export listings to a snapshot file",
	Long: `Writes the listing collection to a JSON snapshot. Compression is
inferred from the file extension (.zst, .s2, .lz4) unless set explicitly
with --compression or in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCompression, "compression", "",
		"compression codec: none, zstd, s2 or lz4 (default: infer from extension)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	listings, err := store.Listings().List(cmd.Context())
	if err != nil {
		return err
	}

	var opts []snapshot.Option
	name := exportCompression
	if name == "" {
		name = cfg.Compression
	}
	if name != "" {
		ct, err := compress.ParseCompressionType(name)
		if err != nil {
			return err
		}
		opts = append(opts, snapshot.WithCompression(ct))
	}

	if err := snapshot.Save(path, listings, opts...); err != nil {
		return err
	}

	cmd.Printf("Exported %d listing(s) to %s\n", len(listings), path)
	return nil
}
