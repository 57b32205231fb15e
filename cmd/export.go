package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

// exportCmd dumps a stored analytics bundle as JSON, for charting tools and
// other downstream consumers.
var exportCmd = &cobra.Command{
	Use:   "export <series-id>",
	Short: "Export a stored analytics bundle as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	bundle, err := db.GetBundle(ctx, args[0])
	if err != nil {
		return err
	}
	if bundle == nil {
		return fmt.Errorf("no analytics stored for series %s", args[0])
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	if exportOut != "" {
		fmt.Fprintf(os.Stdout, "Wrote %s\n", exportOut)
	}
	return nil
}
