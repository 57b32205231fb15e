package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoutahead/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show <series-id>",
	Short: "Show a stored series and its per-game analytics",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	series, err := db.GetSeries(ctx, args[0])
	if err != nil {
		return err
	}
	if series == nil {
		return fmt.Errorf("series not found: %s", args[0])
	}
	bundle, err := db.GetBundle(ctx, args[0])
	if err != nil {
		return err
	}
	if bundle == nil {
		fmt.Fprintf(os.Stdout, "Series %s is stored but has no analytics yet. Re-run 'scoutahead ingest'.\n", series.ID)
		return nil
	}

	report.PrintIngestSummary(os.Stdout, series, bundle)
	return nil
}
