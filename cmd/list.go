package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored series",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	series, err := db.ListSeries(cmd.Context())
	if err != nil {
		return fmt.Errorf("list series: %w", err)
	}
	if len(series) == 0 {
		fmt.Fprintln(os.Stdout, "No series stored yet. Run 'scoutahead ingest <series.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-22s  %-22s  %5s\n",
		"SERIES", "DATE", "TEAM A", "TEAM B", "GAMES")
	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-22s  %-22s  %5s\n",
		"────────────────────", "──────────", "──────────────────────", "──────────────────────", "─────")
	for _, s := range series {
		fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-22s  %-22s  %5d\n",
			s.SeriesID, s.Date, s.TeamAName, s.TeamBName, s.GameCount)
	}
	return nil
}
