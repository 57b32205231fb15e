package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoutahead/internal/report"
	"scoutahead/internal/scout"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report <team-id>",
	Short: "Build a scouting report for a team",
	Long: `Aggregate every stored analytics bundle involving the team into a
consolidated scouting report: ban/pick tendencies, draft reactions,
objective presence, economy, comebacks, counter picks, and recall timing.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "emit the raw report JSON instead of tables")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	teamID := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := db.RecordsForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("load series for %s: %w", teamID, err)
	}
	if len(recs) == 0 {
		fmt.Fprintf(os.Stdout, "No stored series involve team %q. Run 'scoutahead ingest' first.\n", teamID)
		return nil
	}

	log := logger()
	var inputs []scout.SeriesInput
	for _, rec := range recs {
		if rec.Bundle == nil {
			// The series is stored but was never analyzed; it simply
			// contributes nothing.
			log.Warn("series has no analytics bundle", "series", rec.Summary.SeriesID)
			continue
		}
		inputs = append(inputs, scout.SeriesInput{
			SeriesID: rec.Summary.SeriesID,
			Opponent: rec.Summary.Opponent(teamID),
			Date:     rec.Summary.Date,
			Bundle:   rec.Bundle,
		})
	}

	rep := scout.BuildReport(teamID, inputs, nil)

	if reportJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	report.PrintFullReport(os.Stdout, rep)
	return nil
}
