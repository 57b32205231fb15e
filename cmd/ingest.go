package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"scoutahead/internal/loader"
	"scoutahead/internal/model"
	"scoutahead/internal/report"
	"scoutahead/internal/runner"
	"scoutahead/internal/storage"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <series.json>",
	Short: "Ingest a series document and compute its analytics",
	Long: `Decode a series telemetry document, run every per-match extractor over
its games, and persist the analytics bundle keyed by series ID.
Re-ingesting the same document replaces the stored series and bundle.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	series, _, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}
	return ingestSeries(cmd.Context(), series)
}

// ingestSeries stores a series and runs the analytics pipeline over it.
// Shared by the ingest and fetch commands.
func ingestSeries(ctx context.Context, series *model.Series) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := loadTables()
	if err != nil {
		return err
	}

	if err := db.InsertSeries(ctx, series); err != nil {
		return err
	}

	// Bundles always land in SQLite; a configured Redis backend gets a
	// write-through copy for shared consumers.
	var store runner.BundleStore = db
	if cfg.Storage.Backend == "redis" {
		rs, err := storage.OpenRedis(ctx, cfg.Storage.RedisAddr)
		if err != nil {
			return err
		}
		defer rs.Close()
		store = storage.TeeStore{db, rs}
	}

	bundle, err := runner.New(tables, logger()).AnalyzeAndStore(ctx, store, series)
	if err != nil {
		return err
	}

	report.PrintIngestSummary(os.Stdout, series, bundle)
	return nil
}
