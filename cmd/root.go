package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"scoutahead/internal/config"
	"scoutahead/internal/lookup"
	"scoutahead/internal/storage"
)

var (
	cfgPath string
	dbPath  string
	verbose bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scoutahead",
	Short: "Esports scouting-report tool",
	Long:  "Ingest match telemetry, derive per-match analytics, and build team scouting reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; it supplies ANTHROPIC_API_KEY and friends.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Storage.SQLitePath = dbPath
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped extractors and debug detail")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(briefCmd)
}

// logger builds the slog logger commands hand to the runner.
func logger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDB opens the SQLite store, creating its directory on first use.
func openDB() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.SQLitePath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadTables loads the lookup tables named in the config. Without a
// configured path every role resolves to unknown, which the extractors
// tolerate by skipping per-role analytics.
func loadTables() (*lookup.Tables, error) {
	if cfg.Tables.Path == "" {
		return &lookup.Tables{}, nil
	}
	return lookup.Load(cfg.Tables.Path)
}
