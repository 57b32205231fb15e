package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dropForce bool

// dropCmd removes one stored series (and its bundle) by ID.
var dropCmd = &cobra.Command{
	Use:   "drop <series-id>",
	Short: "Delete a stored series and its analytics",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	exists, err := db.SeriesExists(ctx, args[0])
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(os.Stdout, "Series %s is not stored, nothing to drop.\n", args[0])
		return nil
	}
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will permanently delete series %s and its analytics.\n", args[0])
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := db.DeleteSeries(ctx, args[0]); err != nil {
		return fmt.Errorf("delete series: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", args[0])
	return nil
}
