package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scoutahead/internal/loader"
	"scoutahead/internal/provider"
)

var fetchLimit int

var fetchCmd = &cobra.Command{
	Use:   "fetch <series-id> | fetch --team <team-id>",
	Short: "Fetch series from the configured data provider and ingest them",
	Long: `Download series timeline documents from the provider configured under
provider.base_url and run the full ingest pipeline on each. With --team,
fetches the team's recent completed series instead of a single series ID.
Requires SCOUT_PROVIDER_KEY in the environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

var fetchTeam string

func init() {
	fetchCmd.Flags().StringVar(&fetchTeam, "team", "", "fetch recent series for a team instead of one series ID")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 5, "max series to fetch with --team")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if cfg.Provider.BaseURL == "" {
		return fmt.Errorf("no provider configured: set provider.base_url in the config file")
	}
	apiKey := os.Getenv("SCOUT_PROVIDER_KEY")
	if apiKey == "" {
		return fmt.Errorf("SCOUT_PROVIDER_KEY is not set")
	}
	if (len(args) == 0) == (fetchTeam == "") {
		return fmt.Errorf("pass exactly one of <series-id> or --team")
	}

	client := provider.NewClient(cfg.Provider.BaseURL, apiKey)

	ids := args
	if fetchTeam != "" {
		items, err := client.ListTeamSeries(ctx, fetchTeam, fetchLimit)
		if err != nil {
			return fmt.Errorf("list series for %s: %w", fetchTeam, err)
		}
		if len(items) == 0 {
			fmt.Fprintf(os.Stdout, "No completed series found for team %s.\n", fetchTeam)
			return nil
		}
		ids = nil
		for _, it := range items {
			ids = append(ids, it.SeriesID)
		}
	}

	for _, id := range ids {
		doc, err := client.GetSeriesDocument(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch series %s: %w", id, err)
		}
		series, _, err := loader.Decode(doc)
		if err != nil {
			return fmt.Errorf("series %s: %w", id, err)
		}
		if err := ingestSeries(ctx, series); err != nil {
			return err
		}
	}
	return nil
}
