package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"scoutahead/internal/scout"
)

const briefSystemPrompt = `You are an esports analyst preparing a scouting brief on an opposing team.
You are given structured data from a match-analytics tool and a question
from the coaching staff.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable — focus on what the drafting team can exploit.

Data glossary:
- Ban rate (fearless): times banned ÷ times the champion was still available
  in that game of the series. Grouped by game number because availability
  shrinks every game.
- Ban/pick reactions: "when the enemy bans/picks X, this team's next ban/pick
  is Y" — only triggers with at least 2 observations are included.
- Grubs presence: how often the bot laner rotated to the pit when the team
  took the first void grubs.
- Comeback rate: games won after trailing by 500+ gold at 15 minutes.
  Hold rate: games won after leading by 500+.
- Counter rate: how often a role's pick was locked after the lane opponent's.
- First recall: inferred start of the first voluntary base timing.`

var (
	briefModel  string
	briefAPIKey string
)

var briefCmd = &cobra.Command{
	Use:   "brief <team-id> <question>",
	Short: "AI scouting brief grounded in stored analytics (requires ANTHROPIC_API_KEY)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBrief,
}

func init() {
	briefCmd.Flags().StringVar(&briefModel, "model", "", "Anthropic model to use (defaults to config)")
	briefCmd.Flags().StringVar(&briefAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
}

func runBrief(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	teamID, question := args[0], args[1]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	recs, err := db.RecordsForTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("load series for %s: %w", teamID, err)
	}
	var inputs []scout.SeriesInput
	for _, rec := range recs {
		if rec.Bundle == nil {
			continue
		}
		inputs = append(inputs, scout.SeriesInput{
			SeriesID: rec.Summary.SeriesID,
			Opponent: rec.Summary.Opponent(teamID),
			Date:     rec.Summary.Date,
			Bundle:   rec.Bundle,
		})
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no analyzed series for team %q", teamID)
	}

	rep := scout.BuildReport(teamID, inputs, nil)
	doc, err := briefDocument(rep)
	if err != nil {
		return fmt.Errorf("build brief data: %w", err)
	}

	modelID := briefModel
	if modelID == "" {
		modelID = cfg.Brief.Model
	}
	return streamBrief(ctx, briefAPIKey, modelID, doc, question)
}

// briefDocument compacts the report for the prompt: the raw value lists kept
// for charting would only burn tokens.
func briefDocument(rep *scout.Report) (string, error) {
	trimmed := *rep
	if trimmed.GoldAt15 != nil {
		g := *trimmed.GoldAt15
		g.TeamTotals = nil
		for i := range g.ByRole {
			g.ByRole[i].Values = nil
		}
		trimmed.GoldAt15 = &g
	}
	if trimmed.CounterPicks != nil {
		c := *trimmed.CounterPicks
		for i := range c.ByRole {
			c.ByRole[i].DiffsWhenCounter = nil
			c.ByRole[i].DiffsWhenCountered = nil
		}
		trimmed.CounterPicks = &c
	}
	if trimmed.Recalls != nil {
		r := *trimmed.Recalls
		for i := range r.ByRole {
			r.ByRole[i].FirstTimes = nil
		}
		trimmed.Recalls = &r
	}
	trimmed.DraftHistory = nil

	b, err := json.Marshal(&trimmed)
	return string(b), err
}

// streamBrief streams the response from the Anthropic API to stdout.
func streamBrief(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── Scouting Brief ──────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: briefSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed — check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
