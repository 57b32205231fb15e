// Package report renders scouting output for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"scoutahead/internal/model"
	"scoutahead/internal/scout"
)

var (
	cSection = color.New(color.FgCyan, color.Bold)
	cMuted   = color.New(color.Faint)
	cWin     = color.New(color.FgGreen)
	cLoss    = color.New(color.FgRed)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	cSection.Fprintf(w, "─── %s ", title)
	cMuted.Fprintln(w, "───────────────────────────────")
}

// PrintReportHeader prints the one-line report summary.
func PrintReportHeader(w io.Writer, rep *scout.Report) {
	fmt.Fprintf(w, "\nScouting report: %s  |  Series: %d  |  Games: %d  |  Generated: %s\n",
		rep.TeamID, rep.SeriesCount, rep.GameCount, rep.GeneratedAt.Format("2006-01-02 15:04"))
}

// PrintBanTendencies renders the availability-aware first-phase ban rates,
// one block per game-number bucket.
func PrintBanTendencies(w io.Writer, bt *scout.BanTendencies) {
	section(w, "First-Phase Ban Tendencies (fearless)")
	if bt == nil {
		cMuted.Fprintln(w, "no ban-phase data")
		return
	}
	for _, group := range bt.Groups {
		fmt.Fprintf(w, "\nGame %s (%d games)\n", group.Bucket, group.Games)
		t := newTable(w)
		t.Header("CHAMPION", "BANNED", "AVAILABLE", "RATE")
		for _, r := range group.Rates {
			t.Append(r.Champion,
				fmt.Sprintf("%d", r.Banned),
				fmt.Sprintf("%d", r.Available),
				fmt.Sprintf("%.0f%%", r.Rate))
		}
		t.Render()
	}
}

// PrintPickRates renders availability-aware pick rates.
func PrintPickRates(w io.Writer, pr *scout.PickRates) {
	section(w, "Pick Rates (fearless-adjusted)")
	if pr == nil {
		cMuted.Fprintln(w, "no draft data")
		return
	}
	t := newTable(w)
	t.Header("CHAMPION", "PICKED", "AVAILABLE", "RATE")
	for _, r := range pr.Rates {
		t.Append(r.Champion,
			fmt.Sprintf("%d", r.Picked),
			fmt.Sprintf("%d", r.Available),
			fmt.Sprintf("%.0f%%", r.Rate))
	}
	t.Render()
}

// PrintReactions renders a conditional reaction table under the given title.
func PrintReactions(w io.Writer, title string, ct *scout.ConditionalTable) {
	section(w, title)
	if ct == nil {
		cMuted.Fprintln(w, "not enough samples")
		return
	}
	t := newTable(w)
	t.Header("ENEMY ACTION", "SAMPLES", "RESPONSE", "COUNT", "SHARE")
	for _, row := range ct.Rows {
		for i, resp := range row.Responses.Rows {
			trigger, samples := "", ""
			if i == 0 {
				trigger = row.Trigger
				samples = fmt.Sprintf("%d", row.SampleSize)
			}
			t.Append(trigger, samples, resp.Value,
				fmt.Sprintf("%d", resp.Count),
				fmt.Sprintf("%.0f%%", resp.Pct))
		}
	}
	t.Render()
}

// PrintPresence renders the grubs rotation rate.
func PrintPresence(w io.Writer, ps *scout.PresenceStats) {
	section(w, "Bot Lane at First Grubs")
	if ps == nil {
		cMuted.Fprintln(w, "no qualifying grubs takes")
		return
	}
	fmt.Fprintf(w, "ADC present at pit: %d/%d (%.0f%%)\n", ps.Present, ps.Qualifying, ps.Rate)
}

// PrintGold renders 15-minute economy averages by role.
func PrintGold(w io.Writer, gs *scout.GoldStats) {
	section(w, "Gold at 15 Minutes")
	if gs == nil {
		cMuted.Fprintln(w, "no games reached 15 minutes")
		return
	}
	fmt.Fprintf(w, "Team average: %.0f over %d games\n\n", gs.TeamAvg, gs.Games)
	t := newTable(w)
	t.Header("ROLE", "AVG GOLD", "GAMES")
	for _, r := range gs.ByRole {
		t.Append(string(r.Role), fmt.Sprintf("%.0f", r.Avg), fmt.Sprintf("%d", len(r.Values)))
	}
	t.Render()
}

// PrintComebacks renders the behind/ahead split.
func PrintComebacks(w io.Writer, cs *scout.ComebackStats) {
	section(w, "Comebacks & Leads (15-minute gold)")
	if cs == nil {
		cMuted.Fprintln(w, "no classified games")
		return
	}
	if cs.GamesBehind > 0 {
		cWin.Fprintf(w, "Behind at 15: won %d/%d (%.0f%%)\n", cs.Comebacks, cs.GamesBehind, cs.ComebackRate)
	}
	if cs.GamesAhead > 0 {
		cLoss.Fprintf(w, "Ahead at 15:  held %d/%d (%.0f%%)\n", cs.LeadsHeld, cs.GamesAhead, cs.HoldRate)
	}
	if cs.EvenGames > 0 {
		cMuted.Fprintf(w, "Even games excluded: %d\n", cs.EvenGames)
	}
}

// PrintCounterPicks renders counter-pick rates and their gold value.
func PrintCounterPicks(w io.Writer, cp *scout.CounterPickStats) {
	section(w, "Counter Picks")
	if cp == nil {
		cMuted.Fprintln(w, "no resolvable lane matchups")
		return
	}
	t := newTable(w)
	t.Header("ROLE", "GAMES", "COUNTERS", "RATE", "GOLD Δ15 (CTR)", "GOLD Δ15 (CTRD)")
	for _, r := range cp.ByRole {
		t.Append(string(r.Role),
			fmt.Sprintf("%d", r.Games),
			fmt.Sprintf("%d", r.CountersMade),
			fmt.Sprintf("%.0f%%", r.CounterRate),
			fmt.Sprintf("%+.0f", r.AvgDiffWhenCounter),
			fmt.Sprintf("%+.0f", r.AvgDiffWhenCountered))
	}
	t.Render()
	if len(cp.CounterChampions.Rows) > 0 {
		fmt.Fprintln(w, "\nFavorite counter champions:")
		for _, row := range cp.CounterChampions.Rows {
			fmt.Fprintf(w, "  %-16s %d (%.0f%%)\n", row.Value, row.Count, row.Pct)
		}
	}
}

// PrintRecalls renders first-recall timing per role.
func PrintRecalls(w io.Writer, rs *scout.RecallStats) {
	section(w, "First Recall Timing")
	if rs == nil {
		cMuted.Fprintln(w, "no recall inferences")
		return
	}
	t := newTable(w)
	t.Header("ROLE", "AVG FIRST RECALL", "GAMES")
	for _, r := range rs.ByRole {
		t.Append(string(r.Role), formatClock(r.AvgFirst), fmt.Sprintf("%d", r.Games))
	}
	t.Render()
}

// PrintClasses renders the composition class profile.
func PrintClasses(w io.Writer, cs *scout.ClassStats) {
	section(w, "Composition Identity")
	if cs == nil {
		cMuted.Fprintln(w, "no class data")
		return
	}
	fmt.Fprintf(w, "Avg hard-CC champions per game: %.1f\n\n", cs.AvgHardCC)
	t := newTable(w)
	t.Header("CLASS", "COUNT", "PER GAME")
	for _, row := range cs.Classes.Rows {
		t.Append(row.Value,
			fmt.Sprintf("%d", row.Count),
			fmt.Sprintf("%.1f", float64(row.Count)/float64(cs.Games)))
	}
	t.Render()
}

// PrintDraftHistory renders the verbatim draft sequences, one block per series.
func PrintDraftHistory(w io.Writer, history []scout.SeriesDraft) {
	section(w, "Draft History")
	if len(history) == 0 {
		cMuted.Fprintln(w, "no drafts stored")
		return
	}
	for _, sd := range history {
		fmt.Fprintf(w, "\n%s vs %s (%s)\n", sd.SeriesID, sd.Opponent, sd.Date)
		for _, g := range sd.Games {
			fmt.Fprintf(w, "  game %d:", g.GameNumber)
			for _, a := range g.Actions {
				mark := "+"
				if a.Kind == model.DraftBan {
					mark = "-"
				}
				fmt.Fprintf(w, " %s%s[%s]", mark, a.Champion, a.TeamID)
			}
			fmt.Fprintln(w)
		}
	}
}

// PrintFullReport renders every section in order.
func PrintFullReport(w io.Writer, rep *scout.Report) {
	PrintReportHeader(w, rep)
	PrintBanTendencies(w, rep.BanTendencies)
	PrintPickRates(w, rep.PickRates)
	PrintReactions(w, "Ban Reactions (enemy ban → our next ban)", rep.BanReactions)
	PrintReactions(w, "Pick Reactions (enemy pick → our next pick)", rep.PickReactions)
	PrintPresence(w, rep.ObjectivePresence)
	PrintGold(w, rep.GoldAt15)
	PrintComebacks(w, rep.Comebacks)
	PrintCounterPicks(w, rep.CounterPicks)
	PrintRecalls(w, rep.Recalls)
	PrintClasses(w, rep.ClassProfile)
	PrintDraftHistory(w, rep.DraftHistory)
}

// PrintIngestSummary lists, per game, which analytics produced results.
func PrintIngestSummary(w io.Writer, s *model.Series, bundle *model.SeriesAnalytics) {
	fmt.Fprintf(w, "\nSeries %s: %s vs %s  |  games: %d\n\n",
		s.ID, s.Teams[0].Name, s.Teams[1].Name, len(s.Games))
	t := newTable(w)
	t.Header("GAME", "WINNER", "DURATION", "ANALYTICS")
	for i := range bundle.Games {
		ga := &bundle.Games[i]
		var game *model.Game
		for gi := range s.Games {
			if s.Games[gi].ID == ga.GameID {
				game = &s.Games[gi]
				break
			}
		}
		winner, dur := "?", ""
		if game != nil {
			winner = game.WinnerTeamID
			dur = formatClock(game.Duration)
		}
		t.Append(fmt.Sprintf("%d", ga.GameNumber), winner, dur, fmt.Sprintf("%d", len(ga.Results)))
	}
	t.Render()
}

// formatClock renders seconds as m:ss.
func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
