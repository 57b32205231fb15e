// Package scout builds a consolidated scouting report for one team from the
// per-series analytics bundles of its match history. Every statistic is an
// independent, order-insensitive aggregation: a series missing the analytics
// for one statistic contributes nothing to it and never blocks the rest.
package scout

import (
	"time"

	"scoutahead/internal/model"
)

// SeriesInput is one historical series feeding the report.
type SeriesInput struct {
	SeriesID string
	Opponent string
	Date     string // YYYY-MM-DD
	Bundle   *model.SeriesAnalytics
}

// Report is the consolidated scouting output. Sections are nil when no
// series contributed data; "no data" renders as an empty section, never an
// error.
type Report struct {
	TeamID      string    `json:"teamId"`
	SeriesCount int       `json:"seriesCount"`
	GameCount   int       `json:"gameCount"`
	GeneratedAt time.Time `json:"generatedAt"`

	BanTendencies     *BanTendencies     `json:"banTendencies,omitempty"`
	PickRates         *PickRates         `json:"pickRates,omitempty"`
	BanReactions      *ConditionalTable  `json:"banReactions,omitempty"`
	PickReactions     *ConditionalTable  `json:"pickReactions,omitempty"`
	ObjectivePresence *PresenceStats     `json:"objectivePresence,omitempty"`
	GoldAt15          *GoldStats         `json:"goldAt15,omitempty"`
	Comebacks         *ComebackStats     `json:"comebacks,omitempty"`
	CounterPicks      *CounterPickStats  `json:"counterPicks,omitempty"`
	Recalls           *RecallStats       `json:"recalls,omitempty"`
	ClassProfile      *ClassStats        `json:"classProfile,omitempty"`
	DraftHistory      []SeriesDraft      `json:"draftHistory,omitempty"`
}

// SeriesDraft is the verbatim per-series draft breakdown kept for replay
// rendering downstream.
type SeriesDraft struct {
	SeriesID string               `json:"seriesId"`
	Opponent string               `json:"opponent"`
	Date     string               `json:"date"`
	Games    []model.DraftLogData `json:"games"`
}

// BuildReport aggregates every statistic for the target team. Inputs whose
// bundle does not involve the team are skipped; the result is never an error
// for sparse data, only for a missing team ID.
func BuildReport(teamID string, inputs []SeriesInput, now func() time.Time) *Report {
	if now == nil {
		now = time.Now
	}
	rep := &Report{TeamID: teamID, GeneratedAt: now().UTC()}

	var relevant []SeriesInput
	for _, in := range inputs {
		if in.Bundle == nil {
			continue
		}
		if in.Bundle.TeamIDs[0] != teamID && in.Bundle.TeamIDs[1] != teamID {
			continue
		}
		relevant = append(relevant, in)
		rep.SeriesCount++
		rep.GameCount += len(in.Bundle.Games)
	}

	rep.BanTendencies = buildBanTendencies(teamID, relevant)
	rep.PickRates = buildPickRates(teamID, relevant)
	rep.BanReactions = buildReactions(teamID, relevant, model.DraftBan)
	rep.PickReactions = buildReactions(teamID, relevant, model.DraftPick)
	rep.ObjectivePresence = buildPresence(teamID, relevant)
	rep.GoldAt15 = buildGold(teamID, relevant)
	rep.Comebacks = buildComebacks(teamID, relevant)
	rep.CounterPicks = buildCounterPicks(teamID, relevant)
	rep.Recalls = buildRecalls(teamID, relevant)
	rep.ClassProfile = buildClasses(teamID, relevant)
	rep.DraftHistory = buildDraftHistory(relevant)

	return rep
}

// eachGame walks every game analytics record across the relevant series.
func eachGame(inputs []SeriesInput, fn func(in SeriesInput, ga *model.GameAnalytics)) {
	for _, in := range inputs {
		for gi := range in.Bundle.Games {
			fn(in, &in.Bundle.Games[gi])
		}
	}
}

// opponentOf resolves the other side of a bundle.
func opponentOf(bundle *model.SeriesAnalytics, teamID string) string {
	if bundle.TeamIDs[0] == teamID {
		return bundle.TeamIDs[1]
	}
	return bundle.TeamIDs[0]
}
