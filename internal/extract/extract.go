// Package extract implements the per-match feature extractors. Each extractor
// consumes one immutable game (plus series draft context and the injected
// lookup tables) and produces a single analytic, or nil when the game does
// not meet the statistic's preconditions. Extractors never mutate the game
// and never depend on other games' results, so the runner is free to process
// matches in any order or in parallel.
package extract

import (
	"scoutahead/internal/lookup"
	"scoutahead/internal/model"
)

// Time horizons and thresholds shared across extractors, in seconds/gold.
const (
	fifteenMinutes = 900.0

	recallWarmup    = 180.0 // no voluntary recall before this
	recallDebounce  = 180.0 // minimum spacing between accepted recalls
	deathWindow     = 30.0  // purchase within this window after a death is a death timer, not a recall
	channelDuration = 8.0   // reported recall time = purchase time − channel

	evennessThreshold = 500 // 15-minute gold gaps below this classify as even
)

// Ctx is the input handed to every extractor for one game.
type Ctx struct {
	Series *model.Series
	Game   *model.Game
	Tables *lookup.Tables
}

// Extractor pairs an analytic kind with its implementation. Run returns
// (nil, nil) for a missing-precondition skip.
type Extractor struct {
	Kind model.AnalyticKind
	Run  func(Ctx) (*model.Analytic, error)
}

// All returns the full extractor set in a stable order.
func All() []Extractor {
	return []Extractor{
		{model.KindObjectivePresence, ObjectivePresence},
		{model.KindGoldAt15, GoldAt15},
		{model.KindRecalls, Recalls},
		{model.KindLanePriority, LanePriority},
		{model.KindCounterPicks, CounterPicks},
		{model.KindComeback, Comeback},
		{model.KindBanPhase, BanPhase},
		{model.KindClassProfile, ClassProfile},
		{model.KindDraftLog, DraftLog},
	}
}

// roleHolder finds the given team's player in the given role, via the
// injected role table. Returns nil when no roster entry resolves to the role.
func roleHolder(ec Ctx, teamID string, role model.Role) *model.Player {
	for i := range ec.Game.Players {
		p := &ec.Game.Players[i]
		if p.TeamID != teamID {
			continue
		}
		if ec.Tables.RoleFromName(p.Name) == role {
			return p
		}
	}
	return nil
}

// priorUsed collects the champions picked (by either side) in games of the
// series strictly before the given game number: the fearless unavailability
// set for that game.
func priorUsed(series *model.Series, gameNumber int) []string {
	if series == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for i := range series.Games {
		g := &series.Games[i]
		if g.Number >= gameNumber {
			continue
		}
		for _, a := range g.Draft {
			if a.Kind != model.DraftPick {
				continue
			}
			if _, dup := seen[a.Champion]; dup {
				continue
			}
			seen[a.Champion] = struct{}{}
			out = append(out, a.Champion)
		}
	}
	return out
}
