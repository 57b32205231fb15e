package scout

import (
	"sort"

	"scoutahead/internal/model"
)

// roleOrder fixes the presentation order of per-role breakdowns.
var roleOrder = []model.Role{model.RoleTop, model.RoleJungle, model.RoleMid, model.RoleBot, model.RoleSupport}

// PresenceStats aggregates the grubs objective-presence analytic: of the
// games where the team took the first grubs, how often the bot laner rotated
// to the pit.
type PresenceStats struct {
	Qualifying int     `json:"qualifying"` // games where the team took first grubs
	Present    int     `json:"present"`
	Rate       float64 `json:"rate"` // 0..100
}

func buildPresence(teamID string, inputs []SeriesInput) *PresenceStats {
	out := &PresenceStats{}
	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindObjectivePresence)
		if a == nil || a.ObjectivePresence == nil {
			return
		}
		if a.ObjectivePresence.TeamID != teamID {
			return
		}
		out.Qualifying++
		if a.ObjectivePresence.AdcJoinedForGrubs {
			out.Present++
		}
	})
	if out.Qualifying == 0 {
		return nil
	}
	out.Rate = float64(out.Present) / float64(out.Qualifying) * 100
	return out
}

// RoleGold is the 15-minute gold line for one role, with the raw per-game
// values kept for downstream charting.
type RoleGold struct {
	Role   model.Role `json:"role"`
	Avg    float64    `json:"avg"`
	Values []int      `json:"values"`
}

// GoldStats summarizes the team's economy at the 15 minute mark.
type GoldStats struct {
	Games      int        `json:"games"`
	TeamAvg    float64    `json:"teamAvg"`
	TeamTotals []int      `json:"teamTotals"`
	ByRole     []RoleGold `json:"byRole"`
}

func buildGold(teamID string, inputs []SeriesInput) *GoldStats {
	byRole := make(map[model.Role][]int)
	var totals []int

	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindGoldAt15)
		if a == nil || a.GoldAt15 == nil {
			return
		}
		total, involved := a.GoldAt15.TeamTotals[teamID]
		if !involved {
			return
		}
		totals = append(totals, total)
		for _, pg := range a.GoldAt15.Players {
			if pg.TeamID != teamID || pg.Role == model.RoleUnknown {
				continue
			}
			byRole[pg.Role] = append(byRole[pg.Role], pg.Gold)
		}
	})
	if len(totals) == 0 {
		return nil
	}

	out := &GoldStats{Games: len(totals), TeamAvg: mean(totals), TeamTotals: totals}
	for _, role := range roleOrder {
		values := byRole[role]
		if len(values) == 0 {
			continue
		}
		out.ByRole = append(out.ByRole, RoleGold{Role: role, Avg: mean(values), Values: values})
	}
	return out
}

// ComebackStats splits the team's non-even 15-minute games by who led and
// who won. Even games are counted but excluded from both rates.
type ComebackStats struct {
	EvenGames    int     `json:"evenGames"`
	GamesBehind  int     `json:"gamesBehind"`
	Comebacks    int     `json:"comebacks"` // behind at 15, won anyway
	GamesAhead   int     `json:"gamesAhead"`
	LeadsHeld    int     `json:"leadsHeld"`
	ComebackRate float64 `json:"comebackRate"` // 0..100 of games behind
	HoldRate     float64 `json:"holdRate"`     // 0..100 of games ahead
	Deficits     []int   `json:"deficits"`     // raw gaps in games behind
}

func buildComebacks(teamID string, inputs []SeriesInput) *ComebackStats {
	out := &ComebackStats{}
	seen := 0
	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindComeback)
		if a == nil || a.Comeback == nil {
			return
		}
		cb := a.Comeback
		seen++
		if cb.Outcome == model.OutcomeEven {
			out.EvenGames++
			return
		}
		if cb.LeaderTeamID == teamID {
			out.GamesAhead++
			if cb.WinnerTeamID == teamID {
				out.LeadsHeld++
			}
			return
		}
		out.GamesBehind++
		out.Deficits = append(out.Deficits, cb.Deficit)
		if cb.WinnerTeamID == teamID {
			out.Comebacks++
		}
	})
	if seen == 0 {
		return nil
	}
	if out.GamesBehind > 0 {
		out.ComebackRate = float64(out.Comebacks) / float64(out.GamesBehind) * 100
	}
	if out.GamesAhead > 0 {
		out.HoldRate = float64(out.LeadsHeld) / float64(out.GamesAhead) * 100
	}
	return out
}

// RoleCounterStats is the counter-pick line for one role of the team.
type RoleCounterStats struct {
	Role                 model.Role `json:"role"`
	Games                int        `json:"games"`
	CountersMade         int        `json:"countersMade"`
	CounterRate          float64    `json:"counterRate"` // 0..100
	AvgDiffWhenCounter   float64    `json:"avgDiffWhenCounter"`
	AvgDiffWhenCountered float64    `json:"avgDiffWhenCountered"`
	DiffsWhenCounter     []int      `json:"diffsWhenCounter"`
	DiffsWhenCountered   []int      `json:"diffsWhenCountered"`
}

// CounterPickStats summarizes who gets the late pick and what it is worth at
// 15 minutes, plus which champions the team reaches for when countering.
type CounterPickStats struct {
	ByRole           []RoleCounterStats `json:"byRole"`
	CounterChampions FrequencyTable     `json:"counterChampions"`
}

func buildCounterPicks(teamID string, inputs []SeriesInput) *CounterPickStats {
	type accum struct {
		games, counters              int
		diffsCounter, diffsCountered []int
	}
	byRole := make(map[model.Role]*accum)
	champs := make(counter)
	totalCounters := 0

	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindCounterPicks)
		if a == nil || a.CounterPicks == nil {
			return
		}
		for _, e := range a.CounterPicks.Entries {
			if e.TeamID != teamID {
				continue
			}
			acc := byRole[e.Role]
			if acc == nil {
				acc = &accum{}
				byRole[e.Role] = acc
			}
			acc.games++
			if e.IsCounter {
				acc.counters++
				totalCounters++
				champs.add(e.Champion)
				if e.GoldDiffAt15 != nil {
					acc.diffsCounter = append(acc.diffsCounter, *e.GoldDiffAt15)
				}
			} else if e.GoldDiffAt15 != nil {
				acc.diffsCountered = append(acc.diffsCountered, *e.GoldDiffAt15)
			}
		}
	})
	if len(byRole) == 0 {
		return nil
	}

	out := &CounterPickStats{CounterChampions: champs.table(totalCounters, 0)}
	for _, role := range roleOrder {
		acc := byRole[role]
		if acc == nil {
			continue
		}
		rc := RoleCounterStats{
			Role:                 role,
			Games:                acc.games,
			CountersMade:         acc.counters,
			AvgDiffWhenCounter:   mean(acc.diffsCounter),
			AvgDiffWhenCountered: mean(acc.diffsCountered),
			DiffsWhenCounter:     acc.diffsCounter,
			DiffsWhenCountered:   acc.diffsCountered,
		}
		if acc.games > 0 {
			rc.CounterRate = float64(acc.counters) / float64(acc.games) * 100
		}
		out.ByRole = append(out.ByRole, rc)
	}
	return out
}

// RoleRecall is the first-recall timing line for one role.
type RoleRecall struct {
	Role       model.Role `json:"role"`
	Games      int        `json:"games"`
	AvgFirst   float64    `json:"avgFirst"` // seconds
	FirstTimes []float64  `json:"firstTimes"`
}

// RecallStats summarizes inferred first-recall timing per role.
type RecallStats struct {
	ByRole []RoleRecall `json:"byRole"`
}

func buildRecalls(teamID string, inputs []SeriesInput) *RecallStats {
	byRole := make(map[model.Role][]float64)
	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindRecalls)
		if a == nil || a.Recalls == nil {
			return
		}
		for _, pr := range a.Recalls.Players {
			if pr.TeamID != teamID || pr.Role == model.RoleUnknown || len(pr.Times) == 0 {
				continue
			}
			byRole[pr.Role] = append(byRole[pr.Role], pr.Times[0])
		}
	})
	if len(byRole) == 0 {
		return nil
	}

	out := &RecallStats{}
	for _, role := range roleOrder {
		times := byRole[role]
		if len(times) == 0 {
			continue
		}
		sort.Float64s(times)
		out.ByRole = append(out.ByRole, RoleRecall{
			Role:       role,
			Games:      len(times),
			AvgFirst:   meanF(times),
			FirstTimes: times,
		})
	}
	return out
}

// ClassStats is the team's composition identity across its history.
type ClassStats struct {
	Games     int            `json:"games"`
	Classes   FrequencyTable `json:"classes"` // denominator = contributing games
	AvgHardCC float64        `json:"avgHardCC"`
}

func buildClasses(teamID string, inputs []SeriesInput) *ClassStats {
	classes := make(counter)
	games := 0
	hardCC := 0

	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindClassProfile)
		if a == nil || a.ClassProfile == nil {
			return
		}
		var mine *model.TeamClassProfile
		switch teamID {
		case a.ClassProfile.First.TeamID:
			mine = &a.ClassProfile.First
		case a.ClassProfile.Second.TeamID:
			mine = &a.ClassProfile.Second
		default:
			return
		}
		games++
		hardCC += mine.HardCC
		for class, n := range mine.Classes {
			classes[class] += n
		}
	})
	if games == 0 {
		return nil
	}

	return &ClassStats{
		Games:     games,
		Classes:   classes.table(games, 0),
		AvgHardCC: float64(hardCC) / float64(games),
	}
}
