package scout

import (
	"sort"

	"scoutahead/internal/model"
)

// gameBuckets groups fearless ban statistics by game number: availability
// shrinks with every game of a series, so the rates are only comparable
// within a bucket.
var gameBuckets = []string{"1", "2", "3+"}

// firstPhaseTotal is the number of ban actions forming the first phase
// (three per side, interleaved).
const firstPhaseTotal = 6

func bucketFor(gameNumber int) string {
	switch {
	case gameNumber <= 1:
		return "1"
	case gameNumber == 2:
		return "2"
	}
	return "3+"
}

// BanRate is one champion's availability-aware ban rate within a bucket.
type BanRate struct {
	Champion  string  `json:"champion"`
	Banned    int     `json:"banned"`
	Available int     `json:"available"`
	Rate      float64 `json:"rate"` // 0..100, banned / available
}

// BanGameGroup carries the rates for one game-number bucket.
type BanGameGroup struct {
	Bucket string    `json:"bucket"`
	Games  int       `json:"games"`
	Rates  []BanRate `json:"rates"`
}

// BanTendencies is the first-phase ban profile grouped by game number.
type BanTendencies struct {
	Groups []BanGameGroup `json:"groups"`
}

// buildBanTendencies computes the team's first-phase ban rates. Game 1 uses
// simple frequency over all game-1 records; later buckets recompute each
// candidate champion's availability per game instance. Every ban-phase
// record carries its game ID, so instances are explicit and nothing is
// grouped by unavailable-set fingerprints.
func buildBanTendencies(teamID string, inputs []SeriesInput) *BanTendencies {
	byBucket := make(map[string][]*model.BanPhaseData)
	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindBanPhase)
		if a == nil || a.BanPhase == nil {
			return
		}
		if a.BanPhase.BansFor(teamID) == nil {
			return
		}
		b := bucketFor(a.BanPhase.GameNumber)
		byBucket[b] = append(byBucket[b], a.BanPhase)
	})
	if len(byBucket) == 0 {
		return nil
	}

	out := &BanTendencies{}
	for _, bucket := range gameBuckets {
		records := byBucket[bucket]
		if len(records) == 0 {
			continue
		}
		group := BanGameGroup{Bucket: bucket, Games: len(records)}

		// Candidates: every champion the team banned within the bucket.
		candidates := make(map[string]struct{})
		for _, bp := range records {
			for _, c := range bp.BansFor(teamID) {
				candidates[c] = struct{}{}
			}
		}

		for champ := range candidates {
			r := BanRate{Champion: champ}
			for _, bp := range records {
				avail, banned := banAvailability(champ, teamID, bp, bucket == "1")
				if avail {
					r.Available++
				}
				if banned {
					r.Banned++
				}
			}
			if r.Available > 0 {
				r.Rate = float64(r.Banned) / float64(r.Available) * 100
			}
			group.Rates = append(group.Rates, r)
		}
		sort.Slice(group.Rates, func(i, j int) bool {
			if group.Rates[i].Rate != group.Rates[j].Rate {
				return group.Rates[i].Rate > group.Rates[j].Rate
			}
			if group.Rates[i].Banned != group.Rates[j].Banned {
				return group.Rates[i].Banned > group.Rates[j].Banned
			}
			return group.Rates[i].Champion < group.Rates[j].Champion
		})
		out.Groups = append(out.Groups, group)
	}
	if len(out.Groups) == 0 {
		return nil
	}
	return out
}

// banAvailability resolves one (champion, game instance) pair. A champion the
// team itself banned was by definition available; otherwise it is unavailable
// when consumed by an earlier game of the series, banned by the opponent in
// the first phase, or picked by either side. simpleFreq (game 1) treats every
// record as available, since nothing has been consumed yet.
func banAvailability(champ, teamID string, bp *model.BanPhaseData, simpleFreq bool) (available, banned bool) {
	for _, c := range bp.BansFor(teamID) {
		if c == champ {
			return true, true
		}
	}
	if simpleFreq {
		return true, false
	}
	for _, c := range bp.PriorUsed {
		if c == champ {
			return false, false
		}
	}
	opp := bp.First
	if opp.TeamID == teamID {
		opp = bp.Second
	}
	for _, c := range opp.Champions {
		if c == champ {
			return false, false
		}
	}
	for _, p := range bp.Picks {
		if p.Champion == champ {
			return false, false
		}
	}
	return true, false
}

// PickRate is one champion's availability-aware pick rate.
type PickRate struct {
	Champion  string  `json:"champion"`
	Picked    int     `json:"picked"`
	Available int     `json:"available"`
	Rate      float64 `json:"rate"` // 0..100
}

// PickRates covers the whole history (all game numbers), since picks consume
// availability the same way bans do under the fearless ruleset.
type PickRates struct {
	Games int        `json:"games"`
	Rates []PickRate `json:"rates"`
}

func buildPickRates(teamID string, inputs []SeriesInput) *PickRates {
	var records []*model.BanPhaseData
	eachGame(inputs, func(_ SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindBanPhase)
		if a == nil || a.BanPhase == nil || a.BanPhase.BansFor(teamID) == nil {
			return
		}
		records = append(records, a.BanPhase)
	})
	if len(records) == 0 {
		return nil
	}

	candidates := make(map[string]struct{})
	for _, bp := range records {
		for _, p := range bp.Picks {
			if p.TeamID == teamID {
				candidates[p.Champion] = struct{}{}
			}
		}
	}

	out := &PickRates{Games: len(records)}
	for champ := range candidates {
		r := PickRate{Champion: champ}
		for _, bp := range records {
			avail, picked := pickAvailability(champ, teamID, bp)
			if avail {
				r.Available++
			}
			if picked {
				r.Picked++
			}
		}
		if r.Available > 0 {
			r.Rate = float64(r.Picked) / float64(r.Available) * 100
		}
		out.Rates = append(out.Rates, r)
	}
	sort.Slice(out.Rates, func(i, j int) bool {
		if out.Rates[i].Rate != out.Rates[j].Rate {
			return out.Rates[i].Rate > out.Rates[j].Rate
		}
		if out.Rates[i].Picked != out.Rates[j].Picked {
			return out.Rates[i].Picked > out.Rates[j].Picked
		}
		return out.Rates[i].Champion < out.Rates[j].Champion
	})
	return out
}

// pickAvailability mirrors banAvailability for picks: the team's own pick was
// available; otherwise first-phase bans by either side, opponent picks, and
// earlier-game usage all consume the champion.
func pickAvailability(champ, teamID string, bp *model.BanPhaseData) (available, picked bool) {
	for _, p := range bp.Picks {
		if p.Champion == champ && p.TeamID == teamID {
			return true, true
		}
	}
	for _, c := range bp.PriorUsed {
		if c == champ {
			return false, false
		}
	}
	for _, c := range append(bp.First.Champions, bp.Second.Champions...) {
		if c == champ {
			return false, false
		}
	}
	for _, p := range bp.Picks {
		if p.Champion == champ {
			return false, false
		}
	}
	return true, false
}

// buildReactions builds the conditional reaction table for one draft action
// kind: trigger = an opponent ban/pick, response = the team's next action of
// the same kind strictly after it in submission order. Ban reactions are
// confined to the first ban phase.
func buildReactions(teamID string, inputs []SeriesInput, kind model.DraftKind) *ConditionalTable {
	byTrigger := make(map[string]counter)

	eachGame(inputs, func(in SeriesInput, ga *model.GameAnalytics) {
		a := ga.Find(model.KindDraftLog)
		if a == nil || a.DraftLog == nil {
			return
		}
		oppID := opponentOf(in.Bundle, teamID)

		actions := a.DraftLog.Actions
		limit := len(actions)
		if kind == model.DraftBan {
			// Only the first six bans form the first phase.
			bans := 0
			for i, act := range actions {
				if act.Kind == model.DraftBan {
					bans++
					if bans == firstPhaseTotal {
						limit = i + 1
						break
					}
				}
			}
		}

		for i := 0; i < limit; i++ {
			act := actions[i]
			if act.Kind != kind || act.TeamID != oppID {
				continue
			}
			for j := i + 1; j < limit; j++ {
				next := actions[j]
				if next.Kind != kind || next.TeamID != teamID {
					continue
				}
				if byTrigger[act.Champion] == nil {
					byTrigger[act.Champion] = make(counter)
				}
				byTrigger[act.Champion].add(next.Champion)
				break
			}
		}
	})

	return conditional(byTrigger)
}

// buildDraftHistory keeps the verbatim draft sequences per series.
func buildDraftHistory(inputs []SeriesInput) []SeriesDraft {
	var out []SeriesDraft
	for _, in := range inputs {
		sd := SeriesDraft{SeriesID: in.SeriesID, Opponent: in.Opponent, Date: in.Date}
		for gi := range in.Bundle.Games {
			if a := in.Bundle.Games[gi].Find(model.KindDraftLog); a != nil && a.DraftLog != nil {
				sd.Games = append(sd.Games, *a.DraftLog)
			}
		}
		if len(sd.Games) > 0 {
			out = append(out, sd)
		}
	}
	return out
}
