package extract

import (
	"fmt"

	"scoutahead/internal/lookup"
	"scoutahead/internal/model"
	"scoutahead/internal/timeline"
)

// firstPhaseBans is how many bans the modeled draft format submits before any
// pick: three per side, interleaved in submission order.
const firstPhaseBans = 3

// BanPhase captures the first ban phase (the first six ban actions split by
// acting team) together with the fearless context the aggregator needs: every
// pick of the game and the champions consumed by earlier games of the series.
// A game contributes only when both sides reach three captured bans.
func BanPhase(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Draft) == 0 {
		return nil, nil
	}
	if err := ec.Series.Validate(); err != nil {
		return nil, err
	}

	firstID := g.FirstSideTeamID
	secondID := ec.Series.OtherTeam(firstID).ID

	first := model.TeamBans{TeamID: firstID}
	second := model.TeamBans{TeamID: secondID}
	seen := 0
	for _, a := range g.Draft {
		if a.Kind != model.DraftBan {
			continue
		}
		switch a.TeamID {
		case firstID:
			first.Champions = append(first.Champions, a.Champion)
		case secondID:
			second.Champions = append(second.Champions, a.Champion)
		}
		seen++
		if seen == 2*firstPhaseBans {
			break
		}
	}
	if len(first.Champions) < firstPhaseBans || len(second.Champions) < firstPhaseBans {
		// Incomplete ban phase invalidates ban-phase analysis for this game.
		return nil, nil
	}
	first.Champions = first.Champions[:firstPhaseBans]
	second.Champions = second.Champions[:firstPhaseBans]

	data := &model.BanPhaseData{
		GameID:     g.ID,
		GameNumber: g.Number,
		First:      first,
		Second:     second,
		PriorUsed:  priorUsed(ec.Series, g.Number),
	}
	for i, a := range g.Draft {
		if a.Kind == model.DraftPick {
			data.Picks = append(data.Picks, model.PickRecord{TeamID: a.TeamID, Champion: a.Champion, Order: i})
		}
	}

	return &model.Analytic{
		Kind:        model.KindBanPhase,
		Description: "first ban phase with fearless availability context",
		BanPhase:    data,
	}, nil
}

// CounterPicks flags each resolvable lane matchup where a player's champion
// was locked strictly after the lane opponent's. Players with unknown roles,
// missing opponents, or champions absent from the pick sequence are skipped.
func CounterPicks(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Draft) == 0 {
		return nil, nil
	}

	pickOrder := make(map[string]int) // champion → index into Game.Draft
	for i, a := range g.Draft {
		if a.Kind == model.DraftPick {
			if _, dup := pickOrder[a.Champion]; !dup {
				pickOrder[a.Champion] = i
			}
		}
	}

	var snap *model.Snapshot
	if g.Duration >= fifteenMinutes {
		snap = timeline.SnapshotAtOrBefore(g.Snapshots, fifteenMinutes)
	}

	data := &model.CounterPickData{}
	for _, p := range g.Players {
		role := ec.Tables.RoleFromName(p.Name)
		if role == model.RoleUnknown {
			continue
		}
		opp := laneOpponent(g, p, role, ec.Tables)
		if opp == nil {
			continue
		}
		myOrder, ok := pickOrder[p.Champion]
		if !ok {
			continue
		}
		oppOrder, ok := pickOrder[opp.Champion]
		if !ok {
			continue
		}

		entry := model.CounterPickEntry{
			PlayerID:         p.ID,
			Name:             p.Name,
			TeamID:           p.TeamID,
			Role:             role,
			Champion:         p.Champion,
			OpponentChampion: opp.Champion,
			IsCounter:        myOrder > oppOrder,
		}
		if snap != nil {
			mine, theirs := snap.Frame(p.ID), snap.Frame(opp.ID)
			if mine != nil && theirs != nil {
				diff := mine.Gold - theirs.Gold
				entry.GoldDiffAt15 = &diff
			}
		}
		data.Entries = append(data.Entries, entry)
	}

	if len(data.Entries) == 0 {
		return nil, nil
	}
	return &model.Analytic{
		Kind:         model.KindCounterPicks,
		Description:  "draft-order counter picks per lane",
		CounterPicks: data,
	}, nil
}

// laneOpponent finds the other team's player holding the same role.
func laneOpponent(g *model.Game, p model.Player, role model.Role, tables *lookup.Tables) *model.Player {
	for i := range g.Players {
		o := &g.Players[i]
		if o.TeamID == p.TeamID {
			continue
		}
		if tables.RoleFromName(o.Name) == role {
			return o
		}
	}
	return nil
}

// DraftLog keeps the verbatim draft sequence for replay rendering.
func DraftLog(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Draft) == 0 {
		return nil, nil
	}
	actions := make([]model.DraftAction, len(g.Draft))
	copy(actions, g.Draft)
	return &model.Analytic{
		Kind:        model.KindDraftLog,
		Description: fmt.Sprintf("draft actions for game %d", g.Number),
		DraftLog: &model.DraftLogData{
			GameID:     g.ID,
			GameNumber: g.Number,
			Actions:    actions,
		},
	}, nil
}
