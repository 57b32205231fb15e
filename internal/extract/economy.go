package extract

import (
	"scoutahead/internal/model"
	"scoutahead/internal/timeline"
)

// GoldAt15 reads every player's accumulated worth at the 900s snapshot.
// Games shorter than 15 minutes are excluded entirely rather than reported
// as zero-filled records.
func GoldAt15(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if g.Duration < fifteenMinutes || len(g.Snapshots) == 0 {
		return nil, nil
	}

	snap := timeline.SnapshotAtOrBefore(g.Snapshots, fifteenMinutes)

	data := &model.GoldAt15Data{TeamTotals: make(map[string]int)}
	for _, p := range g.Players {
		gold := 0
		if snap != nil {
			if frame := snap.Frame(p.ID); frame != nil {
				gold = frame.Gold
			}
		}
		data.Players = append(data.Players, model.PlayerGold{
			PlayerID: p.ID,
			Name:     p.Name,
			Champion: p.Champion,
			TeamID:   p.TeamID,
			Role:     ec.Tables.RoleFromName(p.Name),
			Gold:     gold,
		})
		data.TeamTotals[p.TeamID] += gold
	}

	return &model.Analytic{
		Kind:        model.KindGoldAt15,
		Description: "per-player gold at 15 minutes",
		GoldAt15:    data,
	}, nil
}

// Comeback compares team gold totals at 15 minutes against the final result.
// Gaps under the evenness threshold classify as even and are excluded from
// comeback/lead-held counting downstream; otherwise the trailing team winning
// is a comeback and the leading team winning is a held lead.
func Comeback(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if g.Duration < fifteenMinutes || len(g.Snapshots) == 0 || g.WinnerTeamID == "" {
		return nil, nil
	}
	if err := ec.Series.Validate(); err != nil {
		return nil, err
	}

	snap := timeline.SnapshotAtOrBefore(g.Snapshots, fifteenMinutes)
	if snap == nil {
		return nil, nil
	}

	totals := make(map[string]int, 2)
	for _, frame := range snap.Players {
		p := g.PlayerByID(frame.PlayerID)
		if p == nil {
			continue
		}
		totals[p.TeamID] += frame.Gold
	}

	a := ec.Series.Teams[0].ID
	b := ec.Series.Teams[1].ID
	gap := totals[a] - totals[b]
	leader := a
	if gap < 0 {
		leader, gap = b, -gap
	}

	data := &model.ComebackData{
		Deficit:      gap,
		WinnerTeamID: g.WinnerTeamID,
	}
	switch {
	case gap < evennessThreshold:
		data.Outcome = model.OutcomeEven
	case g.WinnerTeamID == leader:
		data.LeaderTeamID = leader
		data.Outcome = model.OutcomeLeadHeld
	default:
		data.LeaderTeamID = leader
		data.Outcome = model.OutcomeComeback
	}

	return &model.Analytic{
		Kind:        model.KindComeback,
		Description: "15-minute gold lead vs final result",
		Comeback:    data,
	}, nil
}
