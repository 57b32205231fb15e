package extract

import (
	"scoutahead/internal/model"
)

// ClassProfile maps both compositions through the champion-class table:
// per-team class tag counts plus how many champions bring hard crowd control.
// Champions missing from the table contribute nothing.
func ClassProfile(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Players) == 0 {
		return nil, nil
	}
	if err := ec.Series.Validate(); err != nil {
		return nil, err
	}

	firstID := g.FirstSideTeamID
	secondID := ec.Series.OtherTeam(firstID).ID

	profile := func(teamID string) model.TeamClassProfile {
		p := model.TeamClassProfile{TeamID: teamID, Classes: make(map[string]int)}
		for _, pl := range g.Roster(teamID) {
			cc, ok := ec.Tables.ClassOf(pl.Champion)
			if !ok {
				continue
			}
			for _, class := range cc.Classes {
				p.Classes[class]++
			}
			if cc.HardCC {
				p.HardCC++
			}
		}
		return p
	}

	first := profile(firstID)
	second := profile(secondID)
	if len(first.Classes) == 0 && len(second.Classes) == 0 {
		return nil, nil
	}

	return &model.Analytic{
		Kind:        model.KindClassProfile,
		Description: "team composition class profile",
		ClassProfile: &model.ClassProfileData{
			First:  first,
			Second: second,
		},
	}, nil
}
