package extract

import (
	"strings"

	"scoutahead/internal/model"
	"scoutahead/internal/timeline"
)

// LanePriority classifies mid-lane priority at the first elite-monster kill.
// Higher level holds priority; on equal levels the player who reached that
// level earliest (last level-up timestamp) holds it; a full tie is even.
// This is a total order with an explicit tie-break, not a score.
func LanePriority(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Events) == 0 {
		return nil, nil
	}
	if err := ec.Series.Validate(); err != nil {
		return nil, err
	}

	kill := timeline.FirstEvent(g.Events, func(e model.Event) bool {
		return e.Kind == model.EventMonsterKill && strings.HasPrefix(e.Monster, grubsMonsterPrefix)
	})
	if kill == nil {
		return nil, nil
	}

	firstID := g.FirstSideTeamID
	secondID := ec.Series.OtherTeam(firstID).ID

	firstMid := roleHolder(ec, firstID, model.RoleMid)
	secondMid := roleHolder(ec, secondID, model.RoleMid)
	if firstMid == nil || secondMid == nil {
		return nil, nil
	}

	first := prioritySideAt(g.Events, firstID, firstMid.ID, kill.Time)
	second := prioritySideAt(g.Events, secondID, secondMid.ID, kill.Time)

	data := &model.LanePriorityData{
		Role:          model.RoleMid,
		Monster:       kill.Monster,
		ObjectiveTime: kill.Time,
		First:         first,
		Second:        second,
		HolderTeamID:  priorityHolder(first, second),
	}
	return &model.Analytic{
		Kind:         model.KindLanePriority,
		Description:  "mid priority at first objective",
		LanePriority: data,
	}, nil
}

func prioritySideAt(events []model.Event, teamID, playerID string, t float64) model.PrioritySide {
	return model.PrioritySide{
		TeamID:          teamID,
		PlayerID:        playerID,
		Level:           timeline.LevelAt(events, playerID, t),
		LastLevelUpTime: timeline.LastLevelUpAt(events, playerID, t),
	}
}

// priorityHolder returns the team holding priority, or "" for even.
// Swapping the two sides swaps the result.
func priorityHolder(a, b model.PrioritySide) string {
	switch {
	case a.Level > b.Level:
		return a.TeamID
	case b.Level > a.Level:
		return b.TeamID
	case a.LastLevelUpTime < b.LastLevelUpTime:
		return a.TeamID
	case b.LastLevelUpTime < a.LastLevelUpTime:
		return b.TeamID
	}
	return ""
}
