package extract

import (
	"fmt"
	"strings"

	"scoutahead/internal/model"
	"scoutahead/internal/timeline"
)

// The void grubs pit on the topside river, as an axis-aligned rectangle in
// map units. A player standing anywhere inside is counted as present.
const (
	grubsMonsterPrefix = "VOIDGRUB"

	grubsPitMinX = 9100.0
	grubsPitMaxX = 11500.0
	grubsPitMinY = 6900.0
	grubsPitMaxY = 9900.0
)

func inGrubsPit(x, y float64) bool {
	return x >= grubsPitMinX && x <= grubsPitMaxX && y >= grubsPitMinY && y <= grubsPitMaxY
}

// ObjectivePresence answers "was the killing team's bot-lane carry at the pit
// when the first void grubs died". Skips when the game has no qualifying
// monster kill, the killing team cannot be resolved, or that team has no
// resolvable bot laner.
func ObjectivePresence(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Events) == 0 || len(g.Snapshots) == 0 {
		return nil, nil
	}

	kill := timeline.FirstEvent(g.Events, func(e model.Event) bool {
		return e.Kind == model.EventMonsterKill && strings.HasPrefix(e.Monster, grubsMonsterPrefix)
	})
	if kill == nil {
		return nil, nil
	}

	teamID := kill.TeamID
	if teamID == "" {
		// Fall back to the killer's roster entry.
		if killer := g.PlayerByID(kill.KillerID); killer != nil {
			teamID = killer.TeamID
		}
	}
	if teamID == "" {
		return nil, nil
	}

	adc := roleHolder(ec, teamID, model.RoleBot)
	if adc == nil {
		return nil, nil
	}

	data := &model.ObjectivePresenceData{
		Monster:    kill.Monster,
		KillTime:   kill.Time,
		TeamID:     teamID,
		PlayerID:   adc.ID,
		PlayerName: adc.Name,
	}

	snap := timeline.SnapshotAtOrBefore(g.Snapshots, kill.Time)
	if snap != nil {
		if frame := snap.Frame(adc.ID); frame != nil {
			x, y := frame.X, frame.Y
			data.X, data.Y = &x, &y
			data.AdcJoinedForGrubs = inGrubsPit(x, y)
		}
	}

	return &model.Analytic{
		Kind:              model.KindObjectivePresence,
		Description:       fmt.Sprintf("bot laner presence at first %s kill", kill.Monster),
		ObjectivePresence: data,
	}, nil
}
