package extract

import (
	"scoutahead/internal/model"
	"scoutahead/internal/timeline"
)

// Recalls infers voluntary recall starts from purchase events, since the
// event log records no explicit recall. A purchase counts as a recall when it
// happens after the warm-up window, at least the debounce interval after the
// previously accepted recall, and not within the death window after a death
// of the same player (a death-timer shopping trip is not a recall). The
// reported time is the purchase time minus the channel duration.
func Recalls(ec Ctx) (*model.Analytic, error) {
	g := ec.Game
	if len(g.Events) == 0 {
		return nil, nil
	}

	data := &model.RecallData{}
	for _, p := range g.Players {
		purchases := timeline.PurchasesBy(g.Events, p.ID)
		deaths := timeline.DeathsOf(g.Events, p.ID)

		pr := model.PlayerRecalls{
			PlayerID: p.ID,
			Name:     p.Name,
			TeamID:   p.TeamID,
			Role:     ec.Tables.RoleFromName(p.Name),
		}

		lastAccepted := -recallDebounce // so the first purchase is not debounced
		for _, e := range purchases {
			if e.Time < recallWarmup {
				continue
			}
			if e.Time-lastAccepted < recallDebounce {
				continue
			}
			if diedWithin(deaths, e.Time, deathWindow) {
				continue
			}
			lastAccepted = e.Time
			pr.Times = append(pr.Times, e.Time-channelDuration)
		}

		if len(pr.Times) > 0 {
			data.Players = append(data.Players, pr)
		}
	}

	if len(data.Players) == 0 {
		return nil, nil
	}
	return &model.Analytic{
		Kind:        model.KindRecalls,
		Description: "inferred voluntary recall times",
		Recalls:     data,
	}, nil
}

// diedWithin reports whether any death happened in (t-window, t].
func diedWithin(deaths []float64, t, window float64) bool {
	for _, d := range deaths {
		if d > t {
			break
		}
		if t-d <= window {
			return true
		}
	}
	return false
}
