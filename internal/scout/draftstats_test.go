package scout

import (
	"testing"

	"scoutahead/internal/model"
)

// banPhase builds a BanPhaseData record for the given game number with team A
// on first side.
func banPhase(num int, bansA, bansB, picks, priorUsed []string) *model.BanPhaseData {
	bp := &model.BanPhaseData{
		GameID:     "g" + string(rune('0'+num)),
		GameNumber: num,
		First:      model.TeamBans{TeamID: teamA, Champions: bansA},
		Second:     model.TeamBans{TeamID: teamB, Champions: bansB},
		PriorUsed:  priorUsed,
	}
	for i, c := range picks {
		// Alternate pick ownership, team A first.
		owner := teamA
		if i%2 == 1 {
			owner = teamB
		}
		bp.Picks = append(bp.Picks, model.PickRecord{TeamID: owner, Champion: c, Order: 6 + i})
	}
	return bp
}

func banAnalytic(bp *model.BanPhaseData) model.Analytic {
	return model.Analytic{Kind: model.KindBanPhase, BanPhase: bp}
}

func draftAnalytic(num int, actions []model.DraftAction) model.Analytic {
	return model.Analytic{
		Kind:     model.KindDraftLog,
		DraftLog: &model.DraftLogData{GameID: "g", GameNumber: num, Actions: actions},
	}
}

func TestBanAvailability_OwnBanIsAvailableAndBanned(t *testing.T) {
	bp := banPhase(2, []string{"Zed"}, nil, nil, []string{"Zed"})
	// Even though Zed appears in PriorUsed, the team banning it proves it
	// was available in this game instance.
	avail, banned := banAvailability("Zed", teamA, bp, false)
	if !avail || !banned {
		t.Errorf("own ban: want (true, true), got (%v, %v)", avail, banned)
	}
}

func TestBanAvailability_ConsumedChampions(t *testing.T) {
	bp := banPhase(2,
		[]string{"Zed"},
		[]string{"Yone"},
		[]string{"Orianna"},
		[]string{"Azir"},
	)
	cases := []struct {
		champ string
		avail bool
	}{
		{"Azir", false},    // used in an earlier game
		{"Yone", false},    // banned by the opponent's first phase
		{"Orianna", false}, // picked this game
		{"Ahri", true},     // untouched
	}
	for _, c := range cases {
		avail, banned := banAvailability(c.champ, teamA, bp, false)
		if avail != c.avail || banned {
			t.Errorf("%s: want (avail=%v, banned=false), got (%v, %v)", c.champ, c.avail, avail, banned)
		}
	}
}

func TestBanAvailability_Game1SimpleFrequency(t *testing.T) {
	bp := banPhase(1, []string{"Zed"}, []string{"Yone"}, []string{"Orianna"}, nil)
	avail, banned := banAvailability("Orianna", teamA, bp, true)
	if !avail || banned {
		t.Errorf("game 1 treats everything as available: want (true, false), got (%v, %v)", avail, banned)
	}
}

func TestBuildBanTendencies_BucketsAndRates(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, banAnalytic(banPhase(1, []string{"Zed", "Akali", "Sylas"}, []string{"Yone", "Ahri", "LeBlanc"}, nil, nil))),
			gameWith(2, banAnalytic(banPhase(2, []string{"Zed", "Gragas", "Vi"}, []string{"Yone", "Lee", "Elise"}, nil, nil))),
		)},
		{SeriesID: "s2", Bundle: bundleFor("s2", teamA, teamB,
			gameWith(1, banAnalytic(banPhase(1, []string{"Zed", "Akali", "Gragas"}, []string{"Yone", "Ahri", "LeBlanc"}, nil, nil))),
			// Zed consumed by a game-1 pick in this series, so unavailable here.
			gameWith(2, banAnalytic(banPhase(2, []string{"Renekton", "Gragas", "Vi"}, []string{"Yone", "Lee", "Elise"}, nil, []string{"Zed"}))),
		)},
	}
	bt := buildBanTendencies(teamA, inputs)
	if bt == nil || len(bt.Groups) != 2 {
		t.Fatalf("want buckets 1 and 2, got %+v", bt)
	}

	g1 := bt.Groups[0]
	if g1.Bucket != "1" || g1.Games != 2 {
		t.Fatalf("first group: want bucket 1 over 2 games, got %+v", g1)
	}
	// Akali and Zed both went 2/2; the tie breaks alphabetically.
	if g1.Rates[0].Champion != "Akali" || g1.Rates[0].Rate != 100 {
		t.Errorf("top game-1 ban: want Akali at 100%%, got %+v", g1.Rates[0])
	}
	for _, r := range g1.Rates {
		switch r.Champion {
		case "Zed":
			if r.Banned != 2 || r.Available != 2 || r.Rate != 100 {
				t.Errorf("Zed 2/2 in game 1: want 100%%, got %+v", r)
			}
		case "Sylas":
			if r.Banned != 1 || r.Available != 2 || r.Rate != 50 {
				t.Errorf("Sylas 1/2 in game 1: want 50%%, got %+v", r)
			}
		}
	}

	g2 := bt.Groups[1]
	if g2.Bucket != "2" || g2.Games != 2 {
		t.Fatalf("second group: want bucket 2 over 2 games, got %+v", g2)
	}
	for _, r := range g2.Rates {
		switch r.Champion {
		case "Zed":
			// Banned in s1 game 2, unavailable in s2 game 2: 1 banned / 1 available.
			if r.Banned != 1 || r.Available != 1 || r.Rate != 100 {
				t.Errorf("Zed in bucket 2: want 1/1 (100%%), got %+v", r)
			}
		case "Gragas":
			if r.Banned != 2 || r.Available != 2 {
				t.Errorf("Gragas in bucket 2: want 2/2, got %+v", r)
			}
		}
	}
}

func TestBuildBanTendencies_RatesWithinRange(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, banAnalytic(banPhase(1, []string{"Zed", "Akali", "Sylas"}, []string{"Yone", "Ahri", "LeBlanc"}, nil, nil))),
		)},
	}
	bt := buildBanTendencies(teamA, inputs)
	for _, g := range bt.Groups {
		for _, r := range g.Rates {
			if r.Rate < 0 || r.Rate > 100 {
				t.Errorf("%s: rate out of range: %f", r.Champion, r.Rate)
			}
			if r.Banned > r.Available {
				t.Errorf("%s: banned %d exceeds available %d", r.Champion, r.Banned, r.Available)
			}
		}
	}
}

func TestBuildPickRates(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			// Team A picks Orianna (index 0 of picks), team B picks Jinx.
			gameWith(1, banAnalytic(banPhase(1, []string{"Zed", "Akali", "Sylas"}, []string{"Yone", "Ahri", "LeBlanc"}, []string{"Orianna", "Jinx"}, nil))),
			// Orianna consumed, Azir picked instead.
			gameWith(2, banAnalytic(banPhase(2, []string{"Vi", "Lee", "Elise"}, []string{"Gragas", "Nocturne", "Poppy"}, []string{"Azir", "Kaisa"}, []string{"Orianna", "Jinx"}))),
		)},
	}
	pr := buildPickRates(teamA, inputs)
	if pr == nil || pr.Games != 2 {
		t.Fatalf("want 2 games, got %+v", pr)
	}
	for _, r := range pr.Rates {
		switch r.Champion {
		case "Orianna":
			if r.Picked != 1 || r.Available != 1 || r.Rate != 100 {
				t.Errorf("Orianna: picked when available, unavailable in game 2: want 1/1, got %+v", r)
			}
		case "Azir":
			if r.Picked != 1 || r.Available != 2 || r.Rate != 50 {
				t.Errorf("Azir: available both games, picked once: want 1/2, got %+v", r)
			}
		case "Jinx", "Kaisa":
			t.Errorf("opponent pick %s must not appear in the team's pick rates", r.Champion)
		}
	}
}

func TestBuildReactions_PairsNextSameKindAction(t *testing.T) {
	ban := func(team, champ string) model.DraftAction {
		return model.DraftAction{TeamID: team, Kind: model.DraftBan, Champion: champ}
	}
	actions := []model.DraftAction{
		ban(teamB, "Azir"), ban(teamA, "Kalista"),
		ban(teamB, "Azir"), ban(teamA, "Kalista"),
		ban(teamB, "Renekton"), ban(teamA, "Vi"),
	}
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, draftAnalytic(1, actions[:2])),
			gameWith(2, draftAnalytic(2, actions[2:4])),
			gameWith(3, draftAnalytic(3, actions[4:])),
		)},
	}
	tab := buildReactions(teamA, inputs, model.DraftBan)
	if tab == nil || len(tab.Rows) != 1 {
		t.Fatalf("Azir triggered twice, Renekton once (suppressed): got %+v", tab)
	}
	row := tab.Rows[0]
	if row.Trigger != "Azir" || row.SampleSize != 2 {
		t.Fatalf("want Azir with 2 samples, got %+v", row)
	}
	if row.Responses.Rows[0].Value != "Kalista" || row.Responses.Rows[0].Count != 2 {
		t.Errorf("want Kalista x2 as the response, got %+v", row.Responses.Rows)
	}
}

func TestBuildReactions_BanReactionsStopAtFirstPhase(t *testing.T) {
	ban := func(team, champ string) model.DraftAction {
		return model.DraftAction{TeamID: team, Kind: model.DraftBan, Champion: champ}
	}
	pick := func(team, champ string) model.DraftAction {
		return model.DraftAction{TeamID: team, Kind: model.DraftPick, Champion: champ}
	}
	// Full first phase, then a second ban phase where B bans Azir again.
	game := func() []model.DraftAction {
		return []model.DraftAction{
			ban(teamB, "Azir"), ban(teamA, "Kalista"),
			ban(teamB, "Yone"), ban(teamA, "Vi"),
			ban(teamB, "Ahri"), ban(teamA, "Lee"),
			pick(teamA, "Orianna"), pick(teamB, "Jinx"),
			ban(teamB, "Sylas"), ban(teamA, "Gragas"),
		}
	}
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, draftAnalytic(1, game())),
			gameWith(2, draftAnalytic(2, game())),
		)},
	}
	tab := buildReactions(teamA, inputs, model.DraftBan)
	for _, row := range tab.Rows {
		if row.Trigger == "Sylas" {
			t.Error("second ban phase must not contribute ban reactions")
		}
	}
}
