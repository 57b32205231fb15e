package scout

import (
	"testing"
	"time"

	"scoutahead/internal/model"
)

const (
	teamA = "100"
	teamB = "200"
	teamC = "300"
)

func bundleFor(seriesID, a, b string, games ...model.GameAnalytics) *model.SeriesAnalytics {
	return &model.SeriesAnalytics{
		SeriesID: seriesID,
		TeamIDs:  [2]string{a, b},
		Games:    games,
	}
}

func gameWith(num int, analytics ...model.Analytic) model.GameAnalytics {
	return model.GameAnalytics{GameID: "g" + string(rune('0'+num)), GameNumber: num, Results: analytics}
}

func presenceAnalytic(teamID string, joined bool) model.Analytic {
	return model.Analytic{
		Kind: model.KindObjectivePresence,
		ObjectivePresence: &model.ObjectivePresenceData{
			Monster: "VOIDGRUB", TeamID: teamID, AdcJoinedForGrubs: joined,
		},
	}
}

func comebackAnalytic(leader, winner string, deficit int, outcome model.ComebackOutcome) model.Analytic {
	return model.Analytic{
		Kind: model.KindComeback,
		Comeback: &model.ComebackData{
			LeaderTeamID: leader, WinnerTeamID: winner, Deficit: deficit, Outcome: outcome,
		},
	}
}

func recallAnalytic(teamID string, role model.Role, times ...float64) model.Analytic {
	return model.Analytic{
		Kind: model.KindRecalls,
		Recalls: &model.RecallData{Players: []model.PlayerRecalls{
			{PlayerID: "p", TeamID: teamID, Role: role, Times: times},
		}},
	}
}

func TestBuildReport_FiltersIrrelevantSeries(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB, gameWith(1))},
		{SeriesID: "s2", Bundle: bundleFor("s2", teamB, teamC, gameWith(1), gameWith(2))},
		{SeriesID: "s3", Bundle: nil},
	}
	rep := BuildReport(teamA, inputs, nil)
	if rep.SeriesCount != 1 || rep.GameCount != 1 {
		t.Errorf("only s1 involves %s: want 1 series / 1 game, got %d / %d",
			teamA, rep.SeriesCount, rep.GameCount)
	}
}

func TestBuildReport_SparseDataYieldsNilSections(t *testing.T) {
	rep := BuildReport(teamA, []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB, gameWith(1))},
	}, nil)

	if rep.BanTendencies != nil || rep.GoldAt15 != nil || rep.Recalls != nil {
		t.Error("games without analytics must leave sections nil, not error")
	}
	if rep.SeriesCount != 1 {
		t.Errorf("the series still counts, got %d", rep.SeriesCount)
	}
}

func TestBuildReport_FixedClock(t *testing.T) {
	fixed := func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	rep := BuildReport(teamA, nil, fixed)
	if !rep.GeneratedAt.Equal(fixed()) {
		t.Errorf("want GeneratedAt %v, got %v", fixed(), rep.GeneratedAt)
	}
}

func TestBuildPresence(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, presenceAnalytic(teamA, true)),
			gameWith(2, presenceAnalytic(teamB, true)), // opponent took grubs, not qualifying
			gameWith(3, presenceAnalytic(teamA, false)),
		)},
	}
	p := buildPresence(teamA, inputs)
	if p == nil {
		t.Fatal("want presence stats, got nil")
	}
	if p.Qualifying != 2 || p.Present != 1 || p.Rate != 50 {
		t.Errorf("want 1/2 present (50%%), got %+v", p)
	}
}

func TestBuildPresence_NoQualifyingGames(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, presenceAnalytic(teamB, true)),
		)},
	}
	if p := buildPresence(teamA, inputs); p != nil {
		t.Errorf("no games where %s took grubs: want nil, got %+v", teamA, p)
	}
}

func TestBuildComebacks(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, comebackAnalytic(teamB, teamA, 1200, model.OutcomeComeback)), // behind, won
			gameWith(2, comebackAnalytic(teamB, teamB, 800, model.OutcomeLeadHeld)),  // behind, lost
			gameWith(3, comebackAnalytic(teamA, teamA, 600, model.OutcomeLeadHeld)),  // ahead, won
			gameWith(4, comebackAnalytic("", teamA, 300, model.OutcomeEven)),
		)},
	}
	cb := buildComebacks(teamA, inputs)
	if cb == nil {
		t.Fatal("want comeback stats, got nil")
	}
	if cb.GamesBehind != 2 || cb.Comebacks != 1 || cb.ComebackRate != 50 {
		t.Errorf("behind: want 1/2 (50%%), got %+v", cb)
	}
	if cb.GamesAhead != 1 || cb.LeadsHeld != 1 || cb.HoldRate != 100 {
		t.Errorf("ahead: want 1/1 (100%%), got %+v", cb)
	}
	if cb.EvenGames != 1 {
		t.Errorf("want 1 even game, got %d", cb.EvenGames)
	}
	if len(cb.Deficits) != 2 {
		t.Errorf("deficits track games behind only, got %v", cb.Deficits)
	}
}

func TestBuildRecalls_FirstRecallPerGame(t *testing.T) {
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, recallAnalytic(teamA, model.RoleMid, 400, 700)),
			gameWith(2, recallAnalytic(teamA, model.RoleMid, 300)),
			gameWith(3, recallAnalytic(teamB, model.RoleMid, 200)), // opponent's recalls
		)},
	}
	rs := buildRecalls(teamA, inputs)
	if rs == nil || len(rs.ByRole) != 1 {
		t.Fatalf("want one mid row, got %+v", rs)
	}
	row := rs.ByRole[0]
	if row.Role != model.RoleMid || row.Games != 2 {
		t.Fatalf("want mid over 2 games, got %+v", row)
	}
	// Only the first recall of each game counts: 400 and 300.
	if row.AvgFirst != 350 {
		t.Errorf("want avg 350, got %f", row.AvgFirst)
	}
	if row.FirstTimes[0] != 300 || row.FirstTimes[1] != 400 {
		t.Errorf("times are reported sorted, got %v", row.FirstTimes)
	}
}

func TestBuildClasses(t *testing.T) {
	profile := model.Analytic{
		Kind: model.KindClassProfile,
		ClassProfile: &model.ClassProfileData{
			First:  model.TeamClassProfile{TeamID: teamA, Classes: map[string]int{"mage": 2, "tank": 1}, HardCC: 3},
			Second: model.TeamClassProfile{TeamID: teamB, Classes: map[string]int{"marksman": 5}, HardCC: 0},
		},
	}
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB,
			gameWith(1, profile), gameWith(2, profile),
		)},
	}
	cs := buildClasses(teamA, inputs)
	if cs == nil || cs.Games != 2 {
		t.Fatalf("want 2 contributing games, got %+v", cs)
	}
	if cs.AvgHardCC != 3 {
		t.Errorf("want avg hard CC 3, got %f", cs.AvgHardCC)
	}
	if cs.Classes.Rows[0].Value != "mage" || cs.Classes.Rows[0].Count != 4 {
		t.Errorf("want mage x4 on top, got %+v", cs.Classes.Rows)
	}
	// The opponent's marksman comp must not bleed in.
	for _, row := range cs.Classes.Rows {
		if row.Value == "marksman" {
			t.Error("opponent classes leaked into the team profile")
		}
	}
}

func TestBuildGold(t *testing.T) {
	gold := model.Analytic{
		Kind: model.KindGoldAt15,
		GoldAt15: &model.GoldAt15Data{
			Players: []model.PlayerGold{
				{PlayerID: "p1", TeamID: teamA, Role: model.RoleMid, Gold: 5000},
				{PlayerID: "p2", TeamID: teamA, Role: model.RoleUnknown, Gold: 4000},
				{PlayerID: "p3", TeamID: teamB, Role: model.RoleMid, Gold: 4500},
			},
			TeamTotals: map[string]int{teamA: 9000, teamB: 4500},
		},
	}
	inputs := []SeriesInput{
		{SeriesID: "s1", Bundle: bundleFor("s1", teamA, teamB, gameWith(1, gold))},
	}
	gs := buildGold(teamA, inputs)
	if gs == nil || gs.Games != 1 || gs.TeamAvg != 9000 {
		t.Fatalf("want one game at 9000 total, got %+v", gs)
	}
	if len(gs.ByRole) != 1 || gs.ByRole[0].Role != model.RoleMid {
		t.Errorf("unknown roles are excluded from the breakdown, got %+v", gs.ByRole)
	}
}
