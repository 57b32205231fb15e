package timeline

import (
	"testing"

	"scoutahead/internal/model"
)

func snaps(times ...float64) []model.Snapshot {
	out := make([]model.Snapshot, len(times))
	for i, t := range times {
		out[i] = model.Snapshot{Time: t}
	}
	return out
}

func TestSnapshotAtOrBefore(t *testing.T) {
	ss := snaps(60, 120, 180)

	cases := []struct {
		t    float64
		want float64 // -1 = nil expected
	}{
		{59, -1},   // before every snapshot
		{60, 60},   // exact match is at-or-before
		{125, 120}, // between snapshots picks the earlier one
		{180, 180},
		{9999, 180}, // past the end picks the last
	}
	for _, c := range cases {
		got := SnapshotAtOrBefore(ss, c.t)
		if c.want < 0 {
			if got != nil {
				t.Errorf("t=%.0f: want nil, got snapshot at %.0f", c.t, got.Time)
			}
			continue
		}
		if got == nil || got.Time != c.want {
			t.Errorf("t=%.0f: want snapshot at %.0f, got %v", c.t, c.want, got)
		}
	}

	if got := SnapshotAtOrBefore(nil, 100); got != nil {
		t.Errorf("empty list: want nil, got %v", got)
	}
}

func TestLevelAt(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventLevelUp, Time: 50, PlayerID: "p1"},
		{Kind: model.EventLevelUp, Time: 100, PlayerID: "p2"},
		{Kind: model.EventLevelUp, Time: 150, PlayerID: "p1"},
	}

	if got := LevelAt(events, "p1", 10); got != 1 {
		t.Errorf("before any level-up: want 1, got %d", got)
	}
	if got := LevelAt(events, "p1", 150); got != 3 {
		t.Errorf("level-up at exactly t counts: want 3, got %d", got)
	}
	if got := LevelAt(events, "p1", 149); got != 2 {
		t.Errorf("want 2, got %d", got)
	}
	if got := LevelAt(events, "p2", 1000); got != 2 {
		t.Errorf("other player's events must not count: want 2, got %d", got)
	}
}

func TestLastLevelUpAt(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventLevelUp, Time: 50, PlayerID: "p1"},
		{Kind: model.EventLevelUp, Time: 150, PlayerID: "p1"},
	}
	if got := LastLevelUpAt(events, "p1", 100); got != 50 {
		t.Errorf("want 50, got %.0f", got)
	}
	if got := LastLevelUpAt(events, "p1", 40); got != 0 {
		t.Errorf("not yet leveled: want 0, got %.0f", got)
	}
}

func TestDeathsAndPurchases(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventKill, Time: 100, KillerID: "p2", VictimID: "p1"},
		{Kind: model.EventItemPurchased, Time: 130, PlayerID: "p1", Item: "boots"},
		{Kind: model.EventKill, Time: 200, KillerID: "p1", VictimID: "p2"},
		{Kind: model.EventItemPurchased, Time: 250, PlayerID: "p2", Item: "sword"},
	}

	deaths := DeathsOf(events, "p1")
	if len(deaths) != 1 || deaths[0] != 100 {
		t.Errorf("p1 deaths: want [100], got %v", deaths)
	}
	if got := DeathsOf(events, "p3"); got != nil {
		t.Errorf("p3 never died, got %v", got)
	}

	buys := PurchasesBy(events, "p1")
	if len(buys) != 1 || buys[0].Item != "boots" {
		t.Errorf("p1 purchases: want boots, got %v", buys)
	}
}

func TestFirstEvent(t *testing.T) {
	events := []model.Event{
		{Kind: model.EventMonsterKill, Time: 100, Monster: "DRAGON_OCEAN"},
		{Kind: model.EventMonsterKill, Time: 200, Monster: "VOIDGRUB"},
		{Kind: model.EventMonsterKill, Time: 300, Monster: "VOIDGRUB"},
	}
	got := FirstEvent(events, func(e model.Event) bool { return e.Monster == "VOIDGRUB" })
	if got == nil || got.Time != 200 {
		t.Errorf("want the 200s kill, got %v", got)
	}
	if miss := FirstEvent(events, func(e model.Event) bool { return e.Monster == "BARON" }); miss != nil {
		t.Errorf("want nil for no match, got %v", miss)
	}
}
