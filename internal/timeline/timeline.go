// Package timeline provides the pure lookup helpers every extractor is built
// on. All helpers assume event logs and snapshot lists are sorted ascending
// by time; that is an upstream guarantee, not something checked here.
package timeline

import "scoutahead/internal/model"

// SnapshotAtOrBefore returns the last snapshot whose timestamp is <= t, or
// nil when every snapshot is after t. Single forward scan with early exit on
// the first snapshot strictly after t.
func SnapshotAtOrBefore(snapshots []model.Snapshot, t float64) *model.Snapshot {
	var found *model.Snapshot
	for i := range snapshots {
		if snapshots[i].Time > t {
			break
		}
		found = &snapshots[i]
	}
	return found
}

// FirstEvent returns the first event satisfying pred, or nil.
func FirstEvent(events []model.Event, pred func(model.Event) bool) *model.Event {
	for i := range events {
		if pred(events[i]) {
			return &events[i]
		}
	}
	return nil
}

// EventsWhere returns every event satisfying pred, preserving order.
func EventsWhere(events []model.Event, pred func(model.Event) bool) []model.Event {
	var out []model.Event
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// LevelAt derives a player's experience level at time t: one plus the number
// of level-up events recorded at or before t.
func LevelAt(events []model.Event, playerID string, t float64) int {
	level := 1
	for _, e := range events {
		if e.Time > t {
			break
		}
		if e.Kind == model.EventLevelUp && e.PlayerID == playerID {
			level++
		}
	}
	return level
}

// LastLevelUpAt returns the timestamp of the player's most recent level-up at
// or before t, or 0 if they have not leveled yet.
func LastLevelUpAt(events []model.Event, playerID string, t float64) float64 {
	var last float64
	for _, e := range events {
		if e.Time > t {
			break
		}
		if e.Kind == model.EventLevelUp && e.PlayerID == playerID {
			last = e.Time
		}
	}
	return last
}

// DeathsOf returns the times the player was killed, ascending.
func DeathsOf(events []model.Event, playerID string) []float64 {
	var out []float64
	for _, e := range events {
		if e.Kind == model.EventKill && e.VictimID == playerID {
			out = append(out, e.Time)
		}
	}
	return out
}

// PurchasesBy returns the player's item-purchase events, ascending.
func PurchasesBy(events []model.Event, playerID string) []model.Event {
	return EventsWhere(events, func(e model.Event) bool {
		return e.Kind == model.EventItemPurchased && e.PlayerID == playerID
	})
}
