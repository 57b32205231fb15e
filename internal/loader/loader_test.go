package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"scoutahead/internal/model"
)

const validDoc = `{
  "id": "s1",
  "date": "2026-05-10",
  "teams": [
    {"id": "100", "name": "Alpha"},
    {"id": "200", "name": "Bravo"}
  ],
  "games": [
    {
      "id": "g1",
      "number": 1,
      "firstSideTeamId": "100",
      "duration": 1800,
      "players": [],
      "events": [
        {"kind": "LEVEL_UP", "time": 300, "playerId": "p1"},
        {"kind": "LEVEL_UP", "time": 100, "playerId": "p1"}
      ],
      "snapshots": [
        {"time": 120, "players": []},
        {"time": 60, "players": []}
      ]
    }
  ]
}`

func TestDecode_NormalizesTimelineOrder(t *testing.T) {
	series, hash, err := Decode([]byte(validDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if series.ID != "s1" || hash == "" {
		t.Fatalf("want s1 with a content hash, got %q / %q", series.ID, hash)
	}

	g := series.Games[0]
	if g.Events[0].Time != 100 || g.Events[1].Time != 300 {
		t.Errorf("events not sorted: %v, %v", g.Events[0].Time, g.Events[1].Time)
	}
	if g.Snapshots[0].Time != 60 || g.Snapshots[1].Time != 120 {
		t.Errorf("snapshots not sorted: %v, %v", g.Snapshots[0].Time, g.Snapshots[1].Time)
	}
}

func TestDecode_HashIsContentKeyed(t *testing.T) {
	_, h1, err := Decode([]byte(validDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	_, h2, _ := Decode([]byte(validDoc))
	if h1 != h2 {
		t.Error("identical bytes must hash identically")
	}
}

func TestDecode_RejectsOneTeam(t *testing.T) {
	doc := `{"id": "s1", "teams": [{"id": "100", "name": "Alpha"}], "games": []}`
	_, _, err := Decode([]byte(doc))
	if !errors.Is(err, model.ErrNotTwoTeams) {
		t.Fatalf("want ErrNotTwoTeams, got %v", err)
	}
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	if _, _, err := Decode([]byte("{nope")); err == nil {
		t.Fatal("want a decode error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	if err := os.WriteFile(path, []byte(validDoc), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	series, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if series.ID != "s1" {
		t.Errorf("want s1, got %q", series.ID)
	}

	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("want an error for a missing file")
	}
}
