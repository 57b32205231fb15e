// Package loader decodes series telemetry documents into the model types.
package loader

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"scoutahead/internal/model"
)

// Decode parses a series document from raw JSON, validates it and normalizes
// the per-game timelines. DocHash is a content hash usable as an idempotency
// key for callers that want to skip re-ingesting identical documents.
func Decode(b []byte) (*model.Series, string, error) {
	var series model.Series
	if err := json.Unmarshal(b, &series); err != nil {
		return nil, "", fmt.Errorf("decode series document: %w", err)
	}
	if err := series.Validate(); err != nil {
		return nil, "", err
	}
	normalize(&series)
	hash := fmt.Sprintf("%x", sha256.Sum256(b))
	return &series, hash, nil
}

// LoadFile reads and decodes the series document at path.
func LoadFile(path string) (*model.Series, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read series document: %w", err)
	}
	series, hash, err := Decode(b)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return series, hash, nil
}

// normalize restores the time ordering the extractors depend on. Provider
// exports occasionally interleave event streams from separate feeds.
func normalize(s *model.Series) {
	for gi := range s.Games {
		g := &s.Games[gi]
		sort.SliceStable(g.Events, func(i, j int) bool {
			return g.Events[i].Time < g.Events[j].Time
		})
		sort.SliceStable(g.Snapshots, func(i, j int) bool {
			return g.Snapshots[i].Time < g.Snapshots[j].Time
		})
	}
}
