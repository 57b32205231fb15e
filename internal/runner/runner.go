// Package runner applies the full extractor set to every game of a series
// and persists the resulting bundle. One failing extractor never aborts the
// others: errors and panics are logged and treated as "no result" for that
// extractor on that game.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scoutahead/internal/extract"
	"scoutahead/internal/lookup"
	"scoutahead/internal/model"
)

// BundleStore is the persistence surface the runner needs: a keyed put of
// the analytics document. Satisfied by both storage backends.
type BundleStore interface {
	PutBundle(ctx context.Context, bundle *model.SeriesAnalytics) error
}

// Runner owns the injected lookup tables and the clock used for GeneratedAt.
type Runner struct {
	tables *lookup.Tables
	log    *slog.Logger
	now    func() time.Time
}

// New builds a Runner. A nil logger discards runner diagnostics.
func New(tables *lookup.Tables, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{tables: tables, log: log, now: time.Now}
}

// WithClock overrides the GeneratedAt clock; tests use a fixed instant.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Analyze runs every extractor against every game of the series. The input
// is immutable and each game is independent, so results do not depend on
// processing order. Only the GeneratedAt stamp varies between identical runs.
func (r *Runner) Analyze(series *model.Series) (*model.SeriesAnalytics, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	bundle := &model.SeriesAnalytics{
		SeriesID:    series.ID,
		TeamIDs:     [2]string{series.Teams[0].ID, series.Teams[1].ID},
		GeneratedAt: r.now().UTC(),
	}

	for gi := range series.Games {
		game := &series.Games[gi]
		ga := model.GameAnalytics{GameID: game.ID, GameNumber: game.Number}
		ec := extract.Ctx{Series: series, Game: game, Tables: r.tables}

		for _, ex := range extract.All() {
			result, err := r.runOne(ex, ec)
			if err != nil {
				r.log.Warn("extractor failed",
					"series", series.ID, "game", game.ID,
					"analytic", string(ex.Kind), "err", err)
				continue
			}
			if result == nil {
				r.log.Debug("extractor skipped",
					"series", series.ID, "game", game.ID,
					"analytic", string(ex.Kind))
				continue
			}
			ga.Results = append(ga.Results, *result)
		}
		bundle.Games = append(bundle.Games, ga)
	}

	return bundle, nil
}

// AnalyzeAndStore runs Analyze and persists the bundle keyed by series ID.
func (r *Runner) AnalyzeAndStore(ctx context.Context, store BundleStore, series *model.Series) (*model.SeriesAnalytics, error) {
	bundle, err := r.Analyze(series)
	if err != nil {
		return nil, err
	}
	if err := store.PutBundle(ctx, bundle); err != nil {
		return nil, fmt.Errorf("store bundle for %s: %w", series.ID, err)
	}
	return bundle, nil
}

// runOne isolates a single extractor call, converting panics into errors.
func (r *Runner) runOne(ex extract.Extractor, ec extract.Ctx) (result *model.Analytic, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("panic in %s: %v", ex.Kind, rec)
		}
	}()
	return ex.Run(ec)
}
