package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scoutahead/internal/model"
)

// SeriesRecord pairs a stored series summary with its analytics bundle.
// Bundle is nil when the series has not been analyzed yet.
type SeriesRecord struct {
	Summary model.SeriesSummary
	Bundle  *model.SeriesAnalytics
}

// InsertSeries stores the raw series document and its summary row. Uses
// INSERT OR REPLACE so re-ingesting an updated document is idempotent.
func (db *DB) InsertSeries(ctx context.Context, s *model.Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode series %s: %w", s.ID, err)
	}
	_, err = db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO series(id, date, tournament, team_a_id, team_a_name, team_b_id, team_b_name, game_count, raw_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Date, s.Tournament,
		s.Teams[0].ID, s.Teams[0].Name,
		s.Teams[1].ID, s.Teams[1].Name,
		len(s.Games), string(raw),
	)
	return err
}

// SeriesExists reports whether a series with the given ID is stored.
func (db *DB) SeriesExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(1) FROM series WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSeries decodes a stored series document, or returns nil when absent.
func (db *DB) GetSeries(ctx context.Context, id string) (*model.Series, error) {
	var raw string
	err := db.conn.QueryRowContext(ctx, "SELECT raw_json FROM series WHERE id = ?", id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s model.Series
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode series %s: %w", id, err)
	}
	return &s, nil
}

// DeleteSeries removes a series and its analytics bundle.
func (db *DB) DeleteSeries(ctx context.Context, id string) error {
	if _, err := db.conn.ExecContext(ctx, "DELETE FROM analytics WHERE series_id = ?", id); err != nil {
		return err
	}
	_, err := db.conn.ExecContext(ctx, "DELETE FROM series WHERE id = ?", id)
	return err
}

// ListSeries returns every stored series summary, newest date first.
func (db *DB) ListSeries(ctx context.Context) ([]model.SeriesSummary, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, date, tournament, team_a_id, team_a_name, team_b_id, team_b_name, game_count
		FROM series ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SeriesSummary
	for rows.Next() {
		var s model.SeriesSummary
		if err := rows.Scan(&s.SeriesID, &s.Date, &s.Tournament,
			&s.TeamAID, &s.TeamAName, &s.TeamBID, &s.TeamBName, &s.GameCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PutBundle stores the analytics bundle as a JSON document keyed by series
// ID, replacing any previous run. Implements runner.BundleStore.
func (db *DB) PutBundle(ctx context.Context, bundle *model.SeriesAnalytics) error {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encode bundle %s: %w", bundle.SeriesID, err)
	}
	_, err = db.conn.ExecContext(ctx, `
		INSERT OR REPLACE INTO analytics(series_id, generated_at, bundle_json)
		VALUES (?, ?, ?)`,
		bundle.SeriesID, bundle.GeneratedAt.Format(time.RFC3339Nano), string(doc),
	)
	return err
}

// GetBundle loads a stored analytics bundle, or nil when absent.
func (db *DB) GetBundle(ctx context.Context, seriesID string) (*model.SeriesAnalytics, error) {
	var doc string
	err := db.conn.QueryRowContext(ctx, "SELECT bundle_json FROM analytics WHERE series_id = ?", seriesID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bundle model.SeriesAnalytics
	if err := json.Unmarshal([]byte(doc), &bundle); err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", seriesID, err)
	}
	return &bundle, nil
}

// RecordsForTeam returns every stored series involving the team together
// with its bundle. Series without a bundle are returned with Bundle nil so
// the caller can report the gap without aborting.
func (db *DB) RecordsForTeam(ctx context.Context, teamID string) ([]SeriesRecord, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT s.id, s.date, s.tournament, s.team_a_id, s.team_a_name, s.team_b_id, s.team_b_name, s.game_count,
		       a.bundle_json
		FROM series s
		LEFT JOIN analytics a ON a.series_id = s.id
		WHERE s.team_a_id = ? OR s.team_b_id = ?
		ORDER BY s.date, s.id`, teamID, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeriesRecord
	for rows.Next() {
		var rec SeriesRecord
		var doc sql.NullString
		if err := rows.Scan(&rec.Summary.SeriesID, &rec.Summary.Date, &rec.Summary.Tournament,
			&rec.Summary.TeamAID, &rec.Summary.TeamAName,
			&rec.Summary.TeamBID, &rec.Summary.TeamBName,
			&rec.Summary.GameCount, &doc); err != nil {
			return nil, err
		}
		if doc.Valid {
			var bundle model.SeriesAnalytics
			if err := json.Unmarshal([]byte(doc.String), &bundle); err != nil {
				return nil, fmt.Errorf("decode bundle %s: %w", rec.Summary.SeriesID, err)
			}
			rec.Bundle = &bundle
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
