package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Analysis is one persisted analysis result. Result holds the full result
// union as JSON; ResultType mirrors its discriminator for cheap listing.
type Analysis struct {
	ID         pgtype.UUID
	YouTubeID  string
	URL        string
	ResultType string
	Result     json.RawMessage
	CreatedAt  pgtype.Timestamptz
}

// NewAnalysisParams contains the parameters for persisting an analysis.
type NewAnalysisParams struct {
	YouTubeID  string
	URL        string
	ResultType string
	Result     json.RawMessage
}

// InsertAnalysis stores a new analysis result and returns it with its
// generated id and timestamp.
func (db *DatabaseConnection) InsertAnalysis(ctx context.Context, params NewAnalysisParams) (*Analysis, error) {
	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}

	row := db.QueryRow(ctx, `
		INSERT INTO analyses (id, youtube_id, url, result_type, result)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, youtube_id, url, result_type, result, created_at`,
		id, params.YouTubeID, params.URL, params.ResultType, params.Result)

	return scanAnalysis(row)
}

// GetAnalysis fetches one analysis by id. Returns pgx.ErrNoRows when absent.
func (db *DatabaseConnection) GetAnalysis(ctx context.Context, id pgtype.UUID) (*Analysis, error) {
	row := db.QueryRow(ctx, `
		SELECT id, youtube_id, url, result_type, result, created_at
		FROM analyses
		WHERE id = $1`,
		id)

	return scanAnalysis(row)
}

// LatestAnalysisByYouTubeID fetches the most recent analysis for a channel
// or video id. Returns pgx.ErrNoRows when none exists.
func (db *DatabaseConnection) LatestAnalysisByYouTubeID(ctx context.Context, youtubeID string) (*Analysis, error) {
	row := db.QueryRow(ctx, `
		SELECT id, youtube_id, url, result_type, result, created_at
		FROM analyses
		WHERE youtube_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		youtubeID)

	return scanAnalysis(row)
}

// ListRecentAnalyses returns the newest analyses without their result
// payloads, newest first.
func (db *DatabaseConnection) ListRecentAnalyses(ctx context.Context, limit int) ([]*Analysis, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query(ctx, `
		SELECT id, youtube_id, url, result_type, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("list recent analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.YouTubeID, &a.URL, &a.ResultType, &a.CreatedAt); err != nil {
			return nil, err
		}
		analyses = append(analyses, &a)
	}
	return analyses, rows.Err()
}

func scanAnalysis(row pgx.Row) (*Analysis, error) {
	var a Analysis
	if err := row.Scan(&a.ID, &a.YouTubeID, &a.URL, &a.ResultType, &a.Result, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
