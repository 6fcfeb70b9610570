package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded pipeline run.
type Run struct {
	RunID         string
	StartedAt     time.Time
	BaseURL       string
	TotalArticles int
	Succeeded     int
	Failed        int
}

// InsertRun records a new run and returns its generated id.
func (db *DB) InsertRun(startedAt time.Time, baseURL string) (string, error) {
	runID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO runs (run_id, started_at, base_url) VALUES (?, ?, ?)`,
		runID, startedAt.UTC(), baseURL,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return runID, nil
}

// UpdateRunStats stores the final counters for a run.
func (db *DB) UpdateRunStats(runID string, total, succeeded, failed int) error {
	_, err := db.Exec(
		`UPDATE runs SET total_articles = ?, succeeded = ?, failed = ? WHERE run_id = ?`,
		total, succeeded, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT run_id, started_at, base_url, total_articles, succeeded, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.BaseURL, &r.TotalArticles, &r.Succeeded, &r.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
