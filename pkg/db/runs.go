package db

import (
	"fmt"
	"time"
)

// Run kinds.
const (
	KindPredictions = "predictions"
	KindMentions    = "mentions"
)

// Run statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Run is one recorded scan of a daily thread.
type Run struct {
	RunID           int64
	Date            string
	Kind            string
	ThreadTitle     string
	CommentCount    int
	PredictionCount int
	CandidateCount  int
	Status          string
	CreatedAt       time.Time
}

// RecordRun upserts a run keyed on (date, kind), so re-running a day with
// --force replaces its row instead of duplicating it.
func (db *DB) RecordRun(r Run) error {
	_, err := db.Exec(`
		INSERT INTO runs (run_date, kind, thread_title, comment_count, prediction_count, candidate_count, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_date, kind) DO UPDATE SET
			thread_title = excluded.thread_title,
			comment_count = excluded.comment_count,
			prediction_count = excluded.prediction_count,
			candidate_count = excluded.candidate_count,
			status = excluded.status,
			created_at = CURRENT_TIMESTAMP`,
		r.Date, r.Kind, r.ThreadTitle, r.CommentCount, r.PredictionCount, r.CandidateCount, r.Status)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, run_date, kind, COALESCE(thread_title, ''), comment_count, prediction_count, candidate_count, status, created_at
		FROM runs
		ORDER BY run_date DESC, kind`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Date, &r.Kind, &r.ThreadTitle, &r.CommentCount, &r.PredictionCount, &r.CandidateCount, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
