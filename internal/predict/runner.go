// Package predict drives the daily price-prediction scan: locate the daily
// discussion thread, run its comments through the extraction pipeline, and
// maintain the snapshot, manifest and rolling-consensus files.
package predict

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/aggregate"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/db"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/manifest"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/money"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/pipeline"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

// ThreadSource is the slice of the Reddit client the runner needs. Tests
// substitute a fixture-backed implementation.
type ThreadSource interface {
	FindLatestDailyThread(ctx context.Context, subreddit, query string) (*models.Thread, error)
	FindDailyThreadByDate(ctx context.Context, subreddit, query string, date time.Time) (*models.Thread, error)
	Comments(ctx context.Context, threadID string) ([]models.Comment, error)
}

// Runner processes one daily thread end to end.
type Runner struct {
	cfg    *models.Config
	source ThreadSource
	store  *storage.Storage
	runs   *db.DB // optional; nil disables the run log
	pipe   *pipeline.Pipeline
	logger *slog.Logger
}

func NewRunner(cfg *models.Config, source ThreadSource, store *storage.Storage, runs *db.DB, lang pipeline.LanguageFilter, logger *slog.Logger) *Runner {
	bounds := money.Bounds{Min: cfg.Predictions.MinPrice, Max: cfg.Predictions.MaxPrice}
	return &Runner{
		cfg:    cfg,
		source: source,
		store:  store,
		runs:   runs,
		pipe:   pipeline.New(bounds, cfg.Predictions.ExcludedAuthors, lang),
		logger: logger,
	}
}

// RunLatest scans today's thread, found by recency search.
func (r *Runner) RunLatest(ctx context.Context) error {
	thread, err := r.source.FindLatestDailyThread(ctx, r.cfg.Reddit.Subreddit, r.cfg.Reddit.ThreadQuery)
	if err != nil {
		return fmt.Errorf("failed to find daily thread: %w", err)
	}
	date, ok := ThreadDate(thread.Title)
	if !ok {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if err := r.processThread(ctx, thread, date); err != nil {
		return err
	}
	return r.RecomputeConsensus()
}

var threadDateRe = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}`)

// ThreadDate extracts the day a thread covers from its title, which names
// the date as e.g. "August 29, 2026". The title is authoritative over the
// wall clock: a scan started just after midnight still files under the
// thread's own day.
func ThreadDate(title string) (string, bool) {
	m := threadDateRe.FindString(title)
	if m == "" {
		return "", false
	}
	t, err := time.Parse("January 2, 2006", m)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// RunDate scans the thread for a specific past date. Returns false without
// error when the snapshot already exists and force is off, or when no
// thread could be found for that date.
func (r *Runner) RunDate(ctx context.Context, date time.Time, force bool) (bool, error) {
	dateStr := date.Format("2006-01-02")
	outPath := r.cfg.SnapshotPath(dateStr)
	if !force && r.store.HasFile(outPath) {
		r.logger.Info("snapshot exists, skipping", "date", dateStr)
		return false, nil
	}

	thread, err := r.source.FindDailyThreadByDate(ctx, r.cfg.Reddit.Subreddit, r.cfg.Reddit.ThreadQuery, date)
	if err != nil {
		r.logger.Warn("no daily thread found", "date", dateStr, "error", err)
		return false, nil
	}

	if err := r.processThread(ctx, thread, dateStr); err != nil {
		return false, err
	}
	return true, nil
}

// Backfill processes an inclusive date range oldest-first, pausing between
// days to stay polite, and recomputes the consensus once at the end.
func (r *Runner) Backfill(ctx context.Context, start, end time.Time, force bool) (int, int, error) {
	pause := time.Duration(r.cfg.Backfill.PauseSeconds) * time.Second
	processed, total := 0, 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total++
		ok, err := r.RunDate(ctx, d, force)
		if err != nil {
			r.logger.Error("day failed", "date", d.Format("2006-01-02"), "error", err)
			continue
		}
		if ok {
			processed++
			if pause > 0 && d.Before(end) {
				select {
				case <-ctx.Done():
					return processed, total, ctx.Err()
				case <-time.After(pause):
				}
			}
		}
	}
	if err := r.RecomputeConsensus(); err != nil {
		return processed, total, err
	}
	r.logger.Info("backfill done", "processed", processed, "total", total)
	return processed, total, nil
}

func (r *Runner) processThread(ctx context.Context, thread *models.Thread, date string) error {
	r.logger.Info("processing thread", "title", thread.Title, "date", date)

	comments, err := r.source.Comments(ctx, thread.ID)
	if err != nil {
		r.recordRun(date, thread.Title, 0, 0, 0, db.StatusFailed)
		return fmt.Errorf("failed to fetch comments: %w", err)
	}
	r.logger.Info("fetched comments", "count", len(comments))

	predictions, candidates := r.pipe.ProcessComments(comments)

	amounts := make([]float64, 0, len(predictions))
	for _, p := range predictions {
		if p.Amount > 0 {
			amounts = append(amounts, p.Amount)
		}
	}

	snapshot := models.DailySnapshot{
		ThreadTitle: thread.Title,
		ThreadURL:   thread.URL(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Date:        date,
		Summary:     aggregate.Summarize(amounts),
		Predictions: predictions,
	}
	outPath := r.cfg.SnapshotPath(date)
	if err := r.store.SaveJSON(outPath, snapshot); err != nil {
		r.recordRun(date, thread.Title, len(comments), len(predictions), len(candidates), db.StatusFailed)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	if r.cfg.Predictions.SaveCandidates {
		rows := make([]any, len(candidates))
		for i, c := range candidates {
			rows[i] = c
		}
		if err := r.store.WriteJSONL(r.cfg.CandidatePath(date), rows); err != nil {
			return fmt.Errorf("failed to save candidate log: %w", err)
		}
	}

	m := manifest.Load(r.store, r.cfg.Predictions.ManifestPath)
	m = m.Upsert(date, outPath)
	if err := m.Save(r.store, r.cfg.Predictions.ManifestPath); err != nil {
		return fmt.Errorf("failed to update manifest: %w", err)
	}

	r.recordRun(date, thread.Title, len(comments), len(predictions), len(candidates), db.StatusOK)
	r.logger.Info("snapshot saved", "path", outPath, "predictions", len(predictions))
	return nil
}

// RecomputeConsensus pools every snapshot inside the rolling window and
// rewrites the consensus file.
func (r *Runner) RecomputeConsensus() error {
	m := manifest.Load(r.store, r.cfg.Predictions.ManifestPath)
	consensus := aggregate.ComputeConsensus(m, r.cfg.Predictions.RollingDays, time.Now(), r.store)
	if err := r.store.SaveJSON(r.cfg.ConsensusPath(), consensus); err != nil {
		return fmt.Errorf("failed to save consensus: %w", err)
	}
	r.logger.Info("consensus updated", "window_days", r.cfg.Predictions.RollingDays)
	return nil
}

func (r *Runner) recordRun(date, title string, comments, predictions, candidates int, status string) {
	if r.runs == nil {
		return
	}
	err := r.runs.RecordRun(db.Run{
		Date:            date,
		Kind:            db.KindPredictions,
		ThreadTitle:     title,
		CommentCount:    comments,
		PredictionCount: predictions,
		CandidateCount:  candidates,
		Status:          status,
	})
	if err != nil {
		r.logger.Warn("failed to record run", "date", date, "error", err)
	}
}
