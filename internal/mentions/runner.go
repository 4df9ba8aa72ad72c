// Package mentions drives the coin-mention counting scan over daily
// discussion threads, mirroring the prediction runner's day handling.
package mentions

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/internal/predict"
	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/db"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/manifest"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/mentions"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

// Runner counts mentions for one thread at a time.
type Runner struct {
	cfg    *models.Config
	source predict.ThreadSource
	store  *storage.Storage
	coins  *mentions.CoinSource
	runs   *db.DB // optional
	logger *slog.Logger
}

func NewRunner(cfg *models.Config, source predict.ThreadSource, store *storage.Storage, runs *db.DB, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		source: source,
		store:  store,
		coins:  mentions.NewCoinSource(cfg.Mentions.CoinCacheDir),
		runs:   runs,
		logger: logger,
	}
}

func (r *Runner) dataPath(date string) string {
	return filepath.Join(r.cfg.Mentions.DataDir, "data-"+date+".json")
}

func (r *Runner) manifestPath() string {
	return filepath.Join(r.cfg.Mentions.DataDir, "manifest.json")
}

func (r *Runner) corpusPath(date string) string {
	return filepath.Join(r.cfg.Mentions.CorpusDir, "comments-"+date+".jsonl")
}

// RunLatest counts today's thread and also refreshes the data.json "latest"
// alias that the dashboard reads.
func (r *Runner) RunLatest(ctx context.Context) error {
	thread, err := r.source.FindLatestDailyThread(ctx, r.cfg.Reddit.Subreddit, r.cfg.Reddit.ThreadQuery)
	if err != nil {
		return fmt.Errorf("failed to find daily thread: %w", err)
	}
	date, ok := predict.ThreadDate(thread.Title)
	if !ok {
		date = time.Now().UTC().Format("2006-01-02")
	}

	report, err := r.processThread(ctx, thread, date, false)
	if err != nil {
		return err
	}
	if err := r.store.SaveJSON(filepath.Join(r.cfg.Mentions.DataDir, "data.json"), report); err != nil {
		return fmt.Errorf("failed to save latest alias: %w", err)
	}

	for i, row := range report.ResultsList {
		if i == 10 {
			break
		}
		fmt.Printf("- %s: %d\n", row.Symbol, row.Count)
	}
	return nil
}

// RunDate counts a historical day's thread, archiving its comment corpus
// for later audits. Returns false when skipped.
func (r *Runner) RunDate(ctx context.Context, date time.Time, force bool) (bool, error) {
	dateStr := date.Format("2006-01-02")
	if !force && r.store.HasFile(r.dataPath(dateStr)) {
		r.logger.Info("mention data exists, skipping", "date", dateStr)
		return false, nil
	}

	thread, err := r.source.FindDailyThreadByDate(ctx, r.cfg.Reddit.Subreddit, r.cfg.Reddit.ThreadQuery, date)
	if err != nil {
		r.logger.Warn("no daily thread found", "date", dateStr, "error", err)
		return false, nil
	}

	if _, err := r.processThread(ctx, thread, dateStr, true); err != nil {
		return false, err
	}
	return true, nil
}

// Backfill counts an inclusive date range oldest-first.
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
	r.logger.Info("backfill done", "processed", processed, "total", total)
	return processed, total, nil
}

func (r *Runner) processThread(ctx context.Context, thread *models.Thread, date string, saveCorpus bool) (*mentions.Report, error) {
	r.logger.Info("processing thread", "title", thread.Title, "date", date)

	comments, err := r.source.Comments(ctx, thread.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	r.logger.Info("fetched comments", "count", len(comments))

	if saveCorpus {
		rows := make([]any, len(comments))
		for i, c := range comments {
			rows[i] = mentions.CorpusEntry{ID: c.ID, Author: c.Author, Body: c.Body}
		}
		if err := r.store.WriteJSONL(r.corpusPath(date), rows); err != nil {
			return nil, fmt.Errorf("failed to save corpus: %w", err)
		}
	}

	coins, err := r.coins.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coin list: %w", err)
	}
	matcher := mentions.NewStrictMatcher(coins, mentions.CountMode(r.cfg.Mentions.CountMode))
	report := mentions.Tally(matcher, thread, comments, r.cfg.Mentions.ExcludeBots)

	if err := r.store.SaveJSON(r.dataPath(date), report); err != nil {
		return nil, fmt.Errorf("failed to save mention data: %w", err)
	}

	m := manifest.Load(r.store, r.manifestPath())
	m = m.Upsert(date, r.dataPath(date))
	if err := m.Save(r.store, r.manifestPath()); err != nil {
		return nil, fmt.Errorf("failed to update manifest: %w", err)
	}

	if r.runs != nil {
		err := r.runs.RecordRun(db.Run{
			Date:         date,
			Kind:         db.KindMentions,
			ThreadTitle:  thread.Title,
			CommentCount: len(comments),
			Status:       db.StatusOK,
		})
		if err != nil {
			r.logger.Warn("failed to record run", "date", date, "error", err)
		}
	}

	r.logger.Info("mention data saved", "path", r.dataPath(date), "symbols", len(report.ResultsList))
	return report, nil
}
