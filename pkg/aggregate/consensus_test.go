package aggregate

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

func writeSnapshot(t *testing.T, store *storage.Storage, dir, date string, amounts []float64) models.ManifestEntry {
	t.Helper()
	preds := make([]models.Prediction, len(amounts))
	for i, a := range amounts {
		preds[i] = models.Prediction{Kind: models.KindSingle, Amount: a}
	}
	snap := models.DailySnapshot{
		Date:        date,
		Summary:     Summarize(amounts),
		Predictions: preds,
	}
	path := filepath.Join(dir, "eth-preds-"+date+".json")
	if err := store.SaveJSON(path, snap); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return models.ManifestEntry{Date: date, File: path}
}

func TestComputeConsensus(t *testing.T) {
	dir := t.TempDir()
	store := &storage.Storage{}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	entries := []models.ManifestEntry{
		writeSnapshot(t, store, dir, "2026-08-27", []float64{10000}),
		writeSnapshot(t, store, dir, "2026-08-28", []float64{12000}),
		writeSnapshot(t, store, dir, "2026-08-29", []float64{15000}),
	}

	c := ComputeConsensus(entries, 30, now, store)
	if c.WindowDays != 30 {
		t.Errorf("window_days = %d, want 30", c.WindowDays)
	}
	s := c.Pooled
	if s.Count != 3 {
		t.Fatalf("count = %d, want 3", s.Count)
	}
	if *s.Median != 12000 {
		t.Errorf("median = %v, want 12000", *s.Median)
	}
	if *s.Mean != 12333.33 {
		t.Errorf("mean = %v, want 12333.33", *s.Mean)
	}
	if *s.Min != 10000 || *s.Max != 15000 {
		t.Errorf("min/max = %v/%v, want 10000/15000", *s.Min, *s.Max)
	}
}

func TestComputeConsensusWindowFilter(t *testing.T) {
	dir := t.TempDir()
	store := &storage.Storage{}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	entries := []models.ManifestEntry{
		writeSnapshot(t, store, dir, "2026-06-01", []float64{999999}), // outside window
		writeSnapshot(t, store, dir, "2026-08-29", []float64{5000}),
	}

	c := ComputeConsensus(entries, 30, now, store)
	if c.Pooled.Count != 1 {
		t.Fatalf("count = %d, want 1 (stale day excluded)", c.Pooled.Count)
	}
	if *c.Pooled.Max != 5000 {
		t.Errorf("max = %v, want 5000", *c.Pooled.Max)
	}
}

func TestComputeConsensusSkipsBadEntries(t *testing.T) {
	dir := t.TempDir()
	store := &storage.Storage{}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	entries := []models.ManifestEntry{
		{Date: "not-a-date", File: filepath.Join(dir, "nope.json")},
		{Date: "2026-08-28", File: filepath.Join(dir, "missing.json")},
		writeSnapshot(t, store, dir, "2026-08-29", []float64{7000}),
	}

	c := ComputeConsensus(entries, 30, now, store)
	if c.Pooled.Count != 1 {
		t.Fatalf("count = %d, want 1 (bad entries skipped, not fatal)", c.Pooled.Count)
	}
}

func TestComputeConsensusIgnoresNonPositiveAmounts(t *testing.T) {
	dir := t.TempDir()
	store := &storage.Storage{}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	entries := []models.ManifestEntry{
		writeSnapshot(t, store, dir, "2026-08-29", []float64{0, -100, 4000}),
	}

	c := ComputeConsensus(entries, 30, now, store)
	if c.Pooled.Count != 1 {
		t.Fatalf("count = %d, want 1", c.Pooled.Count)
	}
}
