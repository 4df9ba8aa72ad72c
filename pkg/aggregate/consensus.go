package aggregate

import (
	"time"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

// ComputeConsensus pools every prediction amount from manifest entries whose
// date falls inside the trailing window and summarizes the pooled set. It is
// always a full recomputation — re-reading every snapshot trades I/O for
// correctness under reprocessing and backfill. Malformed dates and missing
// snapshot files exclude the entry, never abort the run.
func ComputeConsensus(entries []models.ManifestEntry, windowDays int, now time.Time, store *storage.Storage) models.ConsensusSnapshot {
	cutoff := now.UTC().AddDate(0, 0, -windowDays).Format("2006-01-02")

	var pooled []float64
	for _, entry := range entries {
		if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
			continue
		}
		if entry.Date < cutoff {
			continue
		}
		if entry.File == "" || !store.HasFile(entry.File) {
			continue
		}

		var snap models.DailySnapshot
		if err := store.LoadJSON(entry.File, &snap); err != nil {
			continue
		}
		for _, p := range snap.Predictions {
			// Defensive: snapshots written by older revisions may carry
			// zeroed amounts.
			if p.Amount > 0 {
				pooled = append(pooled, p.Amount)
			}
		}
	}

	return models.ConsensusSnapshot{
		WindowDays: windowDays,
		AsOf:       now.UTC().Format(time.RFC3339),
		Pooled:     Summarize(pooled),
	}
}
