package models

// Summary holds the standard statistics over a set of prediction amounts.
// The pointer fields are null in JSON when Count is zero, matching the
// published snapshot schema.
type Summary struct {
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean_usd"`
	Median *float64 `json:"median_usd"`
	Min    *float64 `json:"min_usd"`
	Max    *float64 `json:"max_usd"`
}

// DailySnapshot is the per-day output document. Reprocessing a date
// overwrites its snapshot wholesale; snapshots are never merged.
type DailySnapshot struct {
	ThreadTitle string       `json:"thread_title"`
	ThreadURL   string       `json:"thread_url"`
	GeneratedAt string       `json:"generated_at_utc"`
	Date        string       `json:"date"`
	Summary     Summary      `json:"summary"`
	Predictions []Prediction `json:"predictions"`
}

// ManifestEntry points at the snapshot file for one processed date.
type ManifestEntry struct {
	Date string `json:"date"`
	File string `json:"file"`
}

// ConsensusSnapshot is the pooled summary over every prediction inside the
// trailing window, recomputed from scratch on every run.
type ConsensusSnapshot struct {
	WindowDays int     `json:"window_days"`
	AsOf       string  `json:"as_of_utc"`
	Pooled     Summary `json:"pooled_predictions"`
}
