package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- One row per processed thread day and scan kind
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_date TEXT NOT NULL,               -- YYYY-MM-DD of the daily thread
    kind TEXT NOT NULL,                   -- predictions | mentions
    thread_title TEXT,
    comment_count INTEGER DEFAULT 0,
    prediction_count INTEGER DEFAULT 0,
    candidate_count INTEGER DEFAULT 0,
    status TEXT NOT NULL,                 -- ok | skipped | failed
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(run_date, kind)
);

CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(run_date);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
`
