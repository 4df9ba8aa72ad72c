package help

const ColdstartYAML = `# crypto-daily-mentions Quick Start

credentials:
  CLIENT_ID: "Reddit OAuth client id (script app)"
  CLIENT_SECRET: "Reddit OAuth client secret"

commands:
  scan_today: |
    crypto-daily-mentions predict daily

  backfill_predictions: |
    crypto-daily-mentions predict backfill --days 30
    crypto-daily-mentions predict backfill --start 2026-08-01 --end 2026-08-15 --force

  recompute_consensus: |
    # Offline; pools the existing snapshots inside the rolling window.
    crypto-daily-mentions predict consensus

  count_mentions: |
    crypto-daily-mentions mentions daily
    crypto-daily-mentions mentions backfill --days 7

  audit_matcher: |
    # Strict vs loose counts over an archived comment corpus.
    crypto-daily-mentions mentions audit --date 2026-08-29

  run_log: |
    crypto-daily-mentions db runs --limit 30

  scheduler: |
    # Foreground daemon; default fires at 23:30 daily.
    crypto-daily-mentions schedule --run-on-start

outputs:
  snapshot: "predictions/eth-preds-<date>.json (per-day predictions + summary)"
  candidates: "predictions/eth-preds-candidates-<date>.jsonl (audit trail, every considered sentence)"
  manifest: "predictions_manifest.json (date -> snapshot file)"
  consensus: "predictions/consensus.json (pooled stats over the rolling window)"
  mentions: "data/data-<date>.json plus data/manifest.json"
  corpus: "corpus/comments-<date>.jsonl (raw bodies for audits)"

run_log:
  - "Runs tracked in SQLite, one row per (date, kind)"
  - "Kinds: predictions, mentions; statuses: ok, skipped, failed"
  - "Re-running a day upserts the row rather than duplicating it"

config: |
  Settings live in config.yaml (override the path with --config).
  Environment variables CLIENT_ID, CLIENT_SECRET, PRED_DIR and
  ROLLING_DAYS take precedence over the file.
`
