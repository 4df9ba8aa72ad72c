// Package models defines the data types and configuration shared across the
// prediction and mention-counting pipelines.
package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Values come from an optional
// YAML file, with environment variable overrides applied on top.
type Config struct {
	Reddit struct {
		ClientID     string `yaml:"-"` // env only, never from file
		ClientSecret string `yaml:"-"` // env only, never from file
		UserAgent    string `yaml:"user_agent"`
		Subreddit    string `yaml:"subreddit"`
		ThreadQuery  string `yaml:"thread_query"`
	} `yaml:"reddit"`

	Predictions struct {
		OutputDir       string   `yaml:"output_dir"`
		ManifestPath    string   `yaml:"manifest_path"`
		RollingDays     int      `yaml:"rolling_days"`
		SaveCandidates  bool     `yaml:"save_candidates"`
		MinPrice        float64  `yaml:"min_price"`
		MaxPrice        float64  `yaml:"max_price"`
		ExcludedAuthors []string `yaml:"excluded_authors"`
		EnglishOnly     bool     `yaml:"english_only"`
	} `yaml:"predictions"`

	Mentions struct {
		DataDir      string `yaml:"data_dir"`
		CorpusDir    string `yaml:"corpus_dir"`
		CoinCacheDir string `yaml:"coin_cache_dir"`
		CountMode    string `yaml:"count_mode"` // "occurrence" or "per_comment"
		ExcludeBots  bool   `yaml:"exclude_bots"`
	} `yaml:"mentions"`

	Backfill struct {
		PauseSeconds float64 `yaml:"pause_seconds"`
	} `yaml:"backfill"`

	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// LoadConfig reads config from a YAML file, then applies environment variable
// overrides. Defaults are applied before unmarshalling so that absent keys
// keep their default values (some of which are true). A missing file is not
// an error; credentials are only ever read from the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Reddit.ClientID = os.Getenv("CLIENT_ID")
	cfg.Reddit.ClientSecret = os.Getenv("CLIENT_SECRET")

	if v := os.Getenv("PRED_DIR"); v != "" {
		cfg.Predictions.OutputDir = v
	}
	if v := os.Getenv("ROLLING_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Predictions.RollingDays = n
		}
	}
	if v := os.Getenv("DEBUG_SAVE_CANDIDATES"); v != "" {
		cfg.Predictions.SaveCandidates = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Mentions.DataDir = v
	}
	if v := os.Getenv("CORPUS_DIR"); v != "" {
		cfg.Mentions.CorpusDir = v
	}
	if v := os.Getenv("SLEEP_SECS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Backfill.PauseSeconds = f
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = "eth-bullrun-predictions"
	}
	if c.Reddit.Subreddit == "" {
		c.Reddit.Subreddit = "ethereum"
	}
	if c.Reddit.ThreadQuery == "" {
		c.Reddit.ThreadQuery = "Daily General Discussion"
	}
	if c.Predictions.OutputDir == "" {
		c.Predictions.OutputDir = "predictions"
	}
	if c.Predictions.ManifestPath == "" {
		c.Predictions.ManifestPath = "predictions_manifest.json"
	}
	if c.Predictions.RollingDays == 0 {
		c.Predictions.RollingDays = 30
	}
	if c.Predictions.MinPrice == 0 {
		c.Predictions.MinPrice = 100
	}
	if c.Predictions.MaxPrice == 0 {
		c.Predictions.MaxPrice = 1_000_000
	}
	if len(c.Predictions.ExcludedAuthors) == 0 {
		c.Predictions.ExcludedAuthors = []string{"automoderator", "tricky_troll"}
	}
	c.Predictions.SaveCandidates = true
	c.Mentions.ExcludeBots = true
	if c.Mentions.DataDir == "" {
		c.Mentions.DataDir = "data"
	}
	if c.Mentions.CorpusDir == "" {
		c.Mentions.CorpusDir = "corpus"
	}
	if c.Mentions.CoinCacheDir == "" {
		c.Mentions.CoinCacheDir = "cache"
	}
	if c.Mentions.CountMode == "" {
		c.Mentions.CountMode = "occurrence"
	}
	if c.Backfill.PauseSeconds == 0 {
		c.Backfill.PauseSeconds = 1.0
	}
	if c.Schedule.DailyCron == "" {
		c.Schedule.DailyCron = "30 23 * * *"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = filepath.Join("data", "runs.db")
	}
}

// ConsensusPath returns the fixed location of the consensus document.
func (c *Config) ConsensusPath() string {
	return filepath.Join(c.Predictions.OutputDir, "consensus.json")
}

// SnapshotPath returns the day-keyed snapshot location for a date.
func (c *Config) SnapshotPath(date string) string {
	return filepath.Join(c.Predictions.OutputDir, fmt.Sprintf("eth-preds-%s.json", date))
}

// CandidatePath returns the day-keyed candidate audit log location.
func (c *Config) CandidatePath(date string) string {
	return filepath.Join(c.Predictions.OutputDir, fmt.Sprintf("eth-preds-candidates-%s.jsonl", date))
}

// RequireCredentials checks that Reddit API credentials are present. Commands
// that talk to Reddit refuse to start without them.
func (c *Config) RequireCredentials() error {
	if c.Reddit.ClientID == "" || c.Reddit.ClientSecret == "" {
		return fmt.Errorf("set CLIENT_ID and CLIENT_SECRET environment variables for Reddit API auth")
	}
	return nil
}
