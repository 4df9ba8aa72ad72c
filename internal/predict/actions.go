package predict

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/db"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/langdetect"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/pipeline"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/reddit"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/storage"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func setup(c *cli.Context) (*Runner, *models.Config, *db.DB, error) {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireCredentials(); err != nil {
		return nil, nil, nil, err
	}

	client := reddit.NewClient(c.Context, cfg.Reddit.ClientID, cfg.Reddit.ClientSecret, cfg.Reddit.UserAgent)

	database, err := db.Open(cfg.Database.SQLitePath)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		database = nil
	}

	var lang pipeline.LanguageFilter
	if cfg.Predictions.EnglishOnly {
		lang = langdetect.New()
	}

	runner := NewRunner(cfg, client, &storage.Storage{}, database, lang, logger)
	return runner, cfg, database, nil
}

// DailyAction scans today's daily thread and refreshes the consensus.
func DailyAction(c *cli.Context) error {
	runner, _, database, err := setup(c)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}
	if err := runner.RunLatest(c.Context); err != nil {
		return err
	}
	fmt.Println("Daily prediction snapshot saved")
	return nil
}

// BackfillAction processes a historical date range. Either --start/--end or
// --days selects the range.
func BackfillAction(c *cli.Context) error {
	runner, _, database, err := setup(c)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	var start, end time.Time
	switch {
	case c.String("start") != "" && c.String("end") != "":
		start, err = time.Parse("2006-01-02", c.String("start"))
		if err != nil {
			return fmt.Errorf("invalid --start date: %w", err)
		}
		end, err = time.Parse("2006-01-02", c.String("end"))
		if err != nil {
			return fmt.Errorf("invalid --end date: %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("--end %s is before --start %s", c.String("end"), c.String("start"))
		}
	case c.Int("days") > 0:
		today := time.Now().UTC().Truncate(24 * time.Hour)
		end = today.AddDate(0, 0, -1)
		start = today.AddDate(0, 0, -c.Int("days"))
	default:
		return fmt.Errorf("set either --start and --end (YYYY-MM-DD) or --days")
	}

	processed, total, err := runner.Backfill(c.Context, start, end, c.Bool("force"))
	if err != nil {
		return err
	}
	fmt.Printf("Done. Success: %d/%d\n", processed, total)
	return nil
}

// ConsensusAction recomputes the rolling consensus from existing snapshots
// without touching Reddit.
func ConsensusAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	runner := NewRunner(cfg, nil, &storage.Storage{}, nil, nil, logger)
	if err := runner.RecomputeConsensus(); err != nil {
		return err
	}
	fmt.Printf("Consensus updated (window %dd)\n", cfg.Predictions.RollingDays)
	return nil
}
