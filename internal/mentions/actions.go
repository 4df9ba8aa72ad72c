package mentions

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/db"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/mentions"
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

func setup(c *cli.Context) (*Runner, *db.DB, error) {
	logger := newLogger(c)

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireCredentials(); err != nil {
		return nil, nil, err
	}

	client := reddit.NewClient(c.Context, cfg.Reddit.ClientID, cfg.Reddit.ClientSecret, cfg.Reddit.UserAgent)

	database, err := db.Open(cfg.Database.SQLitePath)
	if err != nil {
		logger.Warn("run log unavailable", "error", err)
		database = nil
	}

	return NewRunner(cfg, client, &storage.Storage{}, database, logger), database, nil
}

// DailyAction counts mentions in today's thread.
func DailyAction(c *cli.Context) error {
	runner, database, err := setup(c)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}
	return runner.RunLatest(c.Context)
}

// BackfillAction counts mentions for a historical date range.
func BackfillAction(c *cli.Context) error {
	runner, database, err := setup(c)
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

// AuditAction compares the strict production matcher against a loose
// count-everything matcher over an archived day's corpus.
func AuditAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	date := c.String("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
	}

	store := &storage.Storage{}
	corpusPath := filepath.Join(cfg.Mentions.CorpusDir, "comments-"+date+".jsonl")
	corpus, err := storage.ReadJSONL[mentions.CorpusEntry](store, corpusPath)
	if err != nil {
		return fmt.Errorf("missing corpus for %s, run a backfill first: %w", date, err)
	}

	coins, err := mentions.NewCoinSource(cfg.Mentions.CoinCacheDir).Fetch(c.Context)
	if err != nil {
		return fmt.Errorf("failed to fetch coin list: %w", err)
	}

	targets := []string{"BTC", "ETH", "XRP", "SOL", "ADA", "LINK", "USDC", "MOON"}
	rows := mentions.Audit(coins, corpus, targets)

	fmt.Printf("Corpus: %d comments\n", len(corpus))
	fmt.Println("Symbol,Strict,Loose")
	for _, row := range rows {
		fmt.Printf("%s,%d,%d\n", row.Symbol, row.Strict, row.Loose)
	}
	return nil
}
