package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	dbactions "github.com/shanelightowler/crypto-daily-mentions/internal/db"
	"github.com/shanelightowler/crypto-daily-mentions/internal/mentions"
	"github.com/shanelightowler/crypto-daily-mentions/internal/predict"
	"github.com/shanelightowler/crypto-daily-mentions/internal/schedule"
	"github.com/shanelightowler/crypto-daily-mentions/pkg/help"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Value:   "config.yaml",
		Usage:   "Path to config file",
		Aliases: []string{"c"},
	}
	quietFlag := &cli.BoolFlag{
		Name:  "quiet",
		Usage: "Only log errors",
	}
	rangeFlags := []cli.Flag{
		configFlag,
		quietFlag,
		&cli.StringFlag{Name: "start", Usage: "First date to process (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "end", Usage: "Last date to process (YYYY-MM-DD)"},
		&cli.IntFlag{Name: "days", Usage: "Process the last N days instead of an explicit range"},
		&cli.BoolFlag{Name: "force", Usage: "Reprocess days that already have output"},
	}

	return &cli.App{
		Name:    "crypto-daily-mentions",
		Usage:   "Extract ETH price predictions and coin mentions from daily discussion threads",
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:  "predict",
				Usage: "ETH price prediction extraction",
				Subcommands: []*cli.Command{
					{
						Name:   "daily",
						Usage:  "Scan today's daily thread and update the rolling consensus",
						Flags:  []cli.Flag{configFlag, quietFlag},
						Action: predict.DailyAction,
					},
					{
						Name:   "backfill",
						Usage:  "Scan a historical date range of daily threads",
						Flags:  rangeFlags,
						Action: predict.BackfillAction,
					},
					{
						Name:   "consensus",
						Usage:  "Recompute the rolling consensus from existing snapshots",
						Flags:  []cli.Flag{configFlag, quietFlag},
						Action: predict.ConsensusAction,
					},
				},
			},
			{
				Name:  "mentions",
				Usage: "Coin mention counting",
				Subcommands: []*cli.Command{
					{
						Name:   "daily",
						Usage:  "Count mentions in today's daily thread",
						Flags:  []cli.Flag{configFlag, quietFlag},
						Action: mentions.DailyAction,
					},
					{
						Name:   "backfill",
						Usage:  "Count mentions for a historical date range",
						Flags:  rangeFlags,
						Action: mentions.BackfillAction,
					},
					{
						Name:  "audit",
						Usage: "Compare strict vs loose counting over an archived corpus",
						Flags: []cli.Flag{
							configFlag,
							&cli.StringFlag{Name: "date", Required: true, Usage: "Corpus date (YYYY-MM-DD)"},
						},
						Action: mentions.AuditAction,
					},
				},
			},
			{
				Name:  "db",
				Usage: "Inspect the run log",
				Subcommands: []*cli.Command{
					{
						Name:  "runs",
						Usage: "List recorded scans",
						Flags: []cli.Flag{
							configFlag,
							&cli.IntFlag{Name: "limit", Value: 30, Usage: "Max rows to show (0 = all)"},
						},
						Action: dbactions.RunsAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat sheet of common invocations",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "schedule",
				Usage: "Run the daily scans on a cron timetable",
				Flags: []cli.Flag{
					configFlag,
					quietFlag,
					&cli.StringFlag{Name: "cron", Usage: "Override the configured cron spec"},
					&cli.BoolFlag{Name: "run-on-start", Usage: "Run one scan immediately on startup"},
				},
				Action: schedule.RunAction,
			},
		},
	}
}
