package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/shanelightowler/crypto-daily-mentions/models"
	dbpkg "github.com/shanelightowler/crypto-daily-mentions/pkg/db"
)

// RunsAction lists recorded scans newest first.
func RunsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := dbpkg.Open(cfg.Database.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-12s %-12s %-9s %-9s %-11s %-8s %-40s\n",
		"Date", "Kind", "Comments", "Preds", "Candidates", "Status", "Thread")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		title := r.ThreadTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-12s %-12s %-9d %-9d %-11d %-8s %-40s\n",
			r.Date, r.Kind, r.CommentCount, r.PredictionCount, r.CandidateCount, r.Status, title)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
