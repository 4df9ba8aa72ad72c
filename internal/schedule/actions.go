// Package schedule runs the daily scans on a cron timetable, for
// deployments that prefer a long-lived process over external cron.
package schedule

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"

	"github.com/shanelightowler/crypto-daily-mentions/internal/mentions"
	"github.com/shanelightowler/crypto-daily-mentions/internal/predict"
	"github.com/shanelightowler/crypto-daily-mentions/models"
)

// RunAction starts the scheduler and blocks until interrupted. Each tick
// runs the prediction scan and then the mention scan for the current day.
func RunAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	spec := cfg.Schedule.DailyCron
	if s := c.String("cron"); s != "" {
		spec = s
	}

	run := func() {
		logger.Info("scheduled scan starting")
		if err := predict.DailyAction(c); err != nil {
			logger.Error("prediction scan failed", "error", err)
		}
		if err := mentions.DailyAction(c); err != nil {
			logger.Error("mention scan failed", "error", err)
		}
		logger.Info("scheduled scan finished")
	}

	sched := cron.New()
	if _, err := sched.AddFunc(spec, run); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}

	if c.Bool("run-on-start") {
		run()
	}

	sched.Start()
	logger.Info("scheduler started", "cron", spec)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	sched.Stop()
	logger.Info("scheduler stopped")
	return nil
}
