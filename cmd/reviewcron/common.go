package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fusionsystems/reviewcron/internal/config"
	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/job"
	"github.com/fusionsystems/reviewcron/internal/journal"
	"github.com/fusionsystems/reviewcron/internal/logger"
	"github.com/fusionsystems/reviewcron/internal/messages"
	"github.com/fusionsystems/reviewcron/internal/notify"
)

// mustLogger builds the diagnostic logger from cfg. Output goes to stderr
// so stdout stays clean for operator output.
func mustLogger(cfg *config.Config) *logger.Logger {
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: "stderr",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return log
}

// mustValidConfig loads the .env surface, resolves the configuration
// from the environment and exits when validation fails. An explicit
// envFile replaces the default ./.env rather than stacking on top of
// it. Every command goes through here so they all see the same
// environment.
func mustValidConfig(envFile string) *config.Config {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			fmt.Fprintf(os.Stderr, constants.MsgErrorConfig, err)
			os.Exit(1)
		}
	} else if err := config.LoadEnvOptional(constants.DefaultEnvPath); err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorConfig, err)
		os.Exit(1)
	}

	cfg := config.FromEnv()
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprint(os.Stderr, messages.FormatValidationErrors(errs))
		os.Exit(1)
	}
	return cfg
}

// appendJournal records a registrar run in the install journal. The
// crontab mutation already succeeded, so a journal problem is a warning,
// never a failure.
func appendJournal(def job.Definition, res crontab.Result, mode string, log *logger.Logger) {
	rec := journal.NewRecord(string(res.Action), mode, def.Schedule, def.Command(), res.Removed)

	if err := journal.New(def.JournalPath(), log).Append(rec); err != nil {
		log.Warn("failed to record run in journal",
			logger.Field{Key: "journal", Value: def.JournalPath()},
			logger.Field{Key: "error", Value: err})
		return
	}

	log.Debug("journal updated",
		logger.Field{Key: "journal", Value: def.JournalPath()},
		logger.Field{Key: "run_id", Value: rec.RunID})
}

// sendNotification delivers the run summary when notifications are
// configured. Failures are logged and swallowed.
func sendNotification(ctx context.Context, action, schedule, mode string, log *logger.Logger) {
	notifier, err := notify.FromEnv()
	if err != nil {
		log.Warn("notification misconfigured", logger.Field{Key: "error", Value: err})
		return
	}
	if notifier == nil {
		return
	}

	host, _ := os.Hostname()
	text := messages.FormatNotification(action, schedule, mode, host)

	if err := notifier.Notify(ctx, text); err != nil {
		log.Warn("failed to send notification", logger.Field{Key: "error", Value: err})
		return
	}

	log.Debug("notification sent")
}
