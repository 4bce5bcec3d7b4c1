package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fusionsystems/reviewcron/internal/config"
	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/job"
	"github.com/fusionsystems/reviewcron/internal/logger"
	"github.com/fusionsystems/reviewcron/internal/messages"
	"github.com/fusionsystems/reviewcron/internal/metrics"
	"github.com/fusionsystems/reviewcron/internal/schedule"
)

var (
	installDryRun  bool
	installEnvFile string
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the review-processing crontab entry",
	Long: `Install (or replace) the crontab entry that periodically runs
manage.py process_reviews. The schedule follows the ENVIRONMENT variable:
production runs nightly at 02:00, everything else every 5 minutes.
Prior registrations of the job are replaced; all other crontab lines are
preserved byte-for-byte.`,
	Run: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) {
	cfg := mustValidConfig(installEnvFile)
	log := mustLogger(cfg)

	table, err := schedule.Load(cfg.TierFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorConfig, err)
		os.Exit(1)
	}

	def := job.ProcessReviews(cfg.ProjectPath, cfg.PythonPath, table.Select(cfg.Environment))
	reg := crontab.NewRegistrar(crontab.NewSystemRunner(), log)
	ctx := context.Background()

	log.Debug("resolved job definition",
		logger.Field{Key: "mode", Value: cfg.Environment},
		logger.Field{Key: "schedule", Value: def.Schedule},
		logger.Field{Key: "command", Value: def.Command()})

	if installDryRun {
		current, err := reg.Installed(ctx, def)
		if err != nil {
			fmt.Fprintf(os.Stderr, constants.MsgErrorStatus, err)
			os.Exit(1)
		}
		fmt.Print(messages.FormatDryRunReport(def, cfg.Environment, current))
		return
	}

	// The recursive mkdir runs first: it also creates the project
	// directory when that does not exist yet, and the lock file lives
	// inside it. A bad path never fails registration.
	if err := def.EnsureLogDir(); err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorLogDir, err)
		os.Exit(1)
	}

	lock, err := crontab.AcquireLock(def.LockPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorLock, err)
		os.Exit(1)
	}
	defer lock.Release()

	res, err := reg.Install(ctx, def)
	if err != nil {
		lock.Release()
		fmt.Fprintf(os.Stderr, constants.MsgErrorInstall, err)
		os.Exit(1)
	}

	fmt.Print(messages.FormatInstallReport(res, def, cfg.Environment))

	appendJournal(def, res, cfg.Environment, log)
	writeMetrics(cfg, res, log)
	sendNotification(ctx, string(res.Action), def.Schedule, cfg.Environment, log)
}

// writeMetrics drops an install snapshot into the textfile collector
// directory when one is configured.
func writeMetrics(cfg *config.Config, res crontab.Result, log *logger.Logger) {
	if cfg.TextfileDir == "" {
		return
	}

	m := metrics.InitInstallMetrics()
	m.RecordRun(time.Now(), len(res.Removed), true)

	path, err := m.WriteTextfile(cfg.TextfileDir)
	if err != nil {
		log.Warn("failed to write metrics textfile",
			logger.Field{Key: "dir", Value: cfg.TextfileDir},
			logger.Field{Key: "error", Value: err})
		return
	}

	log.Debug("metrics textfile written", logger.Field{Key: "path", Value: path})
}

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "print the entry and planned changes without writing the crontab")
	installCmd.Flags().StringVar(&installEnvFile, "env-file", "", "load environment variables from this file before reading the environment")
}
