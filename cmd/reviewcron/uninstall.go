package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/job"
	"github.com/fusionsystems/reviewcron/internal/logger"
	"github.com/fusionsystems/reviewcron/internal/messages"
)

// uninstallCmd represents the uninstall command
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the review-processing crontab entry",
	Long: `Remove every managed registration of the review-processing job
from the crontab. Unrelated entries are preserved; when nothing is
installed the crontab is left untouched.`,
	Run: runUninstall,
}

func runUninstall(cmd *cobra.Command, args []string) {
	cfg := mustValidConfig("")
	log := mustLogger(cfg)

	// The schedule plays no part in matching entries for removal.
	def := job.ProcessReviews(cfg.ProjectPath, cfg.PythonPath, "")
	reg := crontab.NewRegistrar(crontab.NewSystemRunner(), log)
	ctx := context.Background()

	// The lock lives in the project directory. When that directory is
	// gone no other run can hold the lock either, so a stale crontab
	// entry stays removable.
	lock, err := crontab.AcquireLock(def.LockPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, constants.MsgErrorLock, err)
			os.Exit(1)
		}
		log.Debug("project directory missing, proceeding without lock",
			logger.Field{Key: "path", Value: def.LockPath()})
	}
	if lock != nil {
		defer lock.Release()
	}

	res, err := reg.Remove(ctx, def)
	if err != nil {
		if lock != nil {
			lock.Release()
		}
		fmt.Fprintf(os.Stderr, constants.MsgErrorUninstall, err)
		os.Exit(1)
	}

	fmt.Print(messages.FormatRemoveReport(len(res.Removed)))

	if res.Action == crontab.ActionRemoved {
		// Journaling would recreate a removed project directory; skip
		// it when the directory is gone.
		if lock != nil {
			appendJournal(def, res, cfg.Environment, log)
		}
		sendNotification(ctx, string(res.Action), "", "", log)
	}
}
