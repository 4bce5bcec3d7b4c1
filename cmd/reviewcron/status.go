package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/job"
	"github.com/fusionsystems/reviewcron/internal/journal"
	"github.com/fusionsystems/reviewcron/internal/logger"
	"github.com/fusionsystems/reviewcron/internal/messages"
	"github.com/fusionsystems/reviewcron/internal/schedule"
)

// nextRunCount is how many upcoming activations status shows per entry.
const nextRunCount = 3

var (
	statusOutput  string
	statusHistory int
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the installed registration and recent history",
	Long: `Show the managed crontab entries currently installed, their next
activation times, the job log path, and the tail of the install journal.`,
	Run: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg := mustValidConfig("")
	log := mustLogger(cfg)

	def := job.ProcessReviews(cfg.ProjectPath, cfg.PythonPath, "")
	reg := crontab.NewRegistrar(crontab.NewSystemRunner(), log)

	entries, err := reg.Installed(context.Background(), def)
	if err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorStatus, err)
		os.Exit(1)
	}

	report := buildStatusReport(def, entries, log)

	switch statusOutput {
	case "text":
		fmt.Print(messages.FormatStatusReport(report))
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, constants.MsgErrorStatus, err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, constants.MsgErrorStatus, err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format: %s (expected: text, json, yaml)\n", statusOutput)
		os.Exit(1)
	}
}

// buildStatusReport assembles the report from the installed entries and
// the journal tail. Journal trouble degrades to a report without history.
func buildStatusReport(def job.Definition, entries []string, log *logger.Logger) messages.StatusReport {
	report := messages.StatusReport{
		Installed: len(entries) > 0,
		LogPath:   def.LogPath(),
	}

	for _, raw := range entries {
		entry := messages.StatusEntry{Raw: raw}
		if expr, command, ok := job.SplitEntry(raw); ok {
			entry.Schedule = expr
			entry.Command = command
			if runs, err := schedule.NextRuns(expr, nextRunCount, time.Now()); err == nil {
				entry.NextRuns = runs
			}
		}
		report.Entries = append(report.Entries, entry)
	}

	if statusHistory > 0 {
		tail, err := journal.New(def.JournalPath(), log).Tail(statusHistory)
		if err != nil {
			log.Warn("failed to read install journal",
				logger.Field{Key: "journal", Value: def.JournalPath()},
				logger.Field{Key: "error", Value: err})
			return report
		}
		for _, rec := range tail {
			report.History = append(report.History, messages.HistoryItem{
				Time:     rec.Time,
				Action:   rec.Action,
				Mode:     rec.Mode,
				Schedule: rec.Schedule,
			})
		}
	}

	return report
}

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "output format: text, json or yaml")
	statusCmd.Flags().IntVar(&statusHistory, "history", 5, "journal records to include, 0 disables history")
}
