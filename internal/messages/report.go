// Package messages composes the operator-facing output of the reviewcron
// commands from the message constants. Everything here goes to stdout;
// diagnostics go through the logger on stderr.
package messages

import (
	"fmt"
	"strings"
	"time"

	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/doctor"
	"github.com/fusionsystems/reviewcron/internal/job"
)

// historyTimeLayout keeps journal timestamps scannable in a terminal.
const historyTimeLayout = "2006-01-02 15:04"

// FormatInstallReport formats the confirmation printed after a successful
// install: banner, the active entry, schedule and mode, log path and a
// ready-to-run removal command.
func FormatInstallReport(res crontab.Result, def job.Definition, mode string) string {
	builder := &strings.Builder{}

	builder.WriteString(constants.MsgInstalled)
	builder.WriteString(fmt.Sprintf(constants.MsgInstalledEntry, res.Entry))
	builder.WriteString(fmt.Sprintf(constants.MsgInstalledSchedule, def.Schedule, mode))
	builder.WriteString(fmt.Sprintf(constants.MsgInstalledLogs, def.LogPath()))
	builder.WriteString(fmt.Sprintf(constants.MsgInstalledRemoveHint, def.RemovalHint()))

	if len(res.Removed) > 0 {
		builder.WriteString(fmt.Sprintf(constants.MsgInstalledReplaced, len(res.Removed)))
	}

	return builder.String()
}

// FormatDryRunReport formats what an install would do without applying
// it.
func FormatDryRunReport(def job.Definition, mode string, wouldReplace []string) string {
	builder := &strings.Builder{}

	builder.WriteString(constants.MsgDryRun)
	builder.WriteString(fmt.Sprintf(constants.MsgDryRunEntry, def.Line()))
	builder.WriteString(fmt.Sprintf(constants.MsgInstalledSchedule, def.Schedule, mode))

	if len(wouldReplace) > 0 {
		builder.WriteString(fmt.Sprintf(constants.MsgDryRunReplaced, len(wouldReplace)))
	}

	return builder.String()
}

// FormatRemoveReport formats the uninstall confirmation.
func FormatRemoveReport(removed int) string {
	if removed == 0 {
		return constants.MsgNothingToRemove
	}

	suffix := "y"
	if removed != 1 {
		suffix = "ies"
	}
	return fmt.Sprintf(constants.MsgRemoved, removed, suffix)
}

// StatusReport is everything the status command shows, in one shape
// shared by the text, json and yaml outputs.
type StatusReport struct {
	Installed bool          `json:"installed" yaml:"installed"`
	Entries   []StatusEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
	LogPath   string        `json:"log_path" yaml:"log_path"`
	History   []HistoryItem `json:"history,omitempty" yaml:"history,omitempty"`
}

// StatusEntry is one installed crontab entry.
type StatusEntry struct {
	Raw      string      `json:"raw" yaml:"raw"`
	Schedule string      `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Command  string      `json:"command,omitempty" yaml:"command,omitempty"`
	NextRuns []time.Time `json:"next_runs,omitempty" yaml:"next_runs,omitempty"`
}

// HistoryItem is one journal record trimmed for display.
type HistoryItem struct {
	Time     time.Time `json:"time" yaml:"time"`
	Action   string    `json:"action" yaml:"action"`
	Mode     string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	Schedule string    `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// FormatStatusReport formats the text form of a status report.
func FormatStatusReport(report StatusReport) string {
	builder := &strings.Builder{}

	builder.WriteString(constants.MsgStatusHeader)

	if !report.Installed {
		builder.WriteString(constants.MsgStatusNotInstalled)
	}

	for _, entry := range report.Entries {
		builder.WriteString(fmt.Sprintf(constants.MsgStatusEntry, entry.Raw))
		for _, at := range entry.NextRuns {
			builder.WriteString(fmt.Sprintf(constants.MsgStatusNextRun, at.Format(time.RFC3339)))
		}
	}

	builder.WriteString(fmt.Sprintf(constants.MsgInstalledLogs, report.LogPath))

	if len(report.History) > 0 {
		builder.WriteString(constants.MsgStatusHistoryHeader)
		for _, item := range report.History {
			builder.WriteString(fmt.Sprintf(constants.MsgStatusHistoryLine,
				item.Time.Format(historyTimeLayout), item.Action, item.Schedule, item.Mode))
		}
	}

	return builder.String()
}

// FormatDoctorReport formats the preflight report: the environment
// variable table first, then the check results, then the outcome summary.
func FormatDoctorReport(env []doctor.EnvVar, checks []doctor.Result) string {
	builder := &strings.Builder{}

	builder.WriteString(constants.MsgDoctorHeader)

	builder.WriteString(constants.MsgDoctorEnvHeader)
	for _, row := range env {
		if row.Set {
			builder.WriteString(fmt.Sprintf(constants.MsgDoctorEnvSet, row.Name, row.Display))
		} else {
			builder.WriteString(fmt.Sprintf(constants.MsgDoctorEnvUnset, row.Name))
		}
	}

	builder.WriteString(constants.MsgDoctorChecksHeader)
	passed, warned, failed := 0, 0, 0
	for _, check := range checks {
		switch check.Status {
		case doctor.StatusPass:
			passed++
			builder.WriteString(fmt.Sprintf(constants.MsgDoctorPass, check.Name, check.Detail))
		case doctor.StatusWarn:
			warned++
			builder.WriteString(fmt.Sprintf(constants.MsgDoctorWarn, check.Name, check.Detail))
		case doctor.StatusFail:
			failed++
			builder.WriteString(fmt.Sprintf(constants.MsgDoctorFail, check.Name, check.Detail))
		}
	}

	builder.WriteString(fmt.Sprintf(constants.MsgDoctorSummary, passed, warned, failed))
	if failed == 0 {
		builder.WriteString(constants.MsgDoctorReady)
	} else {
		builder.WriteString(constants.MsgDoctorNotReady)
	}

	return builder.String()
}

// FormatNotification composes the one-line run summary delivered to the
// operator channel. Empty fields are left out so removals read naturally.
func FormatNotification(action, schedule, mode, host string) string {
	builder := &strings.Builder{}

	fmt.Fprintf(builder, "📅 reviewcron %s %s", action, constants.JobName)
	if schedule != "" {
		fmt.Fprintf(builder, ": %s", schedule)
	}
	if mode != "" {
		fmt.Fprintf(builder, " (%s)", mode)
	}
	if host != "" {
		fmt.Fprintf(builder, " on %s", host)
	}

	return builder.String()
}
