// Package job composes the review-processing crontab entry: the shell
// command, the schedule, and the marker comment identifying the entry as
// managed.
package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// Definition describes the managed job: what to run, where, and when.
// The composed crontab line is a pure function of these fields.
type Definition struct {
	// Name is the marker suffix identifying the entry.
	Name string
	// EntryPoint is the manage.py invocation. It doubles as the legacy
	// identifying substring for entries installed before markers existed.
	EntryPoint string
	// ProjectPath is the directory the command cds into.
	ProjectPath string
	// Interpreter is the python executable.
	Interpreter string
	// Schedule is a five-field cron expression.
	Schedule string
}

// ProcessReviews builds the definition for the review-processing job.
func ProcessReviews(projectPath, interpreter, schedule string) Definition {
	return Definition{
		Name:        constants.JobName,
		EntryPoint:  constants.JobEntryPoint,
		ProjectPath: projectPath,
		Interpreter: interpreter,
		Schedule:    schedule,
	}
}

// LogDir returns the directory receiving the job's output.
func (d Definition) LogDir() string {
	return filepath.Join(d.ProjectPath, constants.LogDirName)
}

// LogPath returns the job's output log file.
func (d Definition) LogPath() string {
	return filepath.Join(d.LogDir(), constants.LogFileName)
}

// JournalPath returns the install journal location.
func (d Definition) JournalPath() string {
	return filepath.Join(d.LogDir(), constants.JournalFileName)
}

// LockPath returns the install lock file location.
func (d Definition) LockPath() string {
	return filepath.Join(d.ProjectPath, constants.LockFileName)
}

// Command returns the shell command cron executes. Output is appended to
// the log file, never truncated; stdout and stderr share one stream.
func (d Definition) Command() string {
	return fmt.Sprintf("cd %s && %s %s >> %s 2>&1",
		d.ProjectPath, d.Interpreter, d.EntryPoint, d.LogPath())
}

// Marker returns the trailing comment tagging the managed entry.
func (d Definition) Marker() string {
	return constants.MarkerPrefix + d.Name
}

// Line returns the full crontab line: schedule, command, marker.
func (d Definition) Line() string {
	return fmt.Sprintf("%s %s %s", d.Schedule, d.Command(), d.Marker())
}

// Matches reports whether a crontab line belongs to this job. A line
// matches when it carries the marker, or when it invokes the entry point
// (entries written by the retired shell installer carry no marker and are
// matched by command text so installs migrate them).
func (d Definition) Matches(line string) bool {
	if strings.Contains(line, d.Marker()) {
		return true
	}
	return strings.Contains(line, d.EntryPoint)
}

// RemovalHint returns the one-liner for removing the entry without this
// tool.
func (d Definition) RemovalHint() string {
	return fmt.Sprintf("crontab -l | grep -v '%s' | crontab -", d.Marker())
}

// SplitEntry splits a managed crontab line into its schedule and command.
// The marker comment is dropped; whitespace inside the parts is
// normalized. The schedule is either a @descriptor (one field, e.g.
// @daily from a tier file) or five fields; lines too short to carry a
// schedule plus a command report ok=false.
func SplitEntry(line string) (schedule, command string, ok bool) {
	if i := strings.Index(line, constants.MarkerPrefix); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)

	if len(fields) > 0 && strings.HasPrefix(fields[0], "@") {
		if len(fields) < 2 {
			return "", "", false
		}
		return fields[0], strings.Join(fields[1:], " "), true
	}

	if len(fields) < 6 {
		return "", "", false
	}

	return strings.Join(fields[:5], " "), strings.Join(fields[5:], " "), true
}

// EnsureLogDir creates the log directory if it does not exist.
func (d Definition) EnsureLogDir() error {
	if err := os.MkdirAll(d.LogDir(), 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", d.LogDir(), err)
	}
	return nil
}
