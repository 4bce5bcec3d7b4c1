// Package doctor runs preflight checks for the registrar: everything an
// install depends on, verified without touching the crontab. The install
// path itself checks none of this; a broken environment surfaces here
// instead of failing a deploy.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fusionsystems/reviewcron/internal/config"
	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/schedule"
)

// Status classifies a check outcome.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Result is one check outcome.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Run executes all preflight checks against cfg.
func Run(cfg *config.Config) []Result {
	return []Result{
		checkCrontabTool(),
		checkProjectPath(cfg.ProjectPath),
		checkInterpreter(cfg.PythonPath),
		checkLogDir(cfg.ProjectPath),
		checkMode(cfg.Environment, cfg.TierFile),
		checkTierFile(cfg.TierFile),
		checkNotification(),
	}
}

// Passed reports whether no check failed. Warnings do not fail doctor.
func Passed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return false
		}
	}
	return true
}

func checkCrontabTool() Result {
	path, err := exec.LookPath("crontab")
	if err != nil {
		return Result{
			Name:   "crontab tool",
			Status: StatusFail,
			Detail: "crontab not found on PATH",
		}
	}
	return Result{Name: "crontab tool", Status: StatusPass, Detail: path}
}

func checkProjectPath(projectPath string) Result {
	info, err := os.Stat(projectPath)
	if err != nil {
		return Result{
			Name:   "project path",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s does not exist (install would succeed, the job would fail at runtime)", projectPath),
		}
	}
	if !info.IsDir() {
		return Result{
			Name:   "project path",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s is not a directory", projectPath),
		}
	}
	return Result{Name: "project path", Status: StatusPass, Detail: projectPath}
}

func checkInterpreter(pythonPath string) Result {
	// A bare name resolves through PATH, the way cron's sh would.
	if !strings.ContainsRune(pythonPath, os.PathSeparator) {
		resolved, err := exec.LookPath(pythonPath)
		if err != nil {
			return Result{
				Name:   "interpreter",
				Status: StatusFail,
				Detail: fmt.Sprintf("%s not found on PATH", pythonPath),
			}
		}
		return Result{Name: "interpreter", Status: StatusPass, Detail: resolved}
	}

	info, err := os.Stat(pythonPath)
	if err != nil {
		return Result{
			Name:   "interpreter",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s does not exist", pythonPath),
		}
	}
	if info.IsDir() || info.Mode()&0111 == 0 {
		return Result{
			Name:   "interpreter",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s is not executable", pythonPath),
		}
	}
	return Result{Name: "interpreter", Status: StatusPass, Detail: pythonPath}
}

func checkLogDir(projectPath string) Result {
	logDir := filepath.Join(projectPath, constants.LogDirName)

	if _, err := os.Stat(logDir); err == nil {
		if err := probeWritable(logDir); err != nil {
			return Result{
				Name:   "log directory",
				Status: StatusFail,
				Detail: fmt.Sprintf("%s is not writable: %v", logDir, err),
			}
		}
		return Result{Name: "log directory", Status: StatusPass, Detail: logDir}
	}

	// The log dir is created on install; what matters now is that the
	// project directory allows it.
	if err := probeWritable(projectPath); err != nil {
		return Result{
			Name:   "log directory",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s cannot be created: %v", logDir, err),
		}
	}
	return Result{
		Name:   "log directory",
		Status: StatusPass,
		Detail: fmt.Sprintf("%s (created on install)", logDir),
	}
}

// probeWritable verifies write access by creating and removing a probe
// file.
func probeWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".reviewcron-doctor-*")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func checkMode(mode, tierFile string) Result {
	table, err := schedule.Load(tierFile)
	if err != nil {
		// The tier file check reports the load error itself.
		table = schedule.Builtin()
	}

	if table.Known(mode) {
		return Result{
			Name:   "environment mode",
			Status: StatusPass,
			Detail: fmt.Sprintf("%s (schedule %s)", mode, table.Select(mode)),
		}
	}
	return Result{
		Name:   "environment mode",
		Status: StatusWarn,
		Detail: fmt.Sprintf("%q has no tier of its own; install silently uses the development cadence %s", mode, table.Fallback()),
	}
}

func checkTierFile(tierFile string) Result {
	if tierFile == "" {
		return Result{
			Name:   "tier file",
			Status: StatusPass,
			Detail: "not set, using built-in tiers",
		}
	}

	table, err := schedule.LoadFile(tierFile)
	if err != nil {
		return Result{
			Name:   "tier file",
			Status: StatusFail,
			Detail: err.Error(),
		}
	}
	return Result{
		Name:   "tier file",
		Status: StatusPass,
		Detail: fmt.Sprintf("%s (%d modes)", tierFile, len(table.Modes())),
	}
}

func checkNotification() Result {
	token := os.Getenv(constants.EnvTelegramToken)
	chat := os.Getenv(constants.EnvTelegramChatID)

	switch {
	case token == "" && chat == "":
		return Result{Name: "notifications", Status: StatusPass, Detail: "disabled"}
	case token != "" && chat != "":
		// The token itself never appears in output.
		return Result{
			Name:   "notifications",
			Status: StatusPass,
			Detail: fmt.Sprintf("telegram, chat %s", chat),
		}
	case token != "":
		return Result{
			Name:   "notifications",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s set but %s missing", constants.EnvTelegramToken, constants.EnvTelegramChatID),
		}
	default:
		return Result{
			Name:   "notifications",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s set but %s missing", constants.EnvTelegramChatID, constants.EnvTelegramToken),
		}
	}
}
