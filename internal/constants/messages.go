package constants

// Operator-facing message constants used by the reviewcron commands.

// Install messages
const (
	// MsgInstalled is the confirmation banner after a successful install.
	MsgInstalled = "✅ Review processing cron job installed\n"

	// MsgInstalledEntry echoes the crontab line that is now active.
	MsgInstalledEntry = "Entry:    %s\n"

	// MsgInstalledSchedule shows the selected schedule and the mode that chose it.
	MsgInstalledSchedule = "Schedule: %s (%s)\n"

	// MsgInstalledLogs shows where the job appends its output.
	MsgInstalledLogs = "Logs:     %s\n"

	// MsgInstalledRemoveHint is a ready-to-run manual removal command.
	MsgInstalledRemoveHint = "Remove:   %s\n"

	// MsgInstalledReplaced reports how many prior registrations were replaced.
	MsgInstalledReplaced = "Replaced %d previous registration(s)\n"
)

// Dry-run messages
const (
	// MsgDryRun is the banner printed instead of applying changes.
	MsgDryRun = "DRY RUN: no changes applied\n"

	// MsgDryRunEntry shows the entry that would be installed.
	MsgDryRunEntry = "Would install: %s\n"

	// MsgDryRunReplaced shows how many existing entries would be replaced.
	MsgDryRunReplaced = "Would replace %d existing registration(s)\n"
)

// Uninstall messages
const (
	// MsgRemoved is the confirmation banner after removing managed entries.
	MsgRemoved = "✅ Review processing cron job removed (%d entr%s)\n"

	// MsgNothingToRemove is printed when no managed entries were installed.
	MsgNothingToRemove = "No managed entries found; crontab left unchanged\n"
)

// Status messages
const (
	// MsgStatusHeader is the header for the status display.
	MsgStatusHeader = "📋 Review processing job\n"

	// MsgStatusNotInstalled is printed when no managed entry exists.
	MsgStatusNotInstalled = "Not installed\n"

	// MsgStatusEntry is the label for an installed entry.
	MsgStatusEntry = "Entry:    %s\n"

	// MsgStatusNextRun is the label for a computed upcoming run.
	MsgStatusNextRun = "Next run: %s\n"

	// MsgStatusHistoryHeader precedes the journal tail.
	MsgStatusHistoryHeader = "Recent installs:\n"

	// MsgStatusHistoryLine formats one journal record.
	MsgStatusHistoryLine = "  %s  %-9s  %s  (%s)\n"
)

// Doctor messages
const (
	// MsgDoctorHeader opens the preflight report.
	MsgDoctorHeader = "🩺 reviewcron preflight\n"

	// MsgDoctorEnvHeader precedes the environment variable report.
	MsgDoctorEnvHeader = "Environment:\n"

	// MsgDoctorEnvSet formats a set variable with its display-safe value.
	MsgDoctorEnvSet = "  ✅ %s: %s\n"

	// MsgDoctorEnvUnset formats an unset variable (its default applies).
	MsgDoctorEnvUnset = "  ○  %s: not set\n"

	// MsgDoctorChecksHeader precedes the preflight check results.
	MsgDoctorChecksHeader = "Checks:\n"

	// MsgDoctorPass, MsgDoctorWarn and MsgDoctorFail format one check
	// result each.
	MsgDoctorPass = "  ✅ %s: %s\n"
	MsgDoctorWarn = "  ⚠️  %s: %s\n"
	MsgDoctorFail = "  ❌ %s: %s\n"

	// MsgDoctorSummary closes the report with the outcome counts.
	MsgDoctorSummary = "Summary: %d passed, %d warning(s), %d failed\n"

	// MsgDoctorReady is printed when no check failed.
	MsgDoctorReady = "Ready to install\n"

	// MsgDoctorNotReady is printed when at least one check failed.
	MsgDoctorNotReady = "Fix the failures above before installing\n"
)

// Config validation messages
const (
	// MsgConfigValid is printed when configuration passes validation.
	MsgConfigValid = "✅ Configuration is valid\n"

	// MsgConfigValidationError is the message when configuration validation fails.
	MsgConfigValidationError = "❌ Configuration validation failed:\n"

	// MsgConfigValidatePrefix is the prefix for configuration validation errors.
	MsgConfigValidatePrefix = "  - %v\n"

	// MsgConfigTierCount reports the loaded tier table size.
	MsgConfigTierCount = "Tiers:    %d mode(s), fallback %s\n"
)

// Error messages
const (
	// MsgErrorConfig is the error message when configuration loading fails.
	MsgErrorConfig = "❌ Failed to load configuration: %v\n"

	// MsgErrorInstall is the error message when the install operation fails.
	MsgErrorInstall = "❌ Install failed: %v\n"

	// MsgErrorUninstall is the error message when the remove operation fails.
	MsgErrorUninstall = "❌ Uninstall failed: %v\n"

	// MsgErrorStatus is the error message when status cannot be read.
	MsgErrorStatus = "❌ Failed to read crontab: %v\n"

	// MsgErrorLock is printed when another instance holds the lock.
	MsgErrorLock = "❌ Could not acquire lock: %v\n"

	// MsgErrorLogDir is printed when the log directory cannot be created.
	MsgErrorLogDir = "❌ Failed to create log directory: %v\n"
)
