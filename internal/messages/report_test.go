package messages

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fusionsystems/reviewcron/internal/crontab"
	"github.com/fusionsystems/reviewcron/internal/doctor"
	"github.com/fusionsystems/reviewcron/internal/job"
)

func testDef() job.Definition {
	return job.ProcessReviews("/srv/app", "/py/bin/python", "0 2 * * *")
}

func TestFormatInstallReport(t *testing.T) {
	def := testDef()

	t.Run("fresh install", func(t *testing.T) {
		res := crontab.Result{Action: crontab.ActionInstalled, Entry: def.Line()}
		out := FormatInstallReport(res, def, "production")

		assert.Contains(t, out, "installed")
		assert.Contains(t, out, def.Line())
		assert.Contains(t, out, "0 2 * * * (production)")
		assert.Contains(t, out, "/srv/app/logs/review_processing.log")
		assert.Contains(t, out, def.RemovalHint())
		assert.NotContains(t, out, "Replaced")
	})

	t.Run("replacement counts prior entries", func(t *testing.T) {
		res := crontab.Result{
			Action:  crontab.ActionReplaced,
			Entry:   def.Line(),
			Removed: []string{"old1", "old2"},
		}
		out := FormatInstallReport(res, def, "production")

		assert.Contains(t, out, "Replaced 2 previous registration(s)")
	})
}

func TestFormatDryRunReport(t *testing.T) {
	def := testDef()

	t.Run("nothing to replace", func(t *testing.T) {
		out := FormatDryRunReport(def, "production", nil)

		assert.Contains(t, out, "DRY RUN")
		assert.Contains(t, out, def.Line())
		assert.NotContains(t, out, "Would replace")
	})

	t.Run("existing entries counted", func(t *testing.T) {
		out := FormatDryRunReport(def, "production", []string{"old"})

		assert.Contains(t, out, "Would replace 1 existing registration(s)")
	})
}

func TestFormatRemoveReport(t *testing.T) {
	assert.Contains(t, FormatRemoveReport(0), "No managed entries")
	assert.Contains(t, FormatRemoveReport(1), "1 entry")
	assert.Contains(t, FormatRemoveReport(3), "3 entries")
}

func TestFormatStatusReport(t *testing.T) {
	t.Run("not installed", func(t *testing.T) {
		out := FormatStatusReport(StatusReport{LogPath: "/app/logs/review_processing.log"})

		assert.Contains(t, out, "Not installed")
		assert.Contains(t, out, "/app/logs/review_processing.log")
	})

	t.Run("installed with next runs and history", func(t *testing.T) {
		next := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
		report := StatusReport{
			Installed: true,
			Entries: []StatusEntry{{
				Raw:      testDef().Line(),
				Schedule: "0 2 * * *",
				NextRuns: []time.Time{next},
			}},
			LogPath: "/srv/app/logs/review_processing.log",
			History: []HistoryItem{{
				Time:     time.Date(2025, 5, 30, 14, 12, 0, 0, time.UTC),
				Action:   "installed",
				Mode:     "production",
				Schedule: "0 2 * * *",
			}},
		}

		out := FormatStatusReport(report)

		assert.NotContains(t, out, "Not installed")
		assert.Contains(t, out, testDef().Line())
		assert.Contains(t, out, "2025-06-01T02:00:00Z")
		assert.Contains(t, out, "Recent installs:")
		assert.Contains(t, out, "2025-05-30 14:12")
		assert.Contains(t, out, "production")
	})
}

func TestFormatDoctorReport(t *testing.T) {
	env := []doctor.EnvVar{
		{Name: "PROJECT_PATH", Set: true, Display: "/srv/app"},
		{Name: "PYTHON_PATH", Set: false},
	}
	checks := []doctor.Result{
		{Name: "crontab tool", Status: doctor.StatusPass, Detail: "/usr/bin/crontab"},
		{Name: "environment mode", Status: doctor.StatusWarn, Detail: "falls back"},
		{Name: "project path", Status: doctor.StatusFail, Detail: "missing"},
	}

	out := FormatDoctorReport(env, checks)

	assert.Contains(t, out, "PROJECT_PATH: /srv/app")
	assert.Contains(t, out, "PYTHON_PATH: not set")
	assert.Contains(t, out, "crontab tool: /usr/bin/crontab")
	assert.Contains(t, out, "Summary: 1 passed, 1 warning(s), 1 failed")
	assert.Contains(t, out, "Fix the failures")

	t.Run("all passing reads ready", func(t *testing.T) {
		out := FormatDoctorReport(env, checks[:1])
		assert.Contains(t, out, "Ready to install")
		assert.Contains(t, out, "Summary: 1 passed, 0 warning(s), 0 failed")
	})
}

func TestFormatNotification(t *testing.T) {
	t.Run("install", func(t *testing.T) {
		out := FormatNotification("installed", "0 2 * * *", "production", "web01")
		assert.Equal(t, "📅 reviewcron installed process-reviews: 0 2 * * * (production) on web01", out)
	})

	t.Run("removal omits empty fields", func(t *testing.T) {
		out := FormatNotification("removed", "", "", "")
		assert.Equal(t, "📅 reviewcron removed process-reviews", out)
		assert.False(t, strings.Contains(out, "()"))
	})
}
