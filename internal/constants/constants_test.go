package constants

import (
	"strings"
	"testing"
)

func TestCronConstants(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "JobName", value: JobName},
		{name: "JobEntryPoint", value: JobEntryPoint},
		{name: "MarkerPrefix", value: MarkerPrefix},
		{name: "ScheduleProduction", value: ScheduleProduction},
		{name: "ScheduleDevelopment", value: ScheduleDevelopment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s should not be empty", tt.name)
			}
		})
	}
}

func TestScheduleTiers(t *testing.T) {
	if ScheduleProduction != "0 2 * * *" {
		t.Errorf("ScheduleProduction = %s, want '0 2 * * *'", ScheduleProduction)
	}
	if ScheduleDevelopment != "*/5 * * * *" {
		t.Errorf("ScheduleDevelopment = %s, want '*/5 * * * *'", ScheduleDevelopment)
	}
}

func TestMarkerPrefixIsComment(t *testing.T) {
	// The marker rides on the entry line as a trailing comment, so cron must
	// ignore it: it has to start with '#'.
	if !strings.HasPrefix(MarkerPrefix, "#") {
		t.Errorf("MarkerPrefix = %q, must start with '#'", MarkerPrefix)
	}
}

func TestJobEntryPointMatchesLegacyScript(t *testing.T) {
	// The retired shell script filtered crontab lines with
	// grep -v 'manage.py process_reviews'; the entry point must keep that
	// exact spelling so old registrations are still recognized.
	if JobEntryPoint != "manage.py process_reviews" {
		t.Errorf("JobEntryPoint = %s, want 'manage.py process_reviews'", JobEntryPoint)
	}
}

func TestDefaultPaths(t *testing.T) {
	if DefaultProjectPath != "/app" {
		t.Errorf("DefaultProjectPath = %s, want '/app'", DefaultProjectPath)
	}
	if DefaultPythonPath != "python" {
		t.Errorf("DefaultPythonPath = %s, want 'python'", DefaultPythonPath)
	}
}
