package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

func TestRunInstallDevelopment(t *testing.T) {
	state := stubTools(t)
	project := setBaseEnv(t)

	output := captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	table := readState(t, state)
	assert.Contains(t, table, "*/5 * * * * cd "+project)
	assert.Contains(t, table, "manage.py process_reviews")
	assert.Contains(t, table, "# reviewcron:process-reviews")

	assert.Contains(t, output, "installed")
	assert.Contains(t, output, "*/5 * * * * (development)")
	assert.Contains(t, output, "crontab -l | grep -v")

	// The log directory exists and the journal recorded the run.
	info, err := os.Stat(filepath.Join(project, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	journalData, err := os.ReadFile(filepath.Join(project, "logs", constants.JournalFileName))
	require.NoError(t, err)
	assert.Contains(t, string(journalData), `"action":"installed"`)

	// The lock is released on the way out.
	_, err = os.Stat(filepath.Join(project, constants.LockFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRunInstallCreatesMissingProjectPath(t *testing.T) {
	state := stubTools(t)
	parent := setBaseEnv(t)

	// A project directory the deploy has not created yet: registration
	// still succeeds, the recursive mkdir bringing it into existence.
	project := filepath.Join(parent, "deploy", "app")
	t.Setenv(constants.EnvProjectPath, project)

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Contains(t, readState(t, state), "cd "+project)

	info, err := os.Stat(filepath.Join(project, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(project, constants.LockFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRunInstallProduction(t *testing.T) {
	state := stubTools(t)
	setBaseEnv(t)
	t.Setenv(constants.EnvEnvironment, "production")

	output := captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Contains(t, readState(t, state), "0 2 * * * cd ")
	assert.Contains(t, output, "0 2 * * * (production)")
}

func TestRunInstallIdempotent(t *testing.T) {
	state := stubTools(t)
	setBaseEnv(t)

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})
	first := readState(t, state)

	output := captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Equal(t, first, readState(t, state))
	assert.Equal(t, 1, strings.Count(readState(t, state), "# reviewcron:process-reviews"))
	assert.Contains(t, output, "Replaced 1 previous registration(s)")
}

func TestRunInstallPreservesForeignEntries(t *testing.T) {
	state := stubTools(t)
	setBaseEnv(t)

	foreign := "0 3 * * * /usr/local/bin/certbot renew --quiet\n"
	require.NoError(t, os.WriteFile(state, []byte(foreign), 0644))

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	table := readState(t, state)
	assert.True(t, strings.HasPrefix(table, foreign))
	assert.Contains(t, table, "# reviewcron:process-reviews")
}

func TestRunInstallModeChangeReplaces(t *testing.T) {
	state := stubTools(t)
	setBaseEnv(t)

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})
	require.Contains(t, readState(t, state), "*/5 * * * *")

	t.Setenv(constants.EnvEnvironment, "production")
	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	table := readState(t, state)
	assert.Contains(t, table, "0 2 * * *")
	assert.NotContains(t, table, "*/5 * * * *")
	assert.Equal(t, 1, strings.Count(table, "# reviewcron:process-reviews"))
}

func TestRunInstallDryRun(t *testing.T) {
	state := stubTools(t)
	project := setBaseEnv(t)
	installDryRun = true

	output := captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Contains(t, output, "DRY RUN")
	assert.Contains(t, output, "Would install:")

	// Nothing was written and no directories were created.
	assert.Equal(t, "", readState(t, state))
	_, err := os.Stat(filepath.Join(project, "logs"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunInstallEnvFileOverridesEnvironment(t *testing.T) {
	state := stubTools(t)
	project := setBaseEnv(t)
	t.Setenv(constants.EnvEnvironment, "development")

	envFile := filepath.Join(project, "deploy.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ENVIRONMENT=production\n"), 0644))
	installEnvFile = envFile

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Contains(t, readState(t, state), "0 2 * * *")
}

func TestRunInstallTierFile(t *testing.T) {
	state := stubTools(t)
	project := setBaseEnv(t)

	tierFile := filepath.Join(project, "tiers.toml")
	require.NoError(t, os.WriteFile(tierFile, []byte("[tiers]\nstaging = \"30 */6 * * *\"\n"), 0644))
	t.Setenv(constants.EnvTierFile, tierFile)
	t.Setenv(constants.EnvEnvironment, "staging")

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	assert.Contains(t, readState(t, state), "30 */6 * * * cd ")
}

func TestRunInstallWritesMetricsTextfile(t *testing.T) {
	stubTools(t)
	setBaseEnv(t)

	textfileDir := t.TempDir()
	t.Setenv(constants.EnvTextfileDir, textfileDir)

	captureStdout(t, func() {
		runInstall(installCmd, nil)
	})

	data, err := os.ReadFile(filepath.Join(textfileDir, constants.TextfileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "reviewcron_install_success 1")
	assert.Contains(t, string(data), "reviewcron_last_install_timestamp_seconds")
}
