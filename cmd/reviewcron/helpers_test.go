package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// stubTools puts crontab and python stand-ins on PATH. The crontab stub
// keeps its state in a file: -l prints it, any other argument replaces
// it, matching the real program's contract. Returns the state file path.
func stubTools(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	script := `#!/bin/sh
if [ "$1" = "-l" ]; then
    if [ -f "$FAKE_CRONTAB_STATE" ]; then
        cat "$FAKE_CRONTAB_STATE"
        exit 0
    fi
    echo "no crontab for tester" >&2
    exit 1
fi
cp "$1" "$FAKE_CRONTAB_STATE"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crontab"), []byte(script), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "python"), []byte("#!/bin/sh\nexit 0\n"), 0755))

	state := filepath.Join(dir, "state")
	t.Setenv("FAKE_CRONTAB_STATE", state)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return state
}

// setBaseEnv pins every variable the registrar consumes so tests are
// isolated from the invoking shell, and moves the working directory away
// from any stray .env file. Returns the project directory.
func setBaseEnv(t *testing.T) string {
	t.Helper()

	project := t.TempDir()

	t.Setenv(constants.EnvProjectPath, project)
	t.Setenv(constants.EnvPythonPath, "python")
	t.Setenv(constants.EnvEnvironment, "")
	t.Setenv(constants.EnvTierFile, "")
	t.Setenv(constants.EnvTextfileDir, "")
	t.Setenv(constants.EnvLogLevel, "error")
	t.Setenv(constants.EnvLogFormat, "text")
	t.Setenv(constants.EnvTelegramToken, "")
	t.Setenv(constants.EnvTelegramChatID, "")

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})
	require.NoError(t, os.Chdir(project))

	// Reset command flags touched by handlers.
	installDryRun = false
	installEnvFile = ""
	statusOutput = "text"
	statusHistory = 5

	return project
}

// captureStdout runs fn with stdout redirected to a pipe and returns what
// it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String()
}

// readState returns the stub crontab's current table, or "" when no
// table was ever installed.
func readState(t *testing.T, state string) string {
	t.Helper()

	data, err := os.ReadFile(state)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}
