// Package crontab reads and rewrites the invoking user's crontab through
// the crontab program, treating every line it does not own as opaque.
package crontab

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds a single crontab invocation.
const commandTimeout = 10 * time.Second

// Runner is the exec boundary to the system crontab. Tests substitute a
// fake; production uses the crontab program.
type Runner interface {
	// Load returns the raw crontab text. A user with no crontab yet
	// yields an empty string, not an error.
	Load(ctx context.Context) (string, error)
	// Store replaces the whole crontab with content in a single step.
	Store(ctx context.Context, content string) error
}

// systemRunner shells out to crontab(1).
type systemRunner struct{}

// NewSystemRunner returns a Runner backed by the crontab program.
func NewSystemRunner() Runner {
	return systemRunner{}
}

func (systemRunner) Load(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "crontab", "-l")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// crontab -l exits 1 with "no crontab for <user>" when the user
		// has no table yet. That is an empty table, not a failure.
		if strings.Contains(stderr.String(), "no crontab") {
			return "", nil
		}
		return "", fmt.Errorf("crontab -l failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

func (systemRunner) Store(ctx context.Context, content string) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	// crontab replaces the whole table from a file, so the new table is
	// staged in a temp file and installed in one step. Any failure before
	// that step leaves the previous table untouched.
	tmp, err := os.CreateTemp("", "reviewcron-*.tab")
	if err != nil {
		return fmt.Errorf("failed to create temp crontab file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp crontab file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp crontab file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp crontab file: %w", err)
	}

	cmd := exec.CommandContext(ctx, "crontab", tmpPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("crontab install failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return nil
}
