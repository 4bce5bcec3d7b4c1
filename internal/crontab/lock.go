package crontab

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrLocked reports that another invocation holds the install lock.
var ErrLocked = errors.New("another reviewcron run holds the lock")

// Lock is an exclusive lock file guarding crontab mutations for one
// project directory. The registrar is single-shot, so acquisition never
// blocks: a held lock fails the run and deployment tooling retries.
type Lock struct {
	path string
}

// AcquireLock claims path for this process and writes its PID there. A
// lock held by a live process fails with ErrLocked; a stale file whose
// owner is dead is taken over.
func AcquireLock(path string) (*Lock, error) {
	for attempt := 0; attempt < 2; attempt++ {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
				file.Close()
				os.Remove(path)
				return nil, fmt.Errorf("failed to write lock file: %w", err)
			}
			if err := file.Close(); err != nil {
				os.Remove(path)
				return nil, fmt.Errorf("failed to close lock file: %w", err)
			}
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lock file: %w", err)
		}

		pid, readErr := readLockPID(path)
		if readErr == nil && isProcessAlive(pid) {
			return nil, fmt.Errorf("%w (pid %d, %s)", ErrLocked, pid, path)
		}

		// The owner is gone or the file is unreadable garbage; remove it
		// and retry the exclusive create once.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lock file: %w", err)
		}
	}

	return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
}

// Release removes the lock file. A lock file already gone is not an
// error.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

func readLockPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var pid int
	if _, err := fmt.Sscanf(string(data), "%d", &pid); err != nil {
		return 0, err
	}

	return pid, nil
}

// isProcessAlive probes pid with signal 0.
func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
