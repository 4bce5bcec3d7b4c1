// Package journal keeps an append-only JSONL history of registrar runs.
// One record per line; `status --history` reads it back for operators.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fusionsystems/reviewcron/internal/logger"
)

// maxRecords bounds the journal. Append compacts the file once it grows
// past this, keeping the newest records.
const maxRecords = 500

// Record is one registrar run.
type Record struct {
	RunID    string    `json:"run_id"`
	Time     time.Time `json:"time"`
	Action   string    `json:"action"`
	Mode     string    `json:"mode,omitempty"`
	Schedule string    `json:"schedule,omitempty"`
	Command  string    `json:"command,omitempty"`
	Removed  []string  `json:"removed,omitempty"`
}

// NewRecord builds a Record stamped with a fresh run ID and the current
// time.
func NewRecord(action, mode, schedule, command string, removed []string) Record {
	return Record{
		RunID:    uuid.NewString(),
		Time:     time.Now().UTC(),
		Action:   action,
		Mode:     mode,
		Schedule: schedule,
		Command:  command,
		Removed:  removed,
	}
}

// Journal stores records in a JSONL file.
type Journal struct {
	filePath string
	logger   *logger.Logger
}

// New creates a Journal backed by filePath.
func New(filePath string, log *logger.Logger) *Journal {
	return &Journal{filePath: filePath, logger: log}
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.filePath
}

// Append adds one record to the end of the journal, creating the file and
// its directory as needed, then compacts the file if it has outgrown the
// record cap.
func (j *Journal) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(j.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	file, err := os.OpenFile(j.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer file.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal journal record: %w", err)
	}

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write journal record: %w", err)
	}

	return j.compact()
}

// Load reads all records, oldest first. A missing journal is empty, not
// an error. Lines that do not parse are skipped so one corrupt write
// cannot wedge status output.
func (j *Journal) Load() ([]Record, error) {
	_, err := os.Stat(j.filePath)
	if os.IsNotExist(err) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat journal: %w", err)
	}

	file, err := os.Open(j.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			j.logger.Warn("skipping unreadable journal line",
				logger.Field{Key: "file", Value: j.filePath},
				logger.Field{Key: "line", Value: lineNum})
			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan journal: %w", err)
	}

	return records, nil
}

// Tail returns the newest n records, oldest first. n <= 0 returns
// everything.
func (j *Journal) Tail(n int) ([]Record, error) {
	records, err := j.Load()
	if err != nil {
		return nil, err
	}

	if n <= 0 || n >= len(records) {
		return records, nil
	}
	return records[len(records)-n:], nil
}

// compact rewrites the journal with the newest maxRecords records when it
// has grown past the cap.
func (j *Journal) compact() error {
	records, err := j.Load()
	if err != nil {
		return err
	}
	if len(records) <= maxRecords {
		return nil
	}

	return j.save(records[len(records)-maxRecords:])
}

// save atomically replaces the journal: records go to a temp file that is
// renamed over the original.
func (j *Journal) save(records []Record) error {
	tmpPath := j.filePath + ".tmp"

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp journal: %w", err)
	}
	defer file.Close()

	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal journal record: %w", err)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write temp journal: %w", err)
		}
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp journal: %w", err)
	}

	if err := os.Rename(tmpPath, j.filePath); err != nil {
		return fmt.Errorf("failed to rename temp journal: %w", err)
	}

	return nil
}
