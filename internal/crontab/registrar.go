package crontab

import (
	"context"
	"fmt"

	"github.com/fusionsystems/reviewcron/internal/job"
	"github.com/fusionsystems/reviewcron/internal/logger"
)

// Action describes what a crontab mutation did.
type Action string

const (
	// ActionInstalled means no prior managed entry existed.
	ActionInstalled Action = "installed"
	// ActionReplaced means prior managed entries were rewritten.
	ActionReplaced Action = "replaced"
	// ActionRemoved means managed entries were removed.
	ActionRemoved Action = "removed"
	// ActionNone means a removal found nothing to remove.
	ActionNone Action = "none"
)

// Result reports the outcome of a crontab mutation.
type Result struct {
	Action Action
	// Entry is the line now installed; empty for removals.
	Entry string
	// Removed holds the prior managed lines dropped from the table.
	Removed []string
}

// Registrar applies managed-entry mutations to the crontab through a
// Runner. Every mutation is a full read-filter-write cycle: the new table
// is written in one step, so a failure leaves the previous table
// untouched.
type Registrar struct {
	runner Runner
	log    *logger.Logger
}

// NewRegistrar creates a Registrar using runner for crontab access.
func NewRegistrar(runner Runner, log *logger.Logger) *Registrar {
	return &Registrar{runner: runner, log: log}
}

// Install makes def the only managed entry in the crontab. Lines matched
// by def (marked entries and legacy ones identified by command text) are
// dropped, one fresh entry is appended, and every other line is preserved
// byte-for-byte in order. Running it again with the same inputs yields an
// identical table.
func (r *Registrar) Install(ctx context.Context, def job.Definition) (Result, error) {
	raw, err := r.runner.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read crontab: %w", err)
	}

	table := ParseTable(raw)
	filtered, removed := table.Filter(def.Matches)
	filtered.Append(def.Line())

	if err := r.runner.Store(ctx, filtered.Render()); err != nil {
		return Result{}, fmt.Errorf("failed to write crontab: %w", err)
	}

	action := ActionInstalled
	if len(removed) > 0 {
		action = ActionReplaced
	}

	r.log.Info("crontab entry installed",
		logger.Field{Key: "job", Value: def.Name},
		logger.Field{Key: "schedule", Value: def.Schedule},
		logger.Field{Key: "replaced", Value: len(removed)})

	return Result{Action: action, Entry: def.Line(), Removed: removed}, nil
}

// Remove drops every entry belonging to def. When nothing matches, the
// crontab is not rewritten at all.
func (r *Registrar) Remove(ctx context.Context, def job.Definition) (Result, error) {
	raw, err := r.runner.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read crontab: %w", err)
	}

	table := ParseTable(raw)
	filtered, removed := table.Filter(def.Matches)

	if len(removed) == 0 {
		return Result{Action: ActionNone}, nil
	}

	if err := r.runner.Store(ctx, filtered.Render()); err != nil {
		return Result{}, fmt.Errorf("failed to write crontab: %w", err)
	}

	r.log.Info("crontab entry removed",
		logger.Field{Key: "job", Value: def.Name},
		logger.Field{Key: "removed", Value: len(removed)})

	return Result{Action: ActionRemoved, Removed: removed}, nil
}

// Installed returns the managed entries currently in the crontab.
func (r *Registrar) Installed(ctx context.Context, def job.Definition) ([]string, error) {
	raw, err := r.runner.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read crontab: %w", err)
	}

	return ParseTable(raw).Matching(def.Matches), nil
}
