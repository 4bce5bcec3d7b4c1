// Package schedule maps deployment environments to cron expressions.
//
// Selection is a pure lookup with a fallback row, so an unrecognized mode
// never errors. Extending the tiers is a configuration change (a TOML
// file), not a code change.
package schedule

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/robfig/cron/v3"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// DefaultTier is the tier-file key naming the fallback expression.
const DefaultTier = "default"

// parser accepts the standard five-field crontab dialect plus @descriptors,
// matching what the crontab program itself installs.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Table maps environment modes to cron expressions.
type Table struct {
	tiers    map[string]string
	fallback string
}

// Builtin returns the built-in tier table: production runs nightly, every
// other mode gets the development cadence. Development has its own row so
// the documented default tier counts as recognized.
func Builtin() *Table {
	return &Table{
		tiers: map[string]string{
			constants.ModeProduction:  constants.ScheduleProduction,
			constants.ModeDevelopment: constants.ScheduleDevelopment,
		},
		fallback: constants.ScheduleDevelopment,
	}
}

// Select returns the expression for mode. Matching is exact; any mode
// without its own row selects the fallback. Selection never fails.
func (t *Table) Select(mode string) string {
	if expr, ok := t.tiers[mode]; ok {
		return expr
	}
	return t.fallback
}

// Known reports whether mode has its own row. The install path does not
// care; doctor uses this to warn about fallback selection.
func (t *Table) Known(mode string) bool {
	_, ok := t.tiers[mode]
	return ok
}

// Fallback returns the fallback expression.
func (t *Table) Fallback() string {
	return t.fallback
}

// Modes returns the configured mode names, sorted, fallback excluded.
func (t *Table) Modes() []string {
	modes := make([]string, 0, len(t.tiers))
	for mode := range t.tiers {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}

// tierFile is the TOML shape of an override file:
//
//	[tiers]
//	production = "0 2 * * *"
//	staging    = "30 */6 * * *"
//	default    = "*/10 * * * *"
type tierFile struct {
	Tiers map[string]string `toml:"tiers"`
}

// LoadFile overlays the built-in table with entries from a TOML file.
// Every expression is validated up front; an invalid file is a hard
// error, never a silent fallback.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier file: %w", err)
	}

	var file tierFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tier file: %w", err)
	}

	table := Builtin()
	for mode, expr := range file.Tiers {
		if err := Validate(expr); err != nil {
			return nil, fmt.Errorf("tier %q: %w", mode, err)
		}
		if mode == DefaultTier {
			table.fallback = expr
			continue
		}
		table.tiers[mode] = expr
	}

	return table, nil
}

// Load returns the built-in table, overlaid with path when it is non-empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadFile(path)
}

// Validate checks expr against the crontab dialect.
func Validate(expr string) error {
	if _, err := parser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// NextRuns computes the next n activation times of expr after from.
func NextRuns(expr string, n int, from time.Time) ([]time.Time, error) {
	sched, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	times := make([]time.Time, 0, n)
	at := from
	for i := 0; i < n; i++ {
		at = sched.Next(at)
		times = append(times, at)
	}
	return times, nil
}
