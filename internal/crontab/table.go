package crontab

import "strings"

// Table is an in-memory crontab. Lines are held verbatim so foreign
// entries survive a rewrite byte-for-byte and in order.
type Table struct {
	lines []string
}

// ParseTable splits raw crontab text into lines. The trailing newline of
// a rendered table does not produce a final empty line; interior blank
// lines are kept.
func ParseTable(raw string) *Table {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return &Table{}
	}
	return &Table{lines: strings.Split(raw, "\n")}
}

// Lines returns a copy of the table's lines.
func (t *Table) Lines() []string {
	lines := make([]string, len(t.lines))
	copy(lines, t.lines)
	return lines
}

// Len returns the number of lines.
func (t *Table) Len() int {
	return len(t.lines)
}

// Render serializes the table for the crontab program. A non-empty table
// always ends with a newline; crontab rejects files missing one.
func (t *Table) Render() string {
	if len(t.lines) == 0 {
		return ""
	}
	return strings.Join(t.lines, "\n") + "\n"
}

// Filter returns a new table without the lines matching pred, in the
// original order, together with the removed lines.
func (t *Table) Filter(pred func(string) bool) (*Table, []string) {
	kept := make([]string, 0, len(t.lines))
	var removed []string

	for _, line := range t.lines {
		if pred(line) {
			removed = append(removed, line)
			continue
		}
		kept = append(kept, line)
	}

	return &Table{lines: kept}, removed
}

// Append adds a line at the end of the table.
func (t *Table) Append(line string) {
	t.lines = append(t.lines, line)
}

// Matching returns the lines satisfying pred.
func (t *Table) Matching(pred func(string) bool) []string {
	var matched []string
	for _, line := range t.lines {
		if pred(line) {
			matched = append(matched, line)
		}
	}
	return matched
}
