package table

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Runner executes parsed tables against the fixtures of a registry.
type Runner struct {
	registry *Registry
	log      *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default.
func NewRunner(registry *Registry, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{registry: registry, log: log}
}

// RunPage parses page and runs every table in it.
func (r *Runner) RunPage(ctx context.Context, page string) (*Report, error) {
	tables, err := ParseString(page)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, tables)
}

// Run executes tables in order. It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, tables []Table) (*Report, error) {
	rep := &Report{}
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if t.Headers == nil {
			continue
		}
		tr := r.runTable(t)
		rep.add(tr)
	}
	r.log.Debug("tables executed", "tables", len(rep.Tables), "counts", rep.Counts.String())
	return rep, nil
}

func (r *Runner) runTable(t Table) TableResult {
	tr := TableResult{Fixture: t.Fixture, Line: t.Line}
	factory, ok := r.registry.Lookup(t.Fixture)
	if !ok {
		tr.Error = fmt.Sprintf("fixture not found: %s", t.Fixture)
		tr.Counts.Exceptions++
		r.log.Warn("fixture not found", "fixture", t.Fixture, "line", t.Line)
		return tr
	}
	for _, row := range t.Rows {
		rr := runRow(factory(), t.Headers, row)
		tr.Counts.merge(rr.counts())
		tr.Rows = append(tr.Rows, rr)
	}
	return tr
}

func runRow(f Fixture, headers []string, row Row) RowResult {
	rr := RowResult{Line: row.Line}
	if len(row.Cells) > len(headers) {
		rr.Error = fmt.Sprintf("row has %d cells, table has %d columns", len(row.Cells), len(headers))
		return rr
	}

	for i, h := range headers {
		if IsOutput(h) || i >= len(row.Cells) || row.Cells[i] == "" {
			continue
		}
		if err := f.Set(h, row.Cells[i]); err != nil {
			rr.Error = fmt.Sprintf("set %s: %v", h, err)
			return rr
		}
	}

	for i, h := range headers {
		if !IsOutput(h) {
			continue
		}
		var expected string
		if i < len(row.Cells) {
			expected = row.Cells[i]
		}
		actual, err := f.Get(h)
		if err != nil {
			rr.Error = fmt.Sprintf("get %s: %v", h, err)
			return rr
		}
		cell := CellResult{Column: h, Expected: expected, Actual: actual}
		switch {
		case expected == "":
			cell.Status = StatusIgnored
		case Matches(expected, actual):
			cell.Status = StatusRight
		default:
			cell.Status = StatusWrong
		}
		rr.Cells = append(rr.Cells, cell)
	}
	return rr
}

// Matches compares an expected cell with an actual value. Cells match when the text
// is equal or when both sides parse as the same number, so "8" matches "8.0".
func Matches(expected, actual string) bool {
	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)
	if expected == actual {
		return true
	}
	e, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return false
	}
	a, err := strconv.ParseFloat(actual, 64)
	if err != nil {
		return false
	}
	return e == a
}
