// Package table parses FitNesse-style wiki decision tables and runs them against
// fixtures.
//
// A table is a run of lines starting with "|" (optionally "!|"). The first row names
// the fixture, the second holds column headers and every further row is a test case.
// Headers ending in "?" or "()" are output columns whose cells hold expected values;
// all other headers are inputs.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownColumn is returned by fixtures for headers they do not understand.
var ErrUnknownColumn = errors.New("unknown column")

// ErrMalformedTable is returned by Parse for tables without a header row.
var ErrMalformedTable = errors.New("malformed table")

// Table is one parsed decision table.
type Table struct {
	Fixture string
	Line    int
	Headers []string
	Rows    []Row
}

// Row is one data row with the wiki line it came from.
type Row struct {
	Line  int
	Cells []string
}

// IsOutput reports whether header names an output column.
func IsOutput(header string) bool {
	h := strings.TrimSpace(header)
	return strings.HasSuffix(h, "?") || strings.HasSuffix(h, "()")
}

// NormalizeHeader lower-cases header and drops spaces and the output marker, so
// "First Number", "firstNumber" and "first number" are the same column.
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(header)
	h = strings.TrimSuffix(h, "?")
	h = strings.TrimSuffix(h, "()")
	h = strings.ToLower(h)
	return strings.Join(strings.Fields(h), "")
}

// Parse reads every table in a wiki page. Non-table lines are skipped and end the
// current table.
func Parse(r io.Reader) ([]Table, error) {
	var (
		tables []Table
		rows   []Row
		lineNo int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		t, err := build(rows)
		rows = nil
		if err != nil {
			return err
		}
		tables = append(tables, t)
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		cells, ok := splitRow(sc.Text())
		if !ok {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		rows = append(rows, Row{Line: lineNo, Cells: cells})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return tables, nil
}

// ParseString is Parse over a string.
func ParseString(page string) ([]Table, error) {
	return Parse(strings.NewReader(page))
}

func build(rows []Row) (Table, error) {
	t := Table{Fixture: rows[0].Cells[0], Line: rows[0].Line}
	if skipFixture(t.Fixture) {
		return t, nil
	}
	if len(rows) < 2 {
		return Table{}, fmt.Errorf("%w: line %d: %s has no header row", ErrMalformedTable, t.Line, t.Fixture)
	}
	t.Headers = rows[1].Cells
	t.Rows = rows[2:]
	return t, nil
}

// skipFixture reports tables that configure the page rather than test anything.
func skipFixture(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "import", "library", "comment", "define":
		return true
	}
	return false
}

func splitRow(line string) ([]string, bool) {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "!")
	if !strings.HasPrefix(s, "|") {
		return nil, false
	}
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	cells := strings.Split(s, "|")
	for i, c := range cells {
		c = strings.TrimSpace(c)
		if strings.HasPrefix(c, "!-") && strings.HasSuffix(c, "-!") && len(c) >= 4 {
			c = c[2 : len(c)-2]
		}
		cells[i] = c
	}
	return cells, true
}
