package table

import (
	"fmt"
	"io"
)

// Status of a checked cell.
type Status string

const (
	StatusRight   Status = "right"
	StatusWrong   Status = "wrong"
	StatusIgnored Status = "ignored"
)

// Counts tallies checked cells the way FitNesse does.
type Counts struct {
	Right      int `json:"right"`
	Wrong      int `json:"wrong"`
	Ignored    int `json:"ignored"`
	Exceptions int `json:"exceptions"`
}

func (c *Counts) merge(o Counts) {
	c.Right += o.Right
	c.Wrong += o.Wrong
	c.Ignored += o.Ignored
	c.Exceptions += o.Exceptions
}

// String renders "N right, N wrong, N ignored, N exceptions".
func (c Counts) String() string {
	return fmt.Sprintf("%d right, %d wrong, %d ignored, %d exceptions", c.Right, c.Wrong, c.Ignored, c.Exceptions)
}

// CellResult is one checked output cell.
type CellResult struct {
	Column   string `json:"column"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Status   Status `json:"status"`
}

// RowResult is one executed row. Error is set when the row raised an exception.
type RowResult struct {
	Line  int          `json:"line"`
	Cells []CellResult `json:"cells,omitempty"`
	Error string       `json:"error,omitempty"`
}

func (r RowResult) counts() Counts {
	var c Counts
	if r.Error != "" {
		c.Exceptions++
	}
	for _, cell := range r.Cells {
		switch cell.Status {
		case StatusRight:
			c.Right++
		case StatusWrong:
			c.Wrong++
		case StatusIgnored:
			c.Ignored++
		}
	}
	return c
}

// TableResult is one executed table.
type TableResult struct {
	Fixture string      `json:"fixture"`
	Line    int         `json:"line"`
	Rows    []RowResult `json:"rows,omitempty"`
	Error   string      `json:"error,omitempty"`
	Counts  Counts      `json:"counts"`
}

// Report collects the results of a page.
type Report struct {
	Tables []TableResult `json:"tables"`
	Counts Counts        `json:"counts"`
}

func (r *Report) add(t TableResult) {
	r.Tables = append(r.Tables, t)
	r.Counts.merge(t.Counts)
}

// Merge folds other into r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	for _, t := range other.Tables {
		r.add(t)
	}
}

// Passed reports whether no cell was wrong and no row raised an exception.
func (r *Report) Passed() bool {
	return r.Counts.Wrong == 0 && r.Counts.Exceptions == 0
}

// Write prints failures and the summary line to w.
func (r *Report) Write(w io.Writer) error {
	for _, t := range r.Tables {
		if t.Error != "" {
			if _, err := fmt.Fprintf(w, "line %d: %s: %s\n", t.Line, t.Fixture, t.Error); err != nil {
				return err
			}
		}
		for _, row := range t.Rows {
			if row.Error != "" {
				if _, err := fmt.Fprintf(w, "line %d: exception: %s\n", row.Line, row.Error); err != nil {
					return err
				}
			}
			for _, c := range row.Cells {
				if c.Status != StatusWrong {
					continue
				}
				if _, err := fmt.Fprintf(w, "line %d: %s expected [%s] actual [%s]\n", row.Line, c.Column, c.Expected, c.Actual); err != nil {
					return err
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, r.Counts.String())
	return err
}
