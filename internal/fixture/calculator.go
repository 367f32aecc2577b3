// Package fixture bridges decision table rows to the arithmetic library.
package fixture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/klagrida/fitnesse-calculator-demo/internal/calculator"
	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
	"github.com/klagrida/fitnesse-calculator-demo/internal/table"
)

// Name is the table header that selects the Calculator fixture.
const Name = "CalculatorFixture"

// Evaluate computes the outcome of in. Division by zero and unknown selectors become
// diagnostic outcomes; nothing is returned as an error.
func Evaluate(in domain.Input) domain.Outcome {
	kind := in.Kind()
	if !kind.Known() {
		return domain.UnknownOperation(in.Operation)
	}
	v, err := calculator.Apply(kind, in.First, in.Second)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionByZero) {
			return domain.DivisionByZero()
		}
		return domain.Diagnostic("error: " + err.Error())
	}
	return domain.Value(v)
}

// Calculator is the row adapter. Fields are set in any order, last write wins, and
// Result recomputes from the current fields on every call. Unset operands are zero.
// Not safe for concurrent use: create one per row.
type Calculator struct {
	first     float64
	second    float64
	operation string
}

// New returns an empty Calculator fixture.
func New() *Calculator {
	return &Calculator{}
}

// SetFirst stores the first operand.
func (c *Calculator) SetFirst(v float64) {
	c.first = v
}

// SetSecond stores the second operand.
func (c *Calculator) SetSecond(v float64) {
	c.second = v
}

// SetOperation stores the selector verbatim. It is not validated until Result.
func (c *Calculator) SetOperation(name string) {
	c.operation = name
}

// Input snapshots the current fields.
func (c *Calculator) Input() domain.Input {
	return domain.Input{First: c.first, Second: c.second, Operation: c.operation}
}

// Result evaluates the current fields.
func (c *Calculator) Result() domain.Outcome {
	return Evaluate(c.Input())
}

// Set implements table.Fixture. Columns are matched in normalized form.
func (c *Calculator) Set(column, value string) error {
	switch table.NormalizeHeader(column) {
	case "firstnumber", "first":
		v, err := parseNumber(value)
		if err != nil {
			return err
		}
		c.SetFirst(v)
	case "secondnumber", "second":
		v, err := parseNumber(value)
		if err != nil {
			return err
		}
		c.SetSecond(v)
	case "operation":
		c.SetOperation(value)
	default:
		return fmt.Errorf("%w: %s", table.ErrUnknownColumn, column)
	}
	return nil
}

// Get implements table.Fixture.
func (c *Calculator) Get(column string) (string, error) {
	switch table.NormalizeHeader(column) {
	case "result":
		return c.Result().String(), nil
	default:
		return "", fmt.Errorf("%w: %s", table.ErrUnknownColumn, column)
	}
}

// Register adds the Calculator fixture to r.
func Register(r *table.Registry) {
	r.Register(Name, func() table.Fixture { return New() })
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return v, nil
}
