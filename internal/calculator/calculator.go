// Package calculator holds the four arithmetic operations driven by the decision
// table fixtures and the service.
package calculator

import (
	"fmt"

	"github.com/klagrida/fitnesse-calculator-demo/internal/domain"
)

// ErrDivisionByZero is re-exported so callers of this package need not import domain.
var ErrDivisionByZero = domain.ErrDivisionByZero

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivisionByZero when b is exactly zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Apply runs the operation named by kind.
func Apply(kind domain.OperationKind, a, b float64) (float64, error) {
	switch kind {
	case domain.OpAdd:
		return Add(a, b), nil
	case domain.OpSubtract:
		return Subtract(a, b), nil
	case domain.OpMultiply:
		return Multiply(a, b), nil
	case domain.OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, kind)
	}
}
