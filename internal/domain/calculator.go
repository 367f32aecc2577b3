package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("Cannot divide by zero")

// ErrUnknownOperation is returned when an operation kind cannot be applied.
var ErrUnknownOperation = errors.New("unknown operation")

// OperationKind is the resolved form of an operation selector.
type OperationKind int

const (
	OpUnknown OperationKind = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operationNames = map[OperationKind]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// ParseOperation resolves a selector case-insensitively. Whitespace is significant:
// anything outside the four known names, " add" included, yields OpUnknown.
func ParseOperation(name string) OperationKind {
	switch strings.ToLower(name) {
	case "add":
		return OpAdd
	case "subtract":
		return OpSubtract
	case "multiply":
		return OpMultiply
	case "divide":
		return OpDivide
	default:
		return OpUnknown
	}
}

// String returns the canonical lower-case name, or "unknown".
func (k OperationKind) String() string {
	if n, ok := operationNames[k]; ok {
		return n
	}
	return "unknown"
}

// Known reports whether k is one of the four arithmetic operations.
func (k OperationKind) Known() bool {
	_, ok := operationNames[k]
	return ok
}

// Input is one decision table row: both operands and the raw selector.
type Input struct {
	First     float64 `json:"first"`
	Second    float64 `json:"second"`
	Operation string  `json:"operation"`
}

// Kind resolves the selector of the input.
func (in Input) Kind() OperationKind {
	return ParseOperation(in.Operation)
}

// Evaluation is a stored record of one computed input.
type Evaluation struct {
	ID        int       `json:"id"`
	Input     Input     `json:"input"`
	Outcome   Outcome   `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}
