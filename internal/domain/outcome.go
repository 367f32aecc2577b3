package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Outcome is the result of evaluating an Input: a number, or a diagnostic text.
// The zero value is the number 0.
type Outcome struct {
	value      float64
	diagnostic string
	failed     bool
}

// Value returns a successful numeric outcome.
func Value(v float64) Outcome {
	return Outcome{value: v}
}

// Diagnostic returns an outcome carrying a display message instead of a number.
func Diagnostic(msg string) Outcome {
	return Outcome{diagnostic: msg, failed: true}
}

// DivisionByZero is the diagnostic produced for a zero divisor.
func DivisionByZero() Outcome {
	return Diagnostic("error: " + ErrDivisionByZero.Error())
}

// UnknownOperation is the diagnostic for an unrecognized selector. The name is kept
// as given.
func UnknownOperation(name string) Outcome {
	return Diagnostic("Unknown operation: " + name)
}

// Number returns the numeric value and true for successful outcomes.
func (o Outcome) Number() (float64, bool) {
	return o.value, !o.failed
}

// IsDiagnostic reports whether the outcome holds a message instead of a number.
func (o Outcome) IsDiagnostic() bool {
	return o.failed
}

// Message returns the diagnostic text, empty for numbers.
func (o Outcome) Message() string {
	return o.diagnostic
}

// String renders the outcome the way decision tables expect it.
func (o Outcome) String() string {
	if o.failed {
		return o.diagnostic
	}
	return FormatNumber(o.value)
}

type outcomeJSON struct {
	Value      *float64 `json:"value,omitempty"`
	Diagnostic string   `json:"diagnostic,omitempty"`
}

// MarshalJSON encodes numbers as {"value": n} and diagnostics as {"diagnostic": "..."}.
// Non-finite numbers travel as diagnostics of their rendering since JSON has no NaN.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.failed {
		return json.Marshal(outcomeJSON{Diagnostic: o.diagnostic})
	}
	if math.IsNaN(o.value) || math.IsInf(o.value, 0) {
		return json.Marshal(outcomeJSON{Diagnostic: FormatNumber(o.value)})
	}
	v := o.value
	return json.Marshal(outcomeJSON{Value: &v})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var raw outcomeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Value != nil:
		*o = Value(*raw.Value)
	case raw.Diagnostic == "NaN":
		*o = Value(math.NaN())
	case raw.Diagnostic == "+Inf":
		*o = Value(math.Inf(1))
	case raw.Diagnostic == "-Inf":
		*o = Value(math.Inf(-1))
	default:
		*o = Diagnostic(raw.Diagnostic)
	}
	return nil
}

// FormatNumber renders v in plain decimal notation with the shortest digits that
// round-trip. Integral values get a ".0" suffix, so 8 renders as "8.0" and 1e12 as
// "1000000000000.0". Scientific notation is never used.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
