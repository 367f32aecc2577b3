package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integral", in: 8, want: "8.0"},
		{name: "negative integral", in: -2, want: "-2.0"},
		{name: "zero", in: 0, want: "0.0"},
		{name: "fraction", in: 2.5, want: "2.5"},
		{name: "repeating", in: 1.0 / 3.0, want: "0.3333333333333333"},
		{name: "large product", in: 1e12, want: "1000000000000.0"},
		{name: "tiny", in: 0.000001, want: "0.000001"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "plus inf", in: math.Inf(1), want: "+Inf"},
		{name: "minus inf", in: math.Inf(-1), want: "-Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestParseOperation(t *testing.T) {
	for _, name := range []string{"add", "ADD", "Add", "aDD"} {
		assert.Equal(t, OpAdd, ParseOperation(name), name)
	}
	assert.Equal(t, OpSubtract, ParseOperation("Subtract"))
	assert.Equal(t, OpMultiply, ParseOperation("MULTIPLY"))
	assert.Equal(t, OpDivide, ParseOperation("divide"))
	assert.Equal(t, OpUnknown, ParseOperation("modulo"))
	assert.Equal(t, OpUnknown, ParseOperation(""))
	assert.Equal(t, OpUnknown, ParseOperation("+"))
	assert.Equal(t, OpUnknown, ParseOperation(" add "))
	assert.Equal(t, OpUnknown, ParseOperation("add\t"))
	assert.Equal(t, OpUnknown, ParseOperation("\u00a0add"))

	assert.True(t, OpDivide.Known())
	assert.False(t, OpUnknown.Known())
	assert.Equal(t, "unknown", OpUnknown.String())
	assert.Equal(t, "multiply", OpMultiply.String())
}

func TestOutcome(t *testing.T) {
	v := Value(5)
	n, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)
	assert.False(t, v.IsDiagnostic())
	assert.Equal(t, "5.0", v.String())

	d := DivisionByZero()
	_, ok = d.Number()
	assert.False(t, ok)
	assert.True(t, d.IsDiagnostic())
	assert.Equal(t, "error: Cannot divide by zero", d.String())

	u := UnknownOperation("Modulo")
	assert.Equal(t, "Unknown operation: Modulo", u.Message())
}

func TestOutcome_JSON(t *testing.T) {
	data, err := json.Marshal(Value(8))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":8}`, string(data))

	data, err = json.Marshal(Value(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":0}`, string(data))

	data, err = json.Marshal(DivisionByZero())
	require.NoError(t, err)
	assert.JSONEq(t, `{"diagnostic":"error: Cannot divide by zero"}`, string(data))

	var o Outcome
	require.NoError(t, json.Unmarshal([]byte(`{"diagnostic":"+Inf"}`), &o))
	n, ok := o.Number()
	assert.True(t, ok)
	assert.True(t, math.IsInf(n, 1))

	require.NoError(t, json.Unmarshal([]byte(`{"diagnostic":"Unknown operation: x"}`), &o))
	assert.Equal(t, UnknownOperation("x"), o)
}
