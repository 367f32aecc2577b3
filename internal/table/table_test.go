package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `!1 Title

some prose
|import|
|com.example|

!|Echo Fixture|
|in|out?|
|a|a|
|b| !-b-! |

|com.example.EchoFixture|
|In|Out()|
|c|x|
`

func TestParse(t *testing.T) {
	tables, err := ParseString(page)
	require.NoError(t, err)

	want := []Table{
		{Fixture: "import", Line: 4},
		{
			Fixture: "Echo Fixture",
			Line:    7,
			Headers: []string{"in", "out?"},
			Rows: []Row{
				{Line: 9, Cells: []string{"a", "a"}},
				{Line: 10, Cells: []string{"b", "b"}},
			},
		},
		{
			Fixture: "com.example.EchoFixture",
			Line:    12,
			Headers: []string{"In", "Out()"},
			Rows: []Row{
				{Line: 14, Cells: []string{"c", "x"}},
			},
		},
	}
	if diff := cmp.Diff(want, tables); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := ParseString("|CalculatorFixture|\n\ntext\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedTable))
}

func TestParse_NoTables(t *testing.T) {
	tables, err := ParseString("just prose\n\n!1 heading\n")
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestNormalizeHeader(t *testing.T) {
	tests := map[string]string{
		"first number":   "firstnumber",
		"First Number":   "firstnumber",
		"firstNumber":    "firstnumber",
		"result?":        "result",
		" result() ":     "result",
		"second  number": "secondnumber",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeHeader(in), in)
	}
	assert.True(t, IsOutput("result?"))
	assert.True(t, IsOutput("result()"))
	assert.False(t, IsOutput("operation"))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("8.0", "8.0"))
	assert.True(t, Matches("8", "8.0"))
	assert.True(t, Matches("1.0E12", "1000000000000.0"))
	assert.True(t, Matches(" error: x ", "error: x"))
	assert.False(t, Matches("8.1", "8.0"))
	assert.False(t, Matches("8.0", "error: Cannot divide by zero"))
}
