package interpreter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `4 8
(2, 3, E) LFRFF
(0, 2, N) FFLFRFF
`

func parseErrors(t *testing.T, input string) SyntaxErrors {
	t.Helper()
	prog, err := Parse("input", input)
	require.Error(t, err)
	assert.Nil(t, prog)

	var errs SyntaxErrors
	require.True(t, errors.As(err, &errs), "want SyntaxErrors, got %T", err)
	require.NotEmpty(t, errs)
	return errs
}

func TestParseInput(t *testing.T) {
	prog, err := Parse("input", sample)
	require.NoError(t, err)

	want := &Program{
		Grid: Grid{M: 4, N: 8},
		Entries: []Entry{
			{
				Rover:    NewRover(NewVector(2, 3), East),
				Commands: []Command{Left, Forward, Right, Forward, Forward},
			},
			{
				Rover:    NewRover(NewVector(0, 2), North),
				Commands: []Command{Forward, Forward, Left, Forward, Right, Forward, Forward},
			},
		},
	}
	assert.Equal(t, want, prog)
}

func TestParseIsDeterministic(t *testing.T) {
	a, err := Parse("input", sample)
	require.NoError(t, err)
	b, err := Parse("input", sample)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseWhitespace(t *testing.T) {
	input := "\n  4   8  \r\n\n\t(2,3,E)LFRFF\n   (  -1 , +2 , S )   \n\n"
	prog, err := Parse("input", input)
	require.NoError(t, err)

	assert.Equal(t, Grid{M: 4, N: 8}, prog.Grid)
	require.Len(t, prog.Entries, 2)
	assert.Equal(t, NewRover(NewVector(2, 3), East), prog.Entries[0].Rover)
	assert.Equal(t, "LFRFF", Commands(prog.Entries[0].Commands))
	assert.Equal(t, NewRover(NewVector(-1, 2), South), prog.Entries[1].Rover)
	assert.Empty(t, prog.Entries[1].Commands)
}

func TestParseGridOnly(t *testing.T) {
	prog, err := Parse("input", "5 5\n")
	require.NoError(t, err)
	assert.Equal(t, Grid{M: 5, N: 5}, prog.Grid)
	assert.Empty(t, prog.Entries)
	assert.Empty(t, prog.Exec(nil))
}

func TestParseInt32Bounds(t *testing.T) {
	prog, err := Parse("input", "2147483647 -2147483648\n")
	require.NoError(t, err)
	assert.Equal(t, Grid{M: 2147483647, N: -2147483648}, prog.Grid)

	errs := parseErrors(t, "4 8\n(2147483648, 0, N) F\n")
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Pos.Line)
	assert.Equal(t, 2, errs[0].Pos.Column)
	assert.Contains(t, errs[0].Msg, "out of range")
}

func TestParseUnknownOrientation(t *testing.T) {
	errs := parseErrors(t, "4 8\n(2, 3, Q) LFRFF\n(0, 2, N) FFLFRFF\n")
	require.Len(t, errs, 1)
	assert.Equal(t, "input:2:8: unknown orientation \"Q\" (expected N, E, S or W)", errs[0].Error())
	assert.Equal(t, len("4 8\n(2, 3, "), errs[0].Pos.Offset)
}

func TestParseUnknownCommand(t *testing.T) {
	errs := parseErrors(t, "4 8\n(2, 3, E) LFXFB\n")
	require.Len(t, errs, 2)
	assert.Equal(t, 13, errs[0].Pos.Column)
	assert.Contains(t, errs[0].Msg, "'X'")
	assert.Equal(t, 15, errs[1].Pos.Column)
	assert.Contains(t, errs[1].Msg, "'B'")
}

func TestParseAggregatesErrors(t *testing.T) {
	input := `4 8
(2, 3, Q) LFRFF
(0, 2, N) FFLFRFF
(1 1, N) F
(0, 0, E) FFZ
`
	errs := parseErrors(t, input)
	require.Len(t, errs, 3)
	assert.Equal(t, 2, errs[0].Pos.Line)
	assert.Equal(t, 4, errs[1].Pos.Line)
	assert.Equal(t, 5, errs[2].Pos.Line)
}

func TestParseSeveralProblemsOnOneLine(t *testing.T) {
	errs := parseErrors(t, "4 8\n(9999999999, 3, n) LFq\n")
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Msg, "9999999999")
	assert.Contains(t, errs[1].Msg, "orientation")
	assert.Contains(t, errs[2].Msg, "command")
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"empty", "", 1},
		{"blank", " \n\t\n", 1},
		{"one number", "4\n", 1},
		{"three numbers", "4 8 9\n", 1},
		{"word grid", "four eight\n", 1},
		{"missing paren", "4 8\n2, 3, E) F\n", 2},
		{"missing close", "4 8\n(2, 3, E F\n", 2},
		{"missing comma", "4 8\n(2 3, E) F\n", 2},
		{"number heading", "4 8\n(2, 3, 4) F\n", 2},
		{"bad character", "4 8\n(2, 3, E) F#F\n", 2},
		{"separated commands", "4 8\n(2, 3, E) L F\n", 2},
		{"two rovers on one line", "4 8\n(2, 3, E) F (1, 1, N) F\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseErrors(t, tt.input)
			assert.Equal(t, tt.line, errs[0].Pos.Line)
			assert.Equal(t, "input", errs[0].Pos.Filename)
		})
	}
}

func TestSyntaxErrorsMessage(t *testing.T) {
	errs := parseErrors(t, "4 8\n(2, 3, Q)\n(2, 3, E) X\n")
	assert.Equal(t,
		"input:2:8: unknown orientation \"Q\" (expected N, E, S or W)\n"+
			"input:3:11: unknown command 'X' (expected L, R or F)",
		errs.Error())
}
