package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAlphabet(t *testing.T, s string) Alphabet {
	t.Helper()
	a, err := ParseAlphabet(s)
	require.NoError(t, err)
	return a
}

func mustCode(t *testing.T, s string, a Alphabet) Code {
	t.Helper()
	c, err := ParseCode(s, a)
	require.NoError(t, err)
	return c
}

func TestEvaluate_Scenarios(t *testing.T) {
	abcd := mustAlphabet(t, "ABCDEF")
	tests := []struct {
		name      string
		guess     string
		candidate string
		want      Feedback
	}{
		{"repeated guess symbols", "AABB", "ABCD", Feedback{Correct: 1, WrongPosition: 1, Incorrect: 2}},
		{"exact", "ABCD", "ABCD", Feedback{Correct: 4}},
		{"all rotated", "ABCD", "BCDA", Feedback{WrongPosition: 4}},
		{"disjoint", "AAAA", "BBBB", Feedback{Incorrect: 4}},
		{"one red credits once", "AAEF", "ABCD", Feedback{Correct: 1, Incorrect: 3}},
		{"double in candidate", "ABCD", "AAAA", Feedback{Correct: 1, Incorrect: 3}},
		{"mixed repeats", "AABC", "CAAB", Feedback{Correct: 1, WrongPosition: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(mustCode(t, tt.guess, abcd), mustCode(t, tt.candidate, abcd))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_Properties(t *testing.T) {
	a := mustAlphabet(t, "RGB")
	const length = 3
	total := uint64(27)
	for i := uint64(0); i < total; i++ {
		x := a.CodeAt(length, i)
		self, err := Evaluate(x, x)
		require.NoError(t, err)
		assert.Equal(t, Feedback{Correct: length}, self, "self score of %s", x)

		for j := uint64(0); j < total; j++ {
			y := a.CodeAt(length, j)
			xy, err := Evaluate(x, y)
			require.NoError(t, err)
			yx, err := Evaluate(y, x)
			require.NoError(t, err)
			assert.Equal(t, xy, yx, "symmetry %s vs %s", x, y)
			assert.Equal(t, length, xy.Total(), "sum %s vs %s", x, y)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	a := mustAlphabet(t, "RG")
	_, err := Evaluate(mustCode(t, "RG", a), mustCode(t, "RGR", a))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Evaluate(Code{'R', Unset}, mustCode(t, "RG", a))
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestEvaluate_LongCodes(t *testing.T) {
	g := make(Code, 20)
	c := make(Code, 20)
	for i := range g {
		g[i] = 'A'
		c[i] = 'B'
	}
	c[0] = 'A'
	fb, err := Evaluate(g, c)
	require.NoError(t, err)
	assert.Equal(t, Feedback{Correct: 1, Incorrect: 19}, fb)
}
