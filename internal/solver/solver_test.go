package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vviseguy/mastermind/internal/peg"
)

func mustAlphabet(t *testing.T, s string) peg.Alphabet {
	t.Helper()
	a, err := peg.ParseAlphabet(s)
	require.NoError(t, err)
	return a
}

func mustCode(t *testing.T, s string, a peg.Alphabet) peg.Code {
	t.Helper()
	c, err := peg.ParseCode(s, a)
	require.NoError(t, err)
	return c
}

func mustSpace(t *testing.T, length int, a peg.Alphabet) *Space {
	t.Helper()
	s, err := New(length, a)
	require.NoError(t, err)
	return s
}

func codeStrings(codes []peg.Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}
