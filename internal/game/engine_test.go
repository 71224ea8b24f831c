package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vviseguy/mastermind/internal/peg"
	"github.com/vviseguy/mastermind/internal/solver"
)

func alphabet(t *testing.T, s string) peg.Alphabet {
	t.Helper()
	a, err := peg.ParseAlphabet(s)
	require.NoError(t, err)
	return a
}

func code(t *testing.T, s string, a peg.Alphabet) peg.Code {
	t.Helper()
	c, err := peg.ParseCode(s, a)
	require.NoError(t, err)
	return c
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeNormal, "Evil": ModeEvil, " assist ": ModeAssist, "normal": ModeNormal} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("cheat")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	a := alphabet(t, "RGBYOP")
	g, err := New(Options{Length: 4, Alphabet: a, Rows: 10})
	require.NoError(t, err)
	assert.Equal(t, ModeNormal, g.Mode)
	assert.Len(t, g.ID, 16)
	assert.NoError(t, a.Validate(g.Secret, 4), "random secret is generated")
	assert.Equal(t, 1296, g.Remaining())
	assert.Equal(t, StatePlaying, g.State())

	_, err = New(Options{Mode: ModeEvil, Length: 4, Alphabet: a, Secret: code(t, "RGBY", a)})
	assert.ErrorIs(t, err, ErrWrongMode)
	_, err = New(Options{Length: 4, Alphabet: a, Secret: code(t, "RGB", a)})
	assert.ErrorIs(t, err, peg.ErrLengthMismatch)
	_, err = New(Options{Length: 4, Alphabet: peg.Alphabet{}})
	assert.ErrorIs(t, err, peg.ErrEmptyAlphabet)
	_, err = New(Options{Mode: "cheat", Length: 4, Alphabet: a})
	assert.Error(t, err)
	_, err = New(Options{Length: 4, Alphabet: a, Rows: -1})
	assert.Error(t, err)
}

func TestNormal_WinAndLoss(t *testing.T) {
	a := alphabet(t, "ABCD")
	g, err := New(Options{Length: 4, Alphabet: a, Rows: 3, Secret: code(t, "ABCD", a)})
	require.NoError(t, err)

	fb, state, err := g.ApplyGuess(code(t, "AABB", a))
	require.NoError(t, err)
	assert.Equal(t, peg.Feedback{Correct: 1, WrongPosition: 1, Incorrect: 2}, fb)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 56, g.Remaining())

	fb, state, err = g.ApplyGuess(code(t, "ABCD", a))
	require.NoError(t, err)
	assert.True(t, fb.Solved(4))
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 1, g.Remaining())

	_, _, err = g.ApplyGuess(code(t, "ABCD", a))
	assert.ErrorIs(t, err, ErrFinished)

	lose, err := New(Options{Length: 4, Alphabet: a, Rows: 2, Secret: code(t, "ABCD", a)})
	require.NoError(t, err)
	_, _, err = lose.ApplyGuess(code(t, "AAAA", a))
	require.NoError(t, err)
	_, state, err = lose.ApplyGuess(code(t, "BBBB", a))
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.Len(t, lose.Records(), 2)
}

func TestNormal_RejectsBadGuess(t *testing.T) {
	a := alphabet(t, "ABCD")
	g, err := New(Options{Length: 4, Alphabet: a, Secret: code(t, "ABCD", a)})
	require.NoError(t, err)

	_, _, err = g.ApplyGuess(code(t, "ABC", a))
	assert.ErrorIs(t, err, peg.ErrLengthMismatch)
	_, _, err = g.ApplyGuess(peg.Code{'A', 'B', 'C', peg.Unset})
	assert.ErrorIs(t, err, peg.ErrInvalidSymbol)
	assert.Empty(t, g.Records())

	_, err = g.Record(code(t, "ABCD", a), peg.Feedback{Correct: 4})
	assert.ErrorIs(t, err, ErrWrongMode)
	assert.ErrorIs(t, g.EditFeedback(1, peg.Feedback{Correct: 4}), ErrWrongMode)
}

func TestEvil_CrystallizesOnForcedWin(t *testing.T) {
	a := alphabet(t, "RG")
	g, err := New(Options{Mode: ModeEvil, Length: 2, Alphabet: a})
	require.NoError(t, err)
	assert.Nil(t, g.Secret)

	fb, state, err := g.ApplyGuess(code(t, "RG", a))
	require.NoError(t, err)
	assert.Equal(t, peg.Feedback{Correct: 1, Incorrect: 1}, fb)
	assert.Equal(t, StatePlaying, state)
	assert.Nil(t, g.Secret)
	require.Equal(t, 2, g.Remaining())

	// {RR, GG}: guessing RR splits 1/1, and the tie goes to GG.
	fb, _, err = g.ApplyGuess(code(t, "RR", a))
	require.NoError(t, err)
	assert.Equal(t, peg.Feedback{Incorrect: 2}, fb)
	require.Equal(t, 1, g.Remaining())
	assert.Nil(t, g.Secret, "one candidate left, but not yet guessed")

	fb, state, err = g.ApplyGuess(code(t, "GG", a))
	require.NoError(t, err)
	assert.True(t, fb.Solved(2))
	assert.Equal(t, StateWon, state)
	assert.Equal(t, "GG", g.Secret.String())
}

func TestEvil_RevealsOnLoss(t *testing.T) {
	a := alphabet(t, "RGBYOP")
	g, err := New(Options{Mode: ModeEvil, Length: 4, Alphabet: a, Rows: 1})
	require.NoError(t, err)

	_, state, err := g.ApplyGuess(code(t, "RRGG", a))
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	require.NotNil(t, g.Secret)
	assert.False(t, g.Secret.Equal(code(t, "RRGG", a)))

	fb, err := peg.Evaluate(code(t, "RRGG", a), g.Secret)
	require.NoError(t, err)
	assert.Equal(t, g.Records()[0].Feedback, fb, "revealed secret is consistent with the answers")
}

func TestEvil_MatchesProcessSeries(t *testing.T) {
	a := alphabet(t, "RGBYOP")
	g, err := New(Options{Mode: ModeEvil, Length: 4, Alphabet: a})
	require.NoError(t, err)

	var guesses []peg.Code
	for _, s := range []string{"RRGG", "RGBY", "BYOP"} {
		c := code(t, s, a)
		guesses = append(guesses, c)
		_, _, err := g.ApplyGuess(c)
		require.NoError(t, err)
	}
	records, space, err := solver.ProcessSeries(4, a, guesses)
	require.NoError(t, err)
	assert.Equal(t, records, g.Records())
	assert.Equal(t, space.Len(), g.Remaining())
}

func TestAssist_RecordAndEdit(t *testing.T) {
	a := alphabet(t, "ABCD")
	g, err := New(Options{Mode: ModeAssist, Length: 4, Alphabet: a, Rows: 5})
	require.NoError(t, err)

	_, _, err = g.ApplyGuess(code(t, "AABB", a))
	assert.ErrorIs(t, err, ErrWrongMode)

	state, err := g.Record(code(t, "AABB", a), peg.Feedback{Correct: 1, WrongPosition: 1, Incorrect: 2})
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 56, g.Remaining())

	// 3/1/0 never happens; it must be refused without touching the game.
	_, err = g.Record(code(t, "ABCD", a), peg.Feedback{Correct: 3, WrongPosition: 1})
	assert.ErrorIs(t, err, solver.ErrEmptySolutionSpace)
	assert.Len(t, g.Records(), 1)
	assert.Equal(t, 56, g.Remaining())

	state, err = g.Record(code(t, "ABCD", a), peg.Feedback{Correct: 4})
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, "ABCD", g.Secret.String())

	// The player misread round 2; correcting it reopens the game.
	require.NoError(t, g.EditFeedback(2, peg.Feedback{Correct: 2, WrongPosition: 2}))
	assert.Equal(t, StatePlaying, g.State())
	assert.Nil(t, g.Secret)
	want, err := solver.Replay(4, a, g.Records())
	require.NoError(t, err)
	assert.Equal(t, want.Candidates(), g.Candidates())

	before := g.Records()
	err = g.EditFeedback(1, peg.Feedback{Correct: 4})
	assert.ErrorIs(t, err, solver.ErrEmptySolutionSpace)
	assert.Equal(t, before, g.Records(), "failed edit leaves history alone")

	assert.ErrorIs(t, g.EditFeedback(3, peg.Feedback{Correct: 4}), ErrNoSuchRound)
	assert.ErrorIs(t, g.EditFeedback(0, peg.Feedback{Correct: 4}), ErrNoSuchRound)
}

func TestHint(t *testing.T) {
	a := alphabet(t, "RGBYOP")
	g, err := New(Options{Mode: ModeEvil, Length: 4, Alphabet: a})
	require.NoError(t, err)

	recs, err := g.Hint(context.Background(), 100, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "RRGG", recs[0].Guess.String())
	assert.Equal(t, 256, recs[0].WorstCase)
}
