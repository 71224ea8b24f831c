package secret

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vviseguy/mastermind/internal/peg"
)

func TestRandom(t *testing.T) {
	a, err := peg.ParseAlphabet("RGBYOP")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		c, err := Random(4, a)
		require.NoError(t, err)
		assert.NoError(t, a.Validate(c, 4))
	}

	_, err = Random(4, peg.Alphabet{})
	assert.ErrorIs(t, err, peg.ErrEmptyAlphabet)
	_, err = Random(0, a)
	assert.ErrorIs(t, err, peg.ErrLengthMismatch)
}

func TestDaily(t *testing.T) {
	a, err := peg.ParseAlphabet("RGBYOP")
	require.NoError(t, err)

	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	x, err := Daily(morning, "salt", 4, a)
	require.NoError(t, err)
	y, err := Daily(evening, "salt", 4, a)
	require.NoError(t, err)
	assert.True(t, x.Equal(y), "same day, same code")
	assert.NoError(t, a.Validate(x, 4))

	assert.Equal(t, "2026-03-01", DateKey(morning))

	// Across a month of days at least two codes must differ.
	distinct := map[string]bool{}
	for d := 0; d < 30; d++ {
		c, err := Daily(morning.AddDate(0, 0, d), "salt", 4, a)
		require.NoError(t, err)
		distinct[c.Key()] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestUniverseOverflow(t *testing.T) {
	a, err := peg.ParseAlphabet("ABCDEFGHIJ")
	require.NoError(t, err)
	_, err = universe(40, a)
	assert.Error(t, err)
	n, err := universe(3, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), n)
}
