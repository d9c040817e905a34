package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundGuess(t *testing.T) {
	r := NewRound("World", Evaluator{}, 0)
	require.Equal(t, 5, r.Len())

	_, err := r.Guess("hi")
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, 0, r.Tries())

	res, err := r.Guess(" hello ")
	require.NoError(t, err)
	assert.Len(t, res, 5)
	assert.Equal(t, 1, r.Tries())
	assert.False(t, r.Won())
	assert.False(t, r.Over())

	res, err = r.Guess("WORLD")
	require.NoError(t, err)
	assert.True(t, res.Solved())
	assert.Equal(t, 2, r.Tries())
	assert.True(t, r.Won())
	assert.True(t, r.Over())

	_, err = r.Guess("world")
	require.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, 2, r.Tries())
}

func TestRoundValidateCountsRunes(t *testing.T) {
	r := NewRound("café", Evaluator{}, 0)
	require.Equal(t, 4, r.Len())
	require.NoError(t, r.Validate("cafe"))
	require.NoError(t, r.Validate("éééé"))
	require.ErrorIs(t, r.Validate("cafés"), ErrInvalidLength)
}

func TestRoundMaxTries(t *testing.T) {
	r := NewRound("abc", Evaluator{}, 2)

	_, err := r.Guess("xyz")
	require.NoError(t, err)
	assert.False(t, r.Over())

	_, err = r.Guess("cab")
	require.NoError(t, err)
	assert.True(t, r.Over())
	assert.False(t, r.Won())

	_, err = r.Guess("abc")
	require.ErrorIs(t, err, ErrRoundOver)
}

func TestScoreRecord(t *testing.T) {
	var s Score
	assert.True(t, s.Improves(6))
	assert.False(t, s.Improves(0))

	s = s.Record(6)
	assert.Equal(t, Score{Best: 6, Rounds: 1, Wins: 1}, s)

	s = s.Record(0)
	assert.Equal(t, Score{Best: 6, Rounds: 2, Wins: 1}, s)

	assert.False(t, s.Improves(8))
	s = s.Record(8)
	assert.Equal(t, 6, s.Best)

	assert.True(t, s.Improves(3))
	s = s.Record(3)
	assert.Equal(t, Score{Best: 3, Rounds: 4, Wins: 3}, s)
}
