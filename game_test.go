package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imkk000/go-wordle/internal/wordle"
	"github.com/imkk000/go-wordle/internal/words"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func playGame(t *testing.T, cfg Config, source words.Source, input string) (wordle.Score, string) {
	t.Helper()
	var out bytes.Buffer
	score, err := NewGame(cfg, source, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return score, out.String()
}

func TestGameSingleRound(t *testing.T) {
	score, out := playGame(t, Config{}, words.Static("World"), "hi\nhello\nworld\n")

	assert.Contains(t, out, "Welcome to Wordle! Try to guess the random 5-letter word!\n")
	assert.Contains(t, out, "Enter your 1. guess: Invalid guess. Please enter a 5-letter word.\n")
	assert.Contains(t, out, "Enter your 1. guess:  h   e  (l) [l] (o)\n")
	assert.Contains(t, out, "Enter your 2. guess: [w] [o] [r] [l] [d]\n")
	assert.Contains(t, out, "Congratulations! You won in 2 tries!\n")
	assert.NotContains(t, out, "Play again?")
	assert.Equal(t, wordle.Score{Best: 2, Rounds: 1, Wins: 1}, score)
}

func TestGameReplayTracksBest(t *testing.T) {
	cfg := Config{Replay: true}
	score, out := playGame(t, cfg, words.Static("World"), "hello\nworld\ny\nWORLD\nn\n")

	assert.Equal(t, 2, strings.Count(out, "Welcome to Wordle!"))
	assert.Contains(t, out, "Congratulations! You won in 2 tries!\n")
	assert.Contains(t, out, "Best score: 2 tries\n")
	assert.Contains(t, out, "Congratulations! You won in 1 try!\nNew best score: 1 try!\n")
	assert.Equal(t, wordle.Score{Best: 1, Rounds: 2, Wins: 2}, score)
}

func TestGameReplayKeepsBest(t *testing.T) {
	cfg := Config{Replay: true}
	score, out := playGame(t, cfg, words.Static("World"), "world\nyes\nhello\nworld\nno\n")

	assert.Contains(t, out, "Best score: 1 try\n")
	assert.NotContains(t, out, "New best score")
	assert.Equal(t, wordle.Score{Best: 1, Rounds: 2, Wins: 2}, score)
}

func TestGameOutOfTries(t *testing.T) {
	cfg := Config{MaxTries: 2}
	score, out := playGame(t, cfg, words.Static("World"), "hello\nworms\nworld\n")

	assert.Contains(t, out, "Enter your 2. guess: ")
	assert.NotContains(t, out, "Enter your 3. guess: ")
	assert.Contains(t, out, "Out of tries! The word was World.\n")
	assert.Equal(t, wordle.Score{Rounds: 1}, score)
}

func TestGameMultiplicityPolicy(t *testing.T) {
	cfg := Config{Policy: wordle.Multiplicity}
	_, out := playGame(t, cfg, words.Static("World"), "hello\nworld\n")

	assert.Contains(t, out, " h   e   l  [l] (o)\n")
}

func TestGameInputEnds(t *testing.T) {
	score, out := playGame(t, Config{Replay: true}, words.Static("World"), "hello\n")

	assert.Contains(t, out, "Enter your 2. guess: \n")
	assert.Equal(t, wordle.Score{}, score)
}

func TestGameCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGame(Config{}, words.Static("World"), r, io.Discard).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGameSolutionRelaxesBounds(t *testing.T) {
	list := words.NewList("anchor")
	cfg := Config{Bounds: words.Bounds{Min: 5, Max: 5}, Retries: 1}

	word, err := NewGame(cfg, list, strings.NewReader(""), io.Discard).solution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anchor", word)

	cfg.Retries = 0
	_, err = NewGame(cfg, list, strings.NewReader(""), io.Discard).solution(context.Background())
	require.ErrorIs(t, err, words.ErrNotFound)
}
