package wordle

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidLength = errors.New("invalid guess length")
	ErrRoundOver     = errors.New("round is over")
)

// Round is one play-through against a fixed solution.
// A zero maxTries allows unlimited guesses.
type Round struct {
	solution  string
	length    int
	evaluator Evaluator
	maxTries  int
	tries     int
	won       bool
}

func NewRound(solution string, e Evaluator, maxTries int) *Round {
	return &Round{
		solution:  solution,
		length:    utf8.RuneCountInString(solution),
		evaluator: e,
		maxTries:  max(maxTries, 0),
	}
}

// Guess validates and evaluates one guess. A guess of the wrong length is
// rejected with ErrInvalidLength and does not count as a try.
func (r *Round) Guess(guess string) (Result, error) {
	if r.Over() {
		return nil, ErrRoundOver
	}
	guess = strings.TrimSpace(guess)
	if err := r.Validate(guess); err != nil {
		return nil, err
	}

	res := r.evaluator.Evaluate(guess, r.solution)
	r.tries++
	r.won = res.Solved()
	return res, nil
}

func (r *Round) Validate(guess string) error {
	if n := utf8.RuneCountInString(guess); n != r.length {
		return fmt.Errorf("%w: got %d letters, want %d", ErrInvalidLength, n, r.length)
	}
	return nil
}

func (r *Round) Solution() string { return r.solution }

// Len is the solution length in letters.
func (r *Round) Len() int { return r.length }

// Tries counts accepted guesses so far.
func (r *Round) Tries() int { return r.tries }

func (r *Round) MaxTries() int { return r.maxTries }

func (r *Round) Won() bool { return r.won }

func (r *Round) Over() bool {
	return r.won || (r.maxTries > 0 && r.tries >= r.maxTries)
}
