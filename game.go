package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/imkk000/go-wordle/internal/wordle"
	"github.com/imkk000/go-wordle/internal/words"
)

type Game struct {
	cfg    Config
	source words.Source
	prompt *Prompt
	render Renderer
	out    io.Writer
}

func NewGame(cfg Config, source words.Source, in io.Reader, out io.Writer) *Game {
	return &Game{
		cfg:    cfg,
		source: source,
		prompt: NewPrompt(in, out),
		render: NewRenderer(),
		out:    out,
	}
}

// Run plays rounds until the player declines a replay or the input ends.
// The returned Score covers every finished round.
func (g *Game) Run(ctx context.Context) (wordle.Score, error) {
	var score wordle.Score
	for {
		solution, err := g.solution(ctx)
		if err != nil {
			return score, err
		}
		score, err = g.playRound(ctx, solution, score)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(g.out)
			return score, nil
		}
		if err != nil {
			return score, err
		}
		if !g.cfg.Replay {
			return score, nil
		}
		answer, err := g.prompt.ReadLine(ctx, "Play again? (y/n): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(g.out)
			return score, nil
		}
		if err != nil {
			return score, err
		}
		if !isYes(answer) {
			return score, nil
		}
	}
}

// solution asks the source for a word, relaxing the length bounds each time
// nothing suitable is found.
func (g *Game) solution(ctx context.Context) (string, error) {
	b := g.cfg.Bounds
	for retry := 0; ; retry++ {
		word, err := g.source.Solution(ctx, b)
		if err == nil {
			log.Debug().
				Str("solution", word).
				Str("bounds", b.String()).
				Msg("pick solution")
			return word, nil
		}
		if !errors.Is(err, words.ErrNotFound) || retry >= g.cfg.Retries {
			return "", fmt.Errorf("pick solution: %w", err)
		}
		relaxed := b.Relax()
		log.Warn().
			Err(err).
			Str("bounds", b.String()).
			Str("relaxed", relaxed.String()).
			Msg("retry with relaxed bounds")
		b = relaxed
	}
}

func (g *Game) playRound(ctx context.Context, solution string, score wordle.Score) (wordle.Score, error) {
	round := wordle.NewRound(solution, wordle.Evaluator{Policy: g.cfg.Policy}, g.cfg.MaxTries)

	fmt.Fprintln(g.out, g.render.Banner(round.Len()))
	if score.Best > 0 {
		fmt.Fprintf(g.out, "Best score: %s\n", tries(score.Best))
	}

	for !round.Over() {
		line, err := g.prompt.ReadLine(ctx, fmt.Sprintf("Enter your %d. guess: ", round.Tries()+1))
		if err != nil {
			return score, err
		}
		res, err := round.Guess(line)
		if errors.Is(err, wordle.ErrInvalidLength) {
			log.Debug().Err(err).Str("guess", line).Msg("reject guess")
			fmt.Fprintf(g.out, "Invalid guess. Please enter a %d-letter word.\n", round.Len())
			continue
		}
		if err != nil {
			return score, err
		}
		fmt.Fprintln(g.out, g.render.Render(res))
	}

	if !round.Won() {
		fmt.Fprintf(g.out, "Out of tries! The word was %s.\n", solution)
		return score.Record(0), nil
	}

	n := round.Tries()
	fmt.Fprintf(g.out, "Congratulations! You won in %s!\n", tries(n))
	if score.Wins > 0 && score.Improves(n) {
		fmt.Fprintf(g.out, "New best score: %s!\n", tries(n))
	}
	log.Debug().
		Int("tries", n).
		Int("rounds", score.Rounds+1).
		Msg("round won")
	return score.Record(n), nil
}
