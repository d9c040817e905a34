package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/imkk000/go-wordle/internal/wordle"
)

type Renderer struct {
	correct   *color.Color
	misplaced *color.Color
	absent    *color.Color
}

func NewRenderer() Renderer {
	return Renderer{
		correct:   color.New(color.FgGreen, color.Bold),
		misplaced: color.New(color.FgYellow),
		absent:    color.New(color.FgRed),
	}
}

// Render paints one letter per verdict, separated by spaces. Without
// colors the verdicts are told apart by brackets: [c] correct, (c)
// misplaced, bare letter absent.
func (r Renderer) Render(res wordle.Result) string {
	parts := make([]string, len(res))
	for i, l := range res {
		parts[i] = r.letter(l)
	}
	return strings.Join(parts, " ")
}

func (r Renderer) letter(l wordle.Letter) string {
	s := string(l.Char)
	if color.NoColor {
		switch l.Verdict {
		case wordle.Correct:
			return "[" + s + "]"
		case wordle.Misplaced:
			return "(" + s + ")"
		}
		return " " + s + " "
	}
	switch l.Verdict {
	case wordle.Correct:
		return r.correct.Sprint(s)
	case wordle.Misplaced:
		return r.misplaced.Sprint(s)
	}
	return r.absent.Sprint(s)
}

func (r Renderer) Banner(length int) string {
	return fmt.Sprintf("%s %s %s! Try to guess the random %d-letter word!",
		r.correct.Sprint("Welcome"),
		r.misplaced.Sprint("to"),
		r.absent.Sprint("Wordle"),
		length,
	)
}
