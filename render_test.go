package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/imkk000/go-wordle/internal/wordle"
)

func TestRenderPlain(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "[a] (b)  c ", r.Render(wordle.Result{
		{Char: 'a', Verdict: wordle.Correct},
		{Char: 'b', Verdict: wordle.Misplaced},
		{Char: 'c', Verdict: wordle.Absent},
	}))
	assert.Equal(t, "Welcome to Wordle! Try to guess the random 6-letter word!", r.Banner(6))
}

func TestRenderColored(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	r := NewRenderer()
	res := wordle.Evaluate("hello", "world")
	out := r.Render(res)

	assert.Contains(t, out, "\x1b[31mh")
	assert.Contains(t, out, "\x1b[33ml")
	assert.Contains(t, out, "\x1b[32;1ml")
	assert.NotContains(t, out, "[l]")
}
