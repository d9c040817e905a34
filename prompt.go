package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type Prompt struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan scanned
}

type scanned struct {
	text string
	err  error
}

func NewPrompt(r io.Reader, w io.Writer) *Prompt {
	return &Prompt{
		in:    bufio.NewScanner(r),
		out:   w,
		lines: make(chan scanned),
	}
}

// ReadLine prints prompt and blocks for one line of input or until ctx is
// done. It returns io.EOF once the input is exhausted.
func (p *Prompt) ReadLine(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (p *Prompt) scan() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- scanned{text: p.in.Text()}
	}
	if err := p.in.Err(); err != nil {
		p.lines <- scanned{err: err}
	}
}
