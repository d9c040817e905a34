// Package words supplies round solutions.
//
// Sources:
//   - Static: one fixed word.
//   - List:   a word list loaded from a file or the embedded defaults.
//   - API:    a random-word HTTP API, retried within an attempt budget.
//   - Chain:  the first source that succeeds.
package words

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when no word satisfies the bounds.
var ErrNotFound = errors.New("no suitable word found")

type Source interface {
	Solution(ctx context.Context, b Bounds) (string, error)
}

// Bounds constrains solution length in letters. Zero means unbounded.
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) Allows(word string) bool {
	n := utf8.RuneCountInString(word)
	if b.Min > 0 && n < b.Min {
		return false
	}
	if b.Max > 0 && n > b.Max {
		return false
	}
	return true
}

// Exact reports the single allowed length, if the bounds pin one.
func (b Bounds) Exact() (int, bool) {
	return b.Min, b.Min > 0 && b.Min == b.Max
}

// Relax widens the bounds by one letter on each side.
func (b Bounds) Relax() Bounds {
	if b.Min > 1 {
		b.Min--
	}
	if b.Max > 0 {
		b.Max++
	}
	return b
}

func (b Bounds) Validate() error {
	if b.Min < 0 || b.Max < 0 {
		return fmt.Errorf("negative length bounds %s", b)
	}
	if b.Max > 0 && b.Min > b.Max {
		return fmt.Errorf("min length above max length %s", b)
	}
	return nil
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d]", b.Min, b.Max)
}

// Static always answers with the same word.
type Static string

func (s Static) Solution(_ context.Context, b Bounds) (string, error) {
	word := strings.TrimSpace(string(s))
	if word == "" || !b.Allows(word) {
		return "", fmt.Errorf("static word %q: %w", word, ErrNotFound)
	}
	return word, nil
}

// Chain asks each source in turn and returns the first word found.
type Chain []Source

func (c Chain) Solution(ctx context.Context, b Bounds) (string, error) {
	errs := make([]error, 0, len(c))
	for _, s := range c {
		word, err := s.Solution(ctx, b)
		if err == nil {
			return word, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.Debug().Err(err).Msgf("source %T failed", s)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", ErrNotFound
	}
	return "", errors.Join(errs...)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
