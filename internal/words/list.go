package words

import (
	"bufio"
	"context"
	"crypto/rand"
	_ "embed"
	"fmt"
	"io"
	"math/big"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed default_words.txt
var embeddedWords string

// List picks random words from an in-memory word list. It is safe for
// concurrent use so a watcher can Reload it while rounds are played.
type List struct {
	mu    sync.RWMutex
	words []string
	path  string
}

// NewList builds a List from the given words, dropping anything that is not
// a lowercase alphabetic word.
func NewList(words ...string) *List {
	l := &List{}
	l.set(clean(words))
	return l
}

// DefaultList returns the embedded word list.
func DefaultList() *List {
	words, _ := readWords(strings.NewReader(embeddedWords))
	return NewList(words...)
}

// LoadList reads one word per line from path. Blank lines and lines
// starting with '#' are skipped.
func LoadList(path string) (*List, error) {
	l := &List{}
	if err := l.Reload(path); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload replaces the words with the contents of path. On error the
// current words are kept.
func (l *List) Reload(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return fmt.Errorf("read word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("word list %s: %w", path, ErrNotFound)
	}

	l.mu.Lock()
	l.words = words
	l.path = path
	l.mu.Unlock()

	log.Debug().
		Str("path", path).
		Int("words", len(words)).
		Msg("load word list")
	return nil
}

func (l *List) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.words)
}

func (l *List) Contains(word string) bool {
	word = normalize(word)
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Contains(l.words, word)
}

func (l *List) Solution(ctx context.Context, b Bounds) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.mu.RLock()
	candidates := make([]string, 0, len(l.words))
	for _, w := range l.words {
		if b.Allows(w) {
			candidates = append(candidates, w)
		}
	}
	l.mu.RUnlock()

	if len(candidates) == 0 {
		return "", fmt.Errorf("word list %s: %w", b, ErrNotFound)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return "", fmt.Errorf("pick word: %w", err)
	}
	return candidates[n.Int64()], nil
}

func (l *List) set(words []string) {
	l.mu.Lock()
	l.words = words
	l.mu.Unlock()
}

func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return clean(out), nil
}

func clean(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = normalize(w)
		if isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}
