package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIURL   = "https://random-word-api.herokuapp.com/word"
	DefaultAttempts = 10
)

// API fetches random words from an HTTP endpoint answering with a JSON
// array of strings. Words outside the bounds are discarded and another one
// is requested until Attempts runs out.
type API struct {
	URL      string
	Attempts int
	Client   *http.Client
	Limiter  *rate.Limiter
}

func NewAPI(endpoint string, attempts int, interval time.Duration) *API {
	if endpoint == "" {
		endpoint = DefaultAPIURL
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &API{
		URL:      endpoint,
		Attempts: attempts,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Limiter:  rate.NewLimiter(limit, 1),
	}
}

func (a *API) Solution(ctx context.Context, b Bounds) (string, error) {
	for attempt := 1; attempt <= a.Attempts; attempt++ {
		if a.Limiter != nil {
			if err := a.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		word, err := a.fetch(ctx, b)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("fetch random word")
			continue
		}
		if !isAlpha(word) || !b.Allows(word) {
			log.Debug().
				Str("word", word).
				Str("bounds", b.String()).
				Int("attempt", attempt).
				Msg("discard random word")
			continue
		}
		return word, nil
	}
	return "", fmt.Errorf("random word api after %d attempts: %w", a.Attempts, ErrNotFound)
}

func (a *API) fetch(ctx context.Context, b Bounds) (string, error) {
	u, err := url.Parse(a.URL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	q := u.Query()
	if n, ok := b.Exact(); ok {
		q.Set("length", strconv.Itoa(n))
	} else {
		q.Set("number", "1")
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return "", fmt.Errorf("decode words: %w", err)
	}
	if len(words) == 0 {
		return "", errors.New("empty word list")
	}
	return normalize(words[0]), nil
}
