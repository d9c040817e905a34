package main

import (
	"time"

	"github.com/imkk000/go-wordle/internal/wordle"
	"github.com/imkk000/go-wordle/internal/words"
)

var appVersion = "0.2.0"

const (
	sourceStatic = "static"
	sourceList   = "list"
	sourceAPI    = "api"
)

const (
	envSource    = "WORDLE_SOURCE"
	envWordsFile = "WORDLE_WORDS_FILE"
	envAPIURL    = "WORDLE_API_URL"
	envPolicy    = "WORDLE_POLICY"
)

type Config struct {
	Source    string
	Word      string
	WordsFile string
	Watch     bool
	APIURL    string
	Attempts  int
	Interval  time.Duration
	Bounds    words.Bounds
	Retries   int
	MaxTries  int
	Policy    wordle.Policy
	Replay    bool
}
