package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/imkk000/go-wordle/internal/words"
)

// openSource builds the configured word source. The returned stop func
// releases the word list watcher, if one was started.
func openSource(ctx context.Context, cfg Config) (words.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case sourceStatic:
		return words.Static(cfg.Word), noop, nil
	case sourceList, sourceAPI:
	default:
		return nil, noop, fmt.Errorf("unknown word source %q", cfg.Source)
	}

	list := words.DefaultList()
	stop := noop
	if cfg.WordsFile != "" {
		l, err := words.LoadList(cfg.WordsFile)
		if err != nil {
			return nil, noop, err
		}
		list = l
		if cfg.Watch {
			w, err := words.NewWatcher(list, words.DefaultDebounce)
			if err != nil {
				return nil, noop, fmt.Errorf("watch word list: %w", err)
			}
			go w.Run(ctx)
			stop = func() {
				if err := w.Close(); err != nil {
					log.Error().Err(err).Msg("close watcher")
				}
			}
		}
	}
	log.Debug().
		Str("source", cfg.Source).
		Str("path", list.Path()).
		Int("words", list.Len()).
		Msg("open word list")

	if cfg.Source == sourceList {
		return list, stop, nil
	}
	api := words.NewAPI(cfg.APIURL, cfg.Attempts, cfg.Interval)
	log.Debug().
		Str("url", api.URL).
		Int("attempts", api.Attempts).
		Dur("interval", cfg.Interval).
		Msg("open random word api")
	return words.Chain{api, list}, stop, nil
}
