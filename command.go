package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/imkk000/go-wordle/internal/wordle"
	"github.com/imkk000/go-wordle/internal/words"
)

func playFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Aliases: []string{"s"},
			Name:    "source",
			Value:   sourceList,
			Usage:   "set word source (static, list, api)",
		},
		&cli.StringFlag{
			Aliases: []string{"w"},
			Name:    "word",
			Value:   "World",
			Usage:   "set the solution for the static source",
		},
		&cli.StringFlag{
			Aliases: []string{"f"},
			Name:    "words-file",
			Usage:   "set word list file, one word per line",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "reload the word list file when it changes",
		},
		&cli.StringFlag{
			Name:  "api-url",
			Value: words.DefaultAPIURL,
			Usage: "set random word api url",
		},
		&cli.IntFlag{
			Name:  "attempts",
			Value: words.DefaultAttempts,
			Usage: "set random word api attempts per search",
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: 200 * time.Millisecond,
			Usage: "set minimum delay between random word api requests",
		},
		&cli.IntFlag{
			Name:  "min-length",
			Usage: "set minimum solution length (0: unbounded)",
		},
		&cli.IntFlag{
			Name:  "max-length",
			Usage: "set maximum solution length (0: unbounded)",
		},
		&cli.IntFlag{
			Name:  "retries",
			Value: 3,
			Usage: "set how many times the length bounds are relaxed",
		},
		&cli.IntFlag{
			Aliases: []string{"t"},
			Name:    "max-tries",
			Usage:   "set guesses allowed per round (0: unlimited)",
		},
		&cli.StringFlag{
			Aliases: []string{"p"},
			Name:    "policy",
			Value:   wordle.Membership.String(),
			Usage:   "set repeated letter policy (membership, multiplicity)",
		},
		&cli.BoolFlag{
			Name:  "replay",
			Value: true,
			Usage: "ask to play again after each round",
		},
	}
}

func newPlayCmd() *cli.Command {
	return &cli.Command{
		Name:   "play",
		Usage:  "play interactive rounds",
		Action: playAction,
	}
}

func newCheckCmd() *cli.Command {
	return &cli.Command{
		Aliases:   []string{"eval"},
		Name:      "check",
		Usage:     "evaluate one guess against a solution",
		ArgsUsage: "<guess> <solution>",
		Action:    checkAction,
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                     "go-wordle",
		Usage:                    "guess the random word",
		Version:                  appVersion,
		EnableShellCompletion:    true,
		UseShortOptionHandling:   true,
		Suggest:                  true,
		ExitErrHandler:           func(_ context.Context, _ *cli.Command, _ error) {},
		InvalidFlagAccessHandler: func(context.Context, *cli.Command, string) {},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "set the log level",
			},
			&cli.StringSliceFlag{
				Name:  "env",
				Value: []string{"off"},
				Usage: "set env files",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		}, playFlags()...),
		Before:   before,
		Action:   playAction,
		Commands: []*cli.Command{newPlayCmd(), newCheckCmd()},
	}
}

func before(ctx context.Context, c *cli.Command) (context.Context, error) {
	setupColor(c.Bool("no-color"))
	log.Logger = newLogger(c.ErrWriter)

	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	zerolog.SetGlobalLevel(level)
	log.Debug().
		Str("log_level", level.String()).
		Msg("set log level")

	envFiles := c.StringSlice("env")
	if len(envFiles) > 0 {
		if err := parseEnvFiles(envFiles); err != nil {
			err = fmt.Errorf("parse env file: %w", err)
			return nil, cli.Exit(err, 1)
		}
	}
	return ctx, nil
}

func checkAction(_ context.Context, c *cli.Command) error {
	args := c.Args()
	if args.Len() != 2 {
		return cli.Exit("expected a guess and a solution", 1)
	}
	policy, err := wordle.ParsePolicy(envString(c, "policy", envPolicy))
	if err != nil {
		return cli.Exit(err, 1)
	}
	guess, solution := args.Get(0), args.Get(1)

	round := wordle.NewRound(solution, wordle.Evaluator{Policy: policy}, 0)
	res, err := round.Guess(guess)
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.Debug().
		Str("guess", guess).
		Str("policy", policy.String()).
		Bool("solved", res.Solved()).
		Msg("evaluate guess")

	fmt.Fprintln(c.Root().Writer, NewRenderer().Render(res))
	return nil
}

func playAction(ctx context.Context, c *cli.Command) error {
	cfg, err := newConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.Debug().
		Str("version", appVersion).
		Str("source", cfg.Source).
		Str("policy", cfg.Policy.String()).
		Str("bounds", cfg.Bounds.String()).
		Int("max_tries", cfg.MaxTries).
		Msg("start game")

	source, stop, err := openSource(ctx, cfg)
	if err != nil {
		return cli.Exit(fmt.Errorf("open word source: %w", err), 1)
	}
	defer stop()

	root := c.Root()
	score, err := NewGame(cfg, source, root.Reader, root.Writer).Run(ctx)
	log.Debug().
		Int("rounds", score.Rounds).
		Int("wins", score.Wins).
		Int("best", score.Best).
		Msg("end game")
	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func newConfig(c *cli.Command) (Config, error) {
	policy, err := wordle.ParsePolicy(envString(c, "policy", envPolicy))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Source:    envString(c, "source", envSource),
		Word:      c.String("word"),
		WordsFile: envString(c, "words-file", envWordsFile),
		Watch:     c.Bool("watch"),
		APIURL:    envString(c, "api-url", envAPIURL),
		Attempts:  c.Int("attempts"),
		Interval:  c.Duration("interval"),
		Bounds: words.Bounds{
			Min: c.Int("min-length"),
			Max: c.Int("max-length"),
		},
		Retries:  max(c.Int("retries"), 0),
		MaxTries: c.Int("max-tries"),
		Policy:   policy,
		Replay:   c.Bool("replay"),
	}
	if err := cfg.Bounds.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.MaxTries < 0 {
		return Config{}, fmt.Errorf("negative max tries %d", cfg.MaxTries)
	}
	if cfg.Watch && cfg.WordsFile == "" {
		log.Warn().Msg("watch needs a words file, ignoring")
		cfg.Watch = false
	}
	return cfg, nil
}

// envString prefers an explicit flag, then the environment (which may have
// been filled from --env files), then the flag default.
func envString(c *cli.Command, flag, key string) string {
	if c.IsSet(flag) {
		return c.String(flag)
	}
	if v := os.Getenv(key); v != "" {
		return v
	}
	return c.String(flag)
}

func parseEnvFiles(files []string) error {
	for i, file := range files {
		if file == "off" {
			return nil
		}
		dir := filepath.Dir(file)
		base := filepath.Base(file)
		if base == "." {
			files[i] = filepath.Join(dir, ".env")
		}
	}
	log.Info().
		Strs("env", files).
		Msg("parse env files")

	return godotenv.Load(files...)
}
