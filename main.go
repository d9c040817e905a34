package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			log.Error().Interface("panic", err).Msg("application panic")
			os.Exit(1)
		}
	}()
	log.Logger = newLogger(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout)
		log.Info().Msg("game interrupted")
		return 130
	}
	log.Error().Err(err).Msg("run application")

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
