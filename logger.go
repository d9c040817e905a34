package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func newLogger(w io.Writer) zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{
		Out:             w,
		NoColor:         color.NoColor,
		FormatTimestamp: func(any) string { return "" },
		FormatLevel: func(l any) string {
			if level, ok := l.(string); ok {
				switch level {
				case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
					return sprintRGB(255, 0, 0, strings.ToUpper(level))
				case zerolog.LevelWarnValue:
					return sprintRGB(255, 219, 153, strings.ToUpper(level))
				}
				return sprintRGB(102, 163, 255, strings.ToUpper(level))
			}
			return ""
		},
		FormatMessage: func(f any) string {
			if msg, ok := f.(string); ok {
				return sprintRGB(255, 192, 203, msg)
			}
			return ""
		},
	})
}
