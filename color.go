package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const ResetColor = "\033[0m"

func rgb(r, g, b int) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

func sprintRGB(r, g, b int, text string) string {
	if color.NoColor {
		return text
	}
	return fmt.Sprintf("%s%s%s", rgb(r, g, b), text, ResetColor)
}

// setupColor turns colors off when asked to or when stdout is not a
// terminal.
func setupColor(disable bool) {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	color.NoColor = disable || !tty || os.Getenv("NO_COLOR") != ""
}
