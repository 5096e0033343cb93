package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether output should skip color and terminal
// detection.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("TAILTOKENS_NON_INTERACTIVE"); ok {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
