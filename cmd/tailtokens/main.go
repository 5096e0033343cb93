// Command tailtokens validates and exports design tokens.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/tailtokens/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
