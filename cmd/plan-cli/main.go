// README: Terminal client for the planner; estimates offline, plans and asks through the configured LLM provider.
package main

import (
	"fmt"
	"io"
	"os"

	"travelplanner/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, cli.RenderError(err))
}
