// Command aoc2020 runs the day 7 and day 11 puzzle solvers and prints one
// answer per line.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/aoc2020/internal/logging"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code. Logging
// is configured before flags are parsed so that flag errors are printed by
// the console writer too.
func execute(args []string, stdout, stderr io.Writer) int {
	logging.Setup(0, stderr, isTerminal(stderr))

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("aoc2020 failed")
		return 1
	}

	return 0
}
