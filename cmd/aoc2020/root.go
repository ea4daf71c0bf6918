package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/aoc2020/internal/config"
	"github.com/katalvlaran/aoc2020/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	verbosity  int
	configPath string
	noColor    bool
	cfg        *config.Config

	// bindings maps command name, then flag name, to the config key the
	// flag overrides.
	bindings map[string]map[string]binding
}

type binding struct {
	key   string
	value func(f *pflag.Flag) interface{}
}

func newRootCmd() *cobra.Command {
	a := &app{bindings: make(map[string]map[string]binding)}

	rootCmd := &cobra.Command{
		Use:   "aoc2020",
		Short: "Advent of Code 2020 seating and haversack solvers",
		Long: `aoc2020 solves two Advent of Code 2020 puzzles:

  seating    day 11, the seating system cellular automaton
  haversack  day 7, the bag containment graph

Settings come from built-in defaults, aoc2020.toml, AOC2020_* environment
variables and flags, in that order.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(a.verbosity, cmd.ErrOrStderr(), a.color(cmd.ErrOrStderr()))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(a.configPath, a.overrides(cmd))
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured log and trace output")

	rootCmd.AddCommand(newSeatingCmd(a))
	rootCmd.AddCommand(newHaversackCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bind records that flag name of cmd overrides config key when set
// explicitly. value converts the flag; nil uses its string form.
func (a *app) bind(cmd *cobra.Command, name, key string, value func(f *pflag.Flag) interface{}) {
	if a.bindings[cmd.Name()] == nil {
		a.bindings[cmd.Name()] = make(map[string]binding)
	}
	if value == nil {
		value = func(f *pflag.Flag) interface{} { return f.Value.String() }
	}
	a.bindings[cmd.Name()][name] = binding{key: key, value: value}
}

// overrides collects the explicitly set flags of cmd as dotted config keys.
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	binds := a.bindings[cmd.Name()]
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if b, ok := binds[f.Name]; ok {
			out[b.key] = b.value(f)
		}
	})

	return out
}

// color reports whether w is a terminal and colour was not disabled.
func (a *app) color(w io.Writer) bool {
	return !a.noColor && isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func printAnswer(w io.Writer, part string, v int) {
	fmt.Fprintf(w, "Part %s: %d\n", part, v)
}
