package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/aoc2020/haversack"
	"github.com/katalvlaran/aoc2020/internal/logging"
	"github.com/katalvlaran/aoc2020/internal/puzzle"
)

func newHaversackCmd(a *app) *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "haversack",
		Short: "Day 7: count bags that hold, and bags held by, the target bag",
		Long: `Parses the luggage rules and finalizes every bag, then prints how many
colours can eventually contain the target bag (part one) and how many bags
one target bag must contain (part two).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if part != "one" && part != "two" && part != "both" {
				return fmt.Errorf("unknown part %q (want one, two or both)", part)
			}
			text, err := puzzle.Read(cfg.InputPath(cfg.Haversack.Input))
			if err != nil {
				return err
			}

			log := logging.Component("haversack")
			g, err := haversack.Parse(text,
				haversack.WithDuplicatePolicy(cfg.DuplicatePolicy()),
				haversack.WithLogger(log),
			)
			if err != nil {
				return err
			}
			if err = g.FinalizeAll(); err != nil {
				return err
			}
			log.Info().Int("bags", g.Len()).Str("target", cfg.Haversack.Target).Msg("rules loaded")

			if part != "two" {
				n, err := g.ContainersOf(cfg.Haversack.Target)
				if err != nil {
					return err
				}
				printAnswer(cmd.OutOrStdout(), "One", n)
			}
			if part != "one" {
				n, err := g.TotalInside(cfg.Haversack.Target)
				if err != nil {
					return err
				}
				printAnswer(cmd.OutOrStdout(), "Two", n)
			}

			return nil
		},
	}
	cmd.Flags().String("input", "", "input file (default from config haversack.input)")
	cmd.Flags().String("target", "", "bag colour to query (default from config haversack.target)")
	cmd.Flags().Bool("strict", false, "reject rules that list the same bag twice")
	cmd.Flags().StringVar(&part, "part", "both", "which answer to print: one, two or both")
	a.bind(cmd, "input", "haversack.input", nil)
	a.bind(cmd, "target", "haversack.target", nil)
	a.bind(cmd, "strict", "haversack.duplicate_policy", func(f *pflag.Flag) interface{} {
		if f.Value.String() == "true" {
			return haversack.DuplicateReject.String()
		}
		return haversack.DuplicateWarn.String()
	})

	return cmd
}
