package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2020/internal/logging"
	"github.com/katalvlaran/aoc2020/internal/puzzle"
	"github.com/katalvlaran/aoc2020/seating"
)

func newSeatingCmd(a *app) *cobra.Command {
	var (
		ruleName string
		trace    bool
	)
	cmd := &cobra.Command{
		Use:   "seating",
		Short: "Day 11: count occupied seats once the area stabilizes",
		Long: `Loads the waiting area, then steps it under the adjacency rule (part one)
and the line-of-sight rule (part two) until nothing changes, printing the
number of occupied seats for each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			text, err := puzzle.Read(cfg.InputPath(cfg.Seating.Input))
			if err != nil {
				return err
			}
			g, err := seating.Parse(text)
			if err != nil {
				return err
			}

			parts, err := seatingParts(ruleName, cfg.Seating.AdjacencyTolerance, cfg.Seating.SightTolerance)
			if err != nil {
				return err
			}
			log := logging.Component("seating")
			log.Info().Int("rows", g.Rows()).Int("cols", g.Cols()).Msg("waiting area loaded")

			for _, p := range parts {
				opts := []seating.Option{
					seating.WithContext(cmd.Context()),
					seating.WithMaxIterations(cfg.Seating.MaxIterations),
					seating.WithLogger(log),
				}
				if trace {
					errOut := cmd.ErrOrStderr()
					r := seating.NewRenderer(a.color(errOut))
					opts = append(opts, seating.WithOnStep(func(step int, g *seating.Grid) error {
						fmt.Fprintf(errOut, "-- %v step %d --\n", p.rule, step)
						return r.Render(errOut, g)
					}))
				}
				res, err := seating.Stabilize(g, p.rule, opts...)
				if err != nil {
					return fmt.Errorf("part %s: %w", p.name, err)
				}
				printAnswer(cmd.OutOrStdout(), p.name, res.Occupied)
			}

			return nil
		},
	}
	cmd.Flags().String("input", "", "input file (default from config seating.input)")
	cmd.Flags().Int("max-iterations", 0, "steps allowed before giving up (default from config)")
	cmd.Flags().StringVar(&ruleName, "rule", "both", "rule to run: adjacency, sight or both")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every snapshot to stderr")
	a.bind(cmd, "input", "seating.input", nil)
	a.bind(cmd, "max-iterations", "seating.max_iterations", nil)

	return cmd
}

type seatingPart struct {
	name string
	rule seating.Rule
}

// seatingParts selects the rules named by the --rule flag.
func seatingParts(name string, adjacency, sight int) ([]seatingPart, error) {
	one := seatingPart{"One", seating.Adjacency(seating.WithTolerance(adjacency))}
	two := seatingPart{"Two", seating.LineOfSight(seating.WithTolerance(sight))}
	switch name {
	case "adjacency":
		return []seatingPart{one}, nil
	case "sight":
		return []seatingPart{two}, nil
	case "both":
		return []seatingPart{one, two}, nil
	}

	return nil, fmt.Errorf("unknown rule %q (want adjacency, sight or both)", name)
}
