// Package aoc2020 holds solutions to two Advent of Code 2020 puzzles whose
// answers need real state-machine and graph work rather than a single scan.
//
// Under the hood, everything is organized under these packages:
//
//	seating/    — day 11: cellular automaton over a padded seat grid,
//	              adjacency and line-of-sight rules, fixed-point search
//	haversack/  — day 7: bag containment rules as a weighted DAG,
//	              memoised deep contents with cycle detection
//	internal/   — config (koanf), logging (zerolog), input loading
//	cmd/aoc2020 — cobra CLI printing one answer per line
//
// Quick example:
//
//	$ aoc2020 seating --input day-11/example
//	Part One: 37
//	Part Two: 26
//	$ aoc2020 haversack --input day-7/example --part one
//	Part One: 4
package aoc2020
