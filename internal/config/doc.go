// Package config loads aoc2020 settings with koanf.
//
// Layers, later ones winning:
//
//  1. embedded/defaults.toml
//  2. the file passed to Load, or aoc2020.toml in the working directory
//  3. AOC2020_SECTION_KEY environment variables (AOC2020_SEATING_MAX_ITERATIONS)
//  4. overrides from command-line flags
package config
