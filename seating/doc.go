// Package seating simulates the ferry waiting area from Advent of Code 2020,
// day 11, as a cellular automaton over a padded 2D grid of seats.
//
// What:
//
//   - Grid wraps a rectangular matrix of Floor, Empty and Occupied cells,
//     surrounded by a one-cell Floor border so neighbour scans never need
//     index clamping.
//   - Two transition rules decide the next state of every seat:
//     – Adjacency counts occupied seats among the 8 touching cells;
//     an occupied seat empties at 4 or more.
//     – LineOfSight looks past floor in each of the 8 directions and counts
//     the first seat it sees; an occupied seat empties at 5 or more.
//   - Step applies a rule to every interior cell at once and returns a fresh
//     snapshot; the input grid is never touched.
//   - Stabilize repeats Step until a fixed point and reports the number of
//     occupied seats.
//
// Complexity:
//
//   - Step with Adjacency:   O(W×H), Memory: O(W×H).
//   - Step with LineOfSight: O(W×H×max(W,H)), Memory: O(W×H).
//   - Stabilize:             O(k × Step), k ≤ MaxIterations.
//
// Options:
//
//   - WithMaxIterations: bound on steps before ErrNoConvergence (default 250).
//   - WithOnStep:        hook invoked with every new snapshot.
//   - WithContext:       cancellation checked once per step.
//   - WithLogger:        zerolog logger for step tracing.
//   - WithTolerance:     occupied-neighbour count at which a seat empties.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell:    a character outside ".L#".
//   - ErrBorderNotFloor: FromCells got a matrix with seats on its border.
//   - ErrNoConvergence:  no fixed point within MaxIterations.
package seating
