// Package haversack models the luggage rules from Advent of Code 2020,
// day 7, as a directed weighted graph of bag colours.
//
// What:
//
//   - ParseRule turns one rule line into a container name and its contents.
//   - Graph stores bags in an arena addressed by index, with a name→index
//     table; a bag is created the first time any rule mentions it.
//   - Finalize computes, depth-first, the deep contents of a bag: every bag
//     reachable through containment, with counts multiplied along each path
//     and summed across paths. Results are memoised per bag.
//   - ContainersOf and TotalInside answer the two puzzle questions from the
//     finalized tables.
//
// Finalize marks bags White (untouched), Gray (on the recursion stack) and
// Black (done). Reaching a Gray bag again means the rules contain a cycle,
// which is reported as ErrCycleDetected instead of recursing forever.
//
// Complexity:
//
//   - Parse:        O(L) for L input bytes.
//   - FinalizeAll:  O(V×D) time and memory, D = largest deep table.
//   - ContainersOf: O(V).
//   - TotalInside:  O(D).
//
// Errors:
//
//   - ErrMalformedRule   rule line does not match the grammar
//   - ErrDuplicateChild  child listed twice under DuplicateReject
//   - ErrBagNotFound     unknown bag name
//   - ErrNotFinalized    query before Finalize
//   - ErrFinalized       rule added after Finalize
//   - ErrCycleDetected   containment rules form a cycle
package haversack
