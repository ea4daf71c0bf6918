package haversack

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrMalformedRule indicates a rule line that does not match
	// "<name> bags contain <n> <name> bag(s), ... ." or "... no other bags.".
	ErrMalformedRule = errors.New("haversack: malformed rule")

	// ErrDuplicateChild indicates a bag listed twice inside the same container
	// while DuplicateReject is in effect.
	ErrDuplicateChild = errors.New("haversack: duplicate child")

	// ErrBagNotFound indicates an operation referenced an unknown bag.
	ErrBagNotFound = errors.New("haversack: bag not found")

	// ErrNotFinalized indicates a query ran before the bags it needs were finalized.
	ErrNotFinalized = errors.New("haversack: bag not finalized")

	// ErrFinalized indicates a rule was added after finalization started.
	ErrFinalized = errors.New("haversack: graph already finalized")

	// ErrCycleDetected indicates the containment rules are not acyclic.
	ErrCycleDetected = errors.New("haversack: cycle detected")
)

// Visitation states used by Finalize.
const (
	white = iota // not finalized
	gray         // on the finalize stack
	black        // deep table complete
)

// DuplicatePolicy decides what AddRule does when a container lists the same
// child twice.
type DuplicatePolicy int

const (
	// DuplicateWarn logs a warning and keeps the last count.
	DuplicateWarn DuplicatePolicy = iota
	// DuplicateReject fails with ErrDuplicateChild and leaves the graph unchanged.
	DuplicateReject
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateWarn:
		return "warn"
	case DuplicateReject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "warn" or "reject" to a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "warn":
		return DuplicateWarn, nil
	case "reject":
		return DuplicateReject, nil
	}

	return DuplicateWarn, fmt.Errorf("haversack: unknown duplicate policy %q", s)
}

// Option configures a Graph.
type Option func(*Graph)

// WithDuplicatePolicy sets the duplicate-child policy. Default is DuplicateWarn.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(g *Graph) { g.policy = p }
}

// WithLogger sets the logger for duplicate warnings and finalize summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) { g.log = l }
}

// Content is one "<count> <name> bag(s)" clause of a rule.
type Content struct {
	Count int
	Name  string
}

// Rule is one parsed rule line.
type Rule struct {
	Container string
	Contents  []Content
}
