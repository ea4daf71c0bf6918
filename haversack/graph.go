package haversack

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// bag is one arena entry. children and deep are keyed by arena index.
type bag struct {
	name     string
	children map[int]int
	deep     map[int]int
	state    int
}

// Graph is the arena of bags built from rule lines.
// It is not safe for concurrent mutation.
type Graph struct {
	bags   []*bag
	index  map[string]int
	policy DuplicatePolicy
	log    zerolog.Logger
	sealed bool // set by the first Finalize; no rules may be added after
}

// NewGraph creates an empty Graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		index:  make(map[string]int),
		policy: DuplicateWarn,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Parse builds a Graph from newline-separated rules, skipping blank lines.
// Errors are wrapped with the 1-based line number.
func Parse(text string, opts ...Option) (*Graph, error) {
	g := NewGraph(opts...)
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := g.AddRule(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return g, nil
}

// AddRule parses line and records its contents under the container,
// creating any bag not seen before.
func (g *Graph) AddRule(line string) error {
	r, err := ParseRule(line)
	if err != nil {
		return err
	}

	return g.Add(r)
}

// Add records an already parsed rule.
// Under DuplicateReject the graph is left unchanged when any child repeats.
func (g *Graph) Add(r Rule) error {
	if g.sealed {
		return ErrFinalized
	}
	if g.policy == DuplicateReject {
		if err := g.checkDuplicates(r); err != nil {
			return err
		}
	}

	parent := g.bags[g.lookup(r.Container)]
	for _, c := range r.Contents {
		child := g.lookup(c.Name)
		if old, ok := parent.children[child]; ok {
			g.log.Warn().
				Str("container", r.Container).
				Str("child", c.Name).
				Int("old", old).
				Int("new", c.Count).
				Msg("bag is already a child, overwriting")
		}
		parent.children[child] = c.Count
	}

	return nil
}

// checkDuplicates reports a child repeated within r or already recorded
// under the container.
func (g *Graph) checkDuplicates(r Rule) error {
	seen := make(map[string]struct{}, len(r.Contents))
	var existing map[int]int
	if i, ok := g.index[r.Container]; ok {
		existing = g.bags[i].children
	}
	for _, c := range r.Contents {
		_, dup := seen[c.Name]
		if i, ok := g.index[c.Name]; ok && !dup {
			_, dup = existing[i]
		}
		if dup {
			return fmt.Errorf("%w: %q in %q", ErrDuplicateChild, c.Name, r.Container)
		}
		seen[c.Name] = struct{}{}
	}

	return nil
}

// lookup returns the arena index of name, creating the bag if needed.
func (g *Graph) lookup(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	g.bags = append(g.bags, &bag{name: name, children: make(map[int]int)})
	g.index[name] = len(g.bags) - 1

	return len(g.bags) - 1
}

// find returns the bag called name or ErrBagNotFound.
func (g *Graph) find(name string) (*bag, int, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, -1, fmt.Errorf("%w: %q", ErrBagNotFound, name)
	}

	return g.bags[i], i, nil
}

// Len reports the number of distinct bags.
func (g *Graph) Len() int { return len(g.bags) }

// Has reports whether any rule mentioned name.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Names returns all bag names in sorted order.
func (g *Graph) Names() []string {
	out := make([]string, 0, len(g.bags))
	for _, b := range g.bags {
		out = append(out, b.name)
	}
	sort.Strings(out)

	return out
}

// Children returns a copy of the direct contents of name.
func (g *Graph) Children(name string) (map[string]int, error) {
	b, _, err := g.find(name)
	if err != nil {
		return nil, err
	}

	return g.named(b.children), nil
}

// Deep returns a copy of the finalized deep contents of name.
func (g *Graph) Deep(name string) (map[string]int, error) {
	b, _, err := g.find(name)
	if err != nil {
		return nil, err
	}
	if b.state != black {
		return nil, fmt.Errorf("%w: %q", ErrNotFinalized, name)
	}

	return g.named(b.deep), nil
}

// IsFinal reports whether name has been finalized.
func (g *Graph) IsFinal(name string) (bool, error) {
	b, _, err := g.find(name)
	if err != nil {
		return false, err
	}

	return b.state == black, nil
}

func (g *Graph) named(m map[int]int) map[string]int {
	out := make(map[string]int, len(m))
	for i, n := range m {
		out[g.bags[i].name] = n
	}

	return out
}
