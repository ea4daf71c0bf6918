package haversack

import (
	"fmt"
	"sort"
	"strings"
)

// Finalize computes the deep contents of name and of every bag below it.
// Already finalized bags are not revisited. Returns ErrBagNotFound for an
// unknown name and ErrCycleDetected, naming the cycle, if the rules loop.
// Once called, the graph accepts no more rules.
func (g *Graph) Finalize(name string) error {
	_, i, err := g.find(name)
	if err != nil {
		return err
	}
	g.sealed = true
	path := make([]int, 0, len(g.bags))

	return g.finalize(i, &path)
}

// FinalizeAll finalizes every bag in arena order.
func (g *Graph) FinalizeAll() error {
	g.sealed = true
	path := make([]int, 0, len(g.bags))
	for i := range g.bags {
		if err := g.finalize(i, &path); err != nil {
			return err
		}
	}
	g.log.Debug().Int("bags", len(g.bags)).Msg("bags finalized")

	return nil
}

// finalize is the depth-first step. path holds the Gray bags, outermost first.
func (g *Graph) finalize(i int, path *[]int) error {
	b := g.bags[i]
	// 1) Done already, or a back-edge to a bag still on the stack
	switch b.state {
	case black:
		return nil
	case gray:
		return fmt.Errorf("%w: %s", ErrCycleDetected, g.cycle(*path, i))
	}

	// 2) Mark in progress and push
	b.state = gray
	*path = append(*path, i)

	// 3) Merge each child's table, scaled by its direct count.
	//    Children are visited in index order so cycle reports are stable.
	deep := make(map[int]int)
	for _, c := range sortedKeys(b.children) {
		if err := g.finalize(c, path); err != nil {
			b.state = white
			*path = (*path)[:len(*path)-1]
			return err
		}
		n := b.children[c]
		deep[c] += n
		for d, m := range g.bags[c].deep {
			deep[d] += n * m
		}
	}

	// 4) Pop and mark done
	*path = (*path)[:len(*path)-1]
	b.deep = deep
	b.state = black

	return nil
}

// cycle renders the loop closed by revisiting i, e.g. "a -> b -> a".
func (g *Graph) cycle(path []int, i int) string {
	start := 0
	for k, p := range path {
		if p == i {
			start = k
			break
		}
	}
	names := make([]string, 0, len(path)-start+1)
	for _, p := range path[start:] {
		names = append(names, g.bags[p].name)
	}
	names = append(names, g.bags[i].name)

	return strings.Join(names, " -> ")
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
