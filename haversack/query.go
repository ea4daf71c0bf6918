package haversack

import "fmt"

// ContainersOf counts the other bags that eventually contain at least one
// target bag. Every bag must be finalized first.
func (g *Graph) ContainersOf(target string) (int, error) {
	_, t, err := g.find(target)
	if err != nil {
		return 0, err
	}
	n := 0
	for i, b := range g.bags {
		if b.state != black {
			return 0, fmt.Errorf("%w: %q", ErrNotFinalized, b.name)
		}
		if i == t {
			continue
		}
		if _, ok := b.deep[t]; ok {
			n++
		}
	}

	return n, nil
}

// TotalInside sums the deep contents of target: how many bags one target
// bag holds, at any depth.
func (g *Graph) TotalInside(target string) (int, error) {
	b, _, err := g.find(target)
	if err != nil {
		return 0, err
	}
	if b.state != black {
		return 0, fmt.Errorf("%w: %q", ErrNotFinalized, target)
	}
	sum := 0
	for _, n := range b.deep {
		sum += n
	}

	return sum, nil
}

// DeepCount reports how many inner bags one outer bag holds at any depth.
func (g *Graph) DeepCount(outer, inner string) (int, error) {
	o, _, err := g.find(outer)
	if err != nil {
		return 0, err
	}
	_, in, err := g.find(inner)
	if err != nil {
		return 0, err
	}
	if o.state != black {
		return 0, fmt.Errorf("%w: %q", ErrNotFinalized, outer)
	}

	return o.deep[in], nil
}

// Contains reports whether outer eventually holds an inner bag.
func (g *Graph) Contains(outer, inner string) (bool, error) {
	n, err := g.DeepCount(outer, inner)

	return n > 0, err
}

// CountNested computes the same total as TotalInside by plain recursion over
// the direct rules, without memoisation or finalization.
func (g *Graph) CountNested(name string) (int, error) {
	_, i, err := g.find(name)
	if err != nil {
		return 0, err
	}
	onStack := make(map[int]bool)
	path := make([]int, 0)

	var count func(i int) (int, error)
	count = func(i int) (int, error) {
		if onStack[i] {
			return 0, fmt.Errorf("%w: %s", ErrCycleDetected, g.cycle(path, i))
		}
		onStack[i] = true
		path = append(path, i)
		total := 0
		for _, c := range sortedKeys(g.bags[i].children) {
			inner, err := count(c)
			if err != nil {
				return 0, err
			}
			total += (inner + 1) * g.bags[i].children[c]
		}
		path = path[:len(path)-1]
		onStack[i] = false

		return total, nil
	}

	return count(i)
}
