package seating

// directions lists the 8 neighbour offsets as {dx, dy}: N, NE, E, SE, S, SW, W, NW.
var directions = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// RuleOption configures a built-in Rule.
type RuleOption func(*countingRule)

// WithTolerance sets the occupied-neighbour count at which an occupied seat
// empties. Non-positive values are ignored.
func WithTolerance(n int) RuleOption {
	return func(r *countingRule) {
		if n > 0 {
			r.tolerance = n
		}
	}
}

// countingRule implements both puzzle rules: a seat fills when it sees no
// occupied seats and empties when it sees at least tolerance of them.
type countingRule struct {
	name      string
	tolerance int
	count     func(g *Grid, row, col int) int
}

// Adjacency returns the rule that counts the 8 touching cells.
// The cell must be interior; the Floor border makes bounds checks unnecessary.
func Adjacency(opts ...RuleOption) Rule {
	r := &countingRule{name: "adjacency", tolerance: DefaultAdjacencyTolerance, count: countAdjacent}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// LineOfSight returns the rule that counts the first seat visible in each
// of the 8 directions, looking past floor.
func LineOfSight(opts ...RuleOption) Rule {
	r := &countingRule{name: "line-of-sight", tolerance: DefaultSightTolerance, count: countVisible}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Next implements Rule.
func (r *countingRule) Next(g *Grid, row, col int) Cell {
	cur := g.cells[row][col]
	if cur == Floor {
		return Floor
	}
	seen := r.count(g, row, col)
	switch {
	case cur == Empty && seen == 0:
		return Occupied
	case cur == Occupied && seen >= r.tolerance:
		return Empty
	default:
		return cur
	}
}

// String names the rule for logs.
func (r *countingRule) String() string { return r.name }

func countAdjacent(g *Grid, row, col int) int {
	n := 0
	for _, d := range directions {
		if g.cells[row+d[1]][col+d[0]] == Occupied {
			n++
		}
	}

	return n
}

func countVisible(g *Grid, row, col int) int {
	n := 0
	for _, d := range directions {
		y, x := row+d[1], col+d[0]
		for g.InBounds(y, x) {
			c := g.cells[y][x]
			if c == Occupied {
				n++
			}
			if c != Floor {
				break
			}
			y, x = y+d[1], x+d[0]
		}
	}

	return n
}
