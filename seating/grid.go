package seating

import (
	"fmt"
	"strings"
)

// Grid is an immutable snapshot of the waiting area.
// Width and Height include the one-cell Floor border added by NewGrid.
type Grid struct {
	Width, Height int
	cells         [][]Cell
}

// Parse builds a Grid from newline-separated rows. Blank lines and
// carriage returns are ignored.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}

	return NewGrid(rows)
}

// NewGrid constructs a padded Grid from rows of ".L#" characters.
// Returns ErrEmptyGrid if rows is empty or the first row has no columns,
// ErrNonRectangular if any row length differs, and ErrInvalidCell for an
// unknown character.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	h := len(rows)

	cells := blank(w+2, h+2)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(runes), w)
		}
		for x, r := range runes {
			c, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			cells[y+1][x+1] = c
		}
	}

	return &Grid{Width: w + 2, Height: h + 2, cells: cells}, nil
}

// FromCells wraps an already padded matrix, deep-copying it.
// Every border cell must be Floor.
func FromCells(m [][]Cell) (*Grid, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(m), len(m[0])
	cells := blank(w, h)
	for y, row := range m {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		for x, c := range row {
			if c != Floor && (y == 0 || y == h-1 || x == 0 || x == w-1) {
				return nil, fmt.Errorf("%w: row %d col %d is %v", ErrBorderNotFloor, y+1, x+1, c)
			}
		}
		copy(cells[y], row)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// blank allocates an all-Floor matrix of the given size.
func blank(w, h int) [][]Cell {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w) // Floor is the zero value
	}

	return cells
}

// Rows reports the number of input rows, excluding the border.
func (g *Grid) Rows() int { return g.Height - 2 }

// Cols reports the number of input columns, excluding the border.
func (g *Grid) Cols() int { return g.Width - 2 }

// InBounds reports whether (row, col) lies within the padded grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the cell at (row, col) of the padded grid.
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// Cells returns a deep copy of the padded matrix.
func (g *Grid) Cells() [][]Cell {
	out := blank(g.Width, g.Height)
	for y := range g.cells {
		copy(out[y], g.cells[y])
	}

	return out
}

// Equal reports whether g and other hold the same cells, border included.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// Occupied counts occupied seats inside the border.
func (g *Grid) Occupied() int {
	n := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.cells[y][x] == Occupied {
				n++
			}
		}
	}

	return n
}

// String renders the padded grid, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.Rune())
		}
	}

	return b.String()
}
