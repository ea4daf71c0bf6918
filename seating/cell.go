package seating

import "fmt"

// Rune returns the input character for c: '.', 'L' or '#'.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return 'L'
	case Occupied:
		return '#'
	default:
		return '.'
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "Floor"
	case Empty:
		return "Empty"
	case Occupied:
		return "Occupied"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// ParseCell maps an input character to its Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return Floor, nil
	case 'L':
		return Empty, nil
	case '#':
		return Occupied, nil
	}

	return Floor, fmt.Errorf("%w: %q", ErrInvalidCell, r)
}
