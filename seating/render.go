package seating

import (
	"bufio"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette holds the 256-colour foreground of each cell kind.
var palette = map[Cell]lipgloss.Color{
	Floor:    "240",
	Empty:    "42",
	Occupied: "203",
}

// Renderer draws grids for step-by-step traces.
type Renderer struct {
	color bool
}

// NewRenderer returns a Renderer. When color is false the output is exactly
// Grid.String() followed by a newline. When color is true every cell is
// wrapped in ANSI 256-colour sequences, whatever w turns out to be: the
// caller decides whether its writer is a terminal.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// styles binds the palette to a lipgloss renderer for w.
func (r *Renderer) styles(w io.Writer) map[Cell]lipgloss.Style {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(termenv.ANSI256)
	out := make(map[Cell]lipgloss.Style, len(palette))
	for c, fg := range palette {
		out[c] = lr.NewStyle().Foreground(fg)
	}
	out[Occupied] = out[Occupied].Bold(true)

	return out
}

// Render writes g to w, one padded row per line.
func (r *Renderer) Render(w io.Writer, g *Grid) error {
	var styles map[Cell]lipgloss.Style
	if r.color {
		styles = r.styles(w)
	}
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		for _, c := range row {
			if styles != nil {
				bw.WriteString(styles[c].Render(string(c.Rune())))
				continue
			}
			bw.WriteRune(c.Rune())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
