package render

import (
	"io"
	"strings"

	"github.com/rybkr/wordsearch/internal/board"
	"github.com/vyevs/ansi"
)

var colors = [...]string{"red", "light gray", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse"}

// AnswerKey writes the grid with every placed word colored, followed by the
// words in their matching colors. Cells shared by crossing words take the
// color of the word placed last. Uncovered filler letters are shown as '.'.
func AnswerKey(w io.Writer, g *board.Grid, placements []board.Placement, l Layout) error {
	var b strings.Builder
	b.Grow(g.Rows() * g.Cols() * 8)

	cellToColor := make(map[board.Cell]string, len(placements))
	for i, p := range placements {
		color := colors[i%len(colors)]
		for _, cell := range p.Cells() {
			cellToColor[cell] = color
		}
	}

	pad := strings.Repeat(" ", max(l.Margin, 0))
	for r := range g.Rows() {
		b.WriteString(pad)
		for c := range g.Cols() {
			color, ok := cellToColor[board.Cell{Row: r, Col: c}]
			if !ok {
				b.WriteString(ansi.Clear)
				b.WriteByte('.')
			} else {
				b.WriteString(ansi.FGColorName(color))
				b.WriteByte(g.Get(r, c))
			}
			b.WriteByte(' ')
		}
		b.WriteString(ansi.Clear)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	for i, p := range placements {
		b.WriteString(ansi.FGColorName(colors[i%len(colors)]))
		b.WriteString(p.Word)
		b.WriteString(ansi.Clear)
		b.WriteString(" (")
		b.WriteString(p.Direction.String())
		b.WriteString(")\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
