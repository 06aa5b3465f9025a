// Package render turns a generated puzzle into text, a colored answer key,
// or a printable HTML page.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rybkr/wordsearch/internal/board"
)

// Layout controls text output.
type Layout struct {
	Margin      int // spaces before each grid row
	WordWidth   int // column width of the word list
	WordColumns int // words per line of the word list
}

// DefaultLayout matches the classic printout.
func DefaultLayout() Layout {
	return Layout{Margin: 12, WordWidth: 20, WordColumns: 4}
}

// Grid writes g with each row indented by the layout margin.
func Grid(w io.Writer, g *board.Grid, l Layout) error {
	_, err := io.WriteString(w, g.Format(l.Margin))
	return err
}

// WordList writes words left-justified in WordWidth columns, WordColumns per
// line. Words longer than the column are written in full.
func WordList(w io.Writer, words []string, l Layout) error {
	cols := max(l.WordColumns, 1)

	var sb strings.Builder
	for i, word := range words {
		sb.WriteString(word)
		if pad := l.WordWidth - len(word); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		if (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}
	if len(words)%cols != 0 {
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Puzzle writes the grid, a blank line, and the word list.
func Puzzle(w io.Writer, g *board.Grid, words []string, l Layout) error {
	if err := Grid(w, g, l); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WordList(w, words, l)
}
