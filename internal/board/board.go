package board

import (
	"fmt"
	"strings"
)

// Blank marks a cell that no word has claimed yet.
// It is distinct from every letter a word can contain.
const Blank byte = 0

// Grid represents a rows×cols word search grid.
// Every cell is either Blank or a letter.
type Grid struct {
	rows  int
	cols  int
	cells []byte

	// blankCount tracks unclaimed cells for quick completion checks.
	// Once initialized, blankCount should only be touched inside Set and Place.
	blankCount int
}

// New creates a Grid with every cell Blank.
// Returns ErrInvalidDimension if rows or cols is not positive.
func New(rows, cols int) (*Grid, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{
		rows:       rows,
		cols:       cols,
		cells:      make([]byte, rows*cols),
		blankCount: rows * cols,
	}, nil
}

// NewFromRows creates a Grid from equal-length row strings.
// Use '.' for Blank cells.
func NewFromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimension)
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, r, len(line), g.cols)
		}
		for c := range len(line) {
			if line[c] == '.' {
				continue
			}
			g.Set(r, c, line[c])
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	clone.cells = make([]byte, len(g.cells))
	copy(clone.cells, g.cells)
	return &clone
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the character at (row, col).
// The caller must stay in bounds.
func (g *Grid) Get(row, col int) byte {
	return g.cells[row*g.cols+col]
}

// Set stores ch at (row, col).
// The caller must stay in bounds.
func (g *Grid) Set(row, col int, ch byte) {
	pos := row*g.cols + col
	switch {
	case g.cells[pos] == Blank && ch != Blank:
		g.blankCount--
	case g.cells[pos] != Blank && ch == Blank:
		g.blankCount++
	}
	g.cells[pos] = ch
}

// BlankCount returns the number of Blank cells.
func (g *Grid) BlankCount() int {
	return g.blankCount
}

// Row returns row r as a string, Blank cells shown as '.'.
func (g *Grid) Row(r int) string {
	var sb strings.Builder
	sb.Grow(g.cols)
	for c := range g.cols {
		sb.WriteByte(display(g.Get(r, c)))
	}
	return sb.String()
}

// Lines returns every row as produced by Row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for r := range g.rows {
		lines[r] = g.Row(r)
	}
	return lines
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Format returns the grid with each row indented by margin spaces
// and cells separated by a single space.
func (g *Grid) Format(margin int) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", max(margin, 0))

	for r := range g.rows {
		sb.WriteString(pad)
		for c := range g.cols {
			sb.WriteByte(display(g.Get(r, c)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func display(ch byte) byte {
	if ch == Blank {
		return '.'
	}
	return ch
}
