package board

// Placement records where a word was written: its first letter sits at
// (Row, Col) and the rest follow Direction.
type Placement struct {
	Word      string    `json:"word"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
}

// Cell identifies a grid cell.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cells returns the cells covered by p in word order.
// The cells may fall outside a grid; Fits is what checks bounds.
func (p Placement) Cells() []Cell {
	dr, dc := p.Direction.Delta()
	cells := make([]Cell, len(p.Word))
	row, col := p.Row, p.Col
	for i := range cells {
		cells[i] = Cell{Row: row, Col: col}
		row += dr
		col += dc
	}
	return cells
}

// End returns the cell holding the last letter of p.
func (p Placement) End() Cell {
	dr, dc := p.Direction.Delta()
	n := len(p.Word) - 1
	return Cell{Row: p.Row + n*dr, Col: p.Col + n*dc}
}

// Fits reports whether word can be written starting at (row, col) along d.
// Every visited cell must be inside the grid and either Blank or already
// holding the same letter, which is what lets words cross.
// Fits never mutates the grid.
func (g *Grid) Fits(word string, row, col int, d Direction) bool {
	dr, dc := d.Delta()
	for i := range len(word) {
		if !g.InBounds(row, col) {
			return false
		}
		if ch := g.Get(row, col); ch != Blank && ch != word[i] {
			return false
		}
		row += dr
		col += dc
	}
	return true
}

// Place writes word starting at (row, col) along d without any checks.
// Fits must already have returned true for this exact placement; calling
// Place otherwise silently corrupts the grid.
func (g *Grid) Place(word string, row, col int, d Direction) {
	dr, dc := d.Delta()
	for i := range len(word) {
		g.Set(row, col, word[i])
		row += dr
		col += dc
	}
}

// Read returns the n letters starting at (row, col) along d, and false if
// any of them would leave the grid.
func (g *Grid) Read(row, col int, d Direction, n int) (string, bool) {
	dr, dc := d.Delta()
	buf := make([]byte, n)
	for i := range n {
		if !g.InBounds(row, col) {
			return "", false
		}
		buf[i] = g.Get(row, col)
		row += dr
		col += dc
	}
	return string(buf), true
}
