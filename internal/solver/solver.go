package solver

import (
	"errors"
	"fmt"

	"github.com/rybkr/wordsearch/internal/board"
)

var (
	ErrNotFound  = errors.New("word not found in grid")
	ErrAmbiguous = errors.New("word found in more than one place")
)

// Solver locates words in a word search grid.
type Solver struct {
	Grid *board.Grid
}

// New creates a solver for the given grid.
// The grid is read, never modified.
func New(g *board.Grid) *Solver {
	return &Solver{Grid: g}
}

// Find returns every distinct occurrence of word in the grid.
// An occurrence and its reverse over the same cells, which a palindrome
// always produces, count once; the first one found in scan order is kept.
func (s *Solver) Find(word string) []board.Placement {
	if word == "" {
		return nil
	}

	var found []board.Placement
	seen := make(map[[2]board.Cell]bool)

	for row := range s.Grid.Rows() {
		for col := range s.Grid.Cols() {
			if s.Grid.Get(row, col) != word[0] {
				continue
			}
			for _, d := range board.Directions() {
				got, ok := s.Grid.Read(row, col, d, len(word))
				if !ok || got != word {
					continue
				}
				p := board.Placement{Word: word, Row: row, Col: col, Direction: d}
				key := occurrenceKey(p)
				if seen[key] {
					continue
				}
				seen[key] = true
				found = append(found, p)
			}
		}
	}

	return found
}

// Locate returns the single placement of word.
// Returns ErrNotFound or ErrAmbiguous when there is not exactly one.
func (s *Solver) Locate(word string) (board.Placement, error) {
	found := s.Find(word)
	switch len(found) {
	case 0:
		return board.Placement{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	case 1:
		return found[0], nil
	default:
		return found[0], fmt.Errorf("%w: %q found %d times", ErrAmbiguous, word, len(found))
	}
}

// Solve locates each word, returning the first occurrence of every word
// in input order. Ambiguous words still resolve to their first occurrence;
// a missing word is an error.
func (s *Solver) Solve(words []string) ([]board.Placement, error) {
	placements := make([]board.Placement, 0, len(words))
	for _, word := range words {
		p, err := s.Locate(word)
		if err != nil && !errors.Is(err, ErrAmbiguous) {
			return nil, err
		}
		placements = append(placements, p)
	}
	return placements, nil
}

// occurrenceKey identifies the cells a placement covers independent of the
// reading direction. Start and end cells determine a straight line.
func occurrenceKey(p board.Placement) [2]board.Cell {
	a, b := board.Cell{Row: p.Row, Col: p.Col}, p.End()
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return [2]board.Cell{a, b}
}
