package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	ErrInvalidDirection = errors.New("direction out of range")
)

// validateDimensions checks that a grid can be constructed with rows×cols cells.
func validateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}
	return nil
}

// IsComplete reports whether no cell is Blank.
func (g *Grid) IsComplete() bool {
	return g.blankCount == 0
}

// IsLetters reports whether every cell is Blank or an uppercase ASCII letter.
func (g *Grid) IsLetters() bool {
	for _, ch := range g.cells {
		if ch == Blank {
			continue
		}
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
