package board

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions a word can follow.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// DirectionCount is the number of directions in the table.
const DirectionCount = 8

// deltas holds the (row, col) step for each Direction, indexed by Direction.
var deltas = [DirectionCount][2]int{
	Up:        {-1, 0},
	Down:      {1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
	UpLeft:    {-1, -1},
	UpRight:   {-1, 1},
	DownLeft:  {1, -1},
	DownRight: {1, 1},
}

var directionNames = [DirectionCount]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
}

// Directions returns all eight directions in table order.
func Directions() [DirectionCount]Direction {
	return [DirectionCount]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
}

// Delta returns the row and column step for d.
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d][0], deltas[d][1]
}

// Valid reports whether d is in the direction table.
func (d Direction) Valid() bool {
	return d >= 0 && d < DirectionCount
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	dr, dc := d.Delta()
	for _, o := range Directions() {
		or, oc := o.Delta()
		if or == -dr && oc == -dc {
			return o
		}
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a name produced by String back to its Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
