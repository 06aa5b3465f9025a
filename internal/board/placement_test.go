package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirections_Table(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, d := range Directions() {
		dr, dc := d.Delta()
		assert.False(t, dr == 0 && dc == 0, "direction %v has zero delta", d)
		assert.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1)
		assert.False(t, seen[[2]int{dr, dc}], "duplicate delta for %v", d)
		seen[[2]int{dr, dc}] = true
	}
	assert.Len(t, seen, DirectionCount)
}

func TestDirection_ReverseAndText(t *testing.T) {
	for _, d := range Directions() {
		r := d.Reverse()
		dr, dc := d.Delta()
		rr, rc := r.Delta()
		assert.Equal(t, -dr, rr)
		assert.Equal(t, -dc, rc)
		assert.Equal(t, d, r.Reverse())

		text, err := d.MarshalText()
		assert.NoError(t, err)
		var back Direction
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, d, back)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestFits(t *testing.T) {
	g, _ := NewFromRows([]string{
		".....",
		"..A..",
		".....",
	})

	tests := []struct {
		name     string
		word     string
		row, col int
		dir      Direction
		want     bool
	}{
		{"blank row", "CAT", 0, 0, Right, true},
		{"crosses matching letter", "CAT", 1, 1, Right, true},
		{"conflicting letter", "DOG", 1, 0, Right, false},
		{"runs off the right edge", "CAT", 0, 3, Right, false},
		{"runs off the top", "CAT", 1, 0, Up, false},
		{"starts outside", "CAT", -1, 0, Down, false},
		{"diagonal through match", "BAT", 0, 1, DownRight, true},
		{"diagonal conflict", "BOT", 0, 1, DownRight, false},
		{"exactly fills column", "SUN", 0, 4, Down, true},
		{"too long for column", "SUNS", 0, 4, Down, false},
		{"leftwards", "TAC", 1, 4, Left, false},
		{"leftwards through match", "XXA", 1, 4, Left, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.String()
			assert.Equal(t, tt.want, g.Fits(tt.word, tt.row, tt.col, tt.dir))
			assert.Equal(t, before, g.String(), "Fits must not mutate the grid")
		})
	}
}

func TestPlace_ThenFitsAgain(t *testing.T) {
	for _, d := range Directions() {
		t.Run(d.String(), func(t *testing.T) {
			g, _ := New(5, 5)
			assert.True(t, g.Fits("CAT", 2, 2, d))
			g.Place("CAT", 2, 2, d)

			got, ok := g.Read(2, 2, d, 3)
			assert.True(t, ok)
			assert.Equal(t, "CAT", got)
			assert.Equal(t, 22, g.BlankCount())

			// Re-checking the same placement is always allowed.
			assert.True(t, g.Fits("CAT", 2, 2, d))
		})
	}
}

func TestPlacement_Cells(t *testing.T) {
	p := Placement{Word: "DOG", Row: 2, Col: 0, Direction: UpRight}
	assert.Equal(t, []Cell{{2, 0}, {1, 1}, {0, 2}}, p.Cells())
	assert.Equal(t, Cell{0, 2}, p.End())
}

func TestRead_OutOfBounds(t *testing.T) {
	g, _ := NewFromRows([]string{"AB"})
	_, ok := g.Read(0, 1, Right, 2)
	assert.False(t, ok)
	got, ok := g.Read(0, 1, Left, 2)
	assert.True(t, ok)
	assert.Equal(t, "BA", got)
}
