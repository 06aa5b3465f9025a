package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidDimension(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 5},
		{"negative cols", 5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, g)
		})
	}
}

func TestNew_AllBlank(t *testing.T) {
	g, err := New(3, 4)
	assert.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.BlankCount())
	assert.False(t, g.IsComplete())
	for r := range 3 {
		for c := range 4 {
			assert.Equal(t, Blank, g.Get(r, c))
		}
	}
	assert.Equal(t, "....\n....\n....", g.String())
}

func TestSet_TracksBlankCount(t *testing.T) {
	g, _ := New(2, 2)

	g.Set(0, 0, 'A')
	assert.Equal(t, 3, g.BlankCount())

	g.Set(0, 0, 'B') // overwrite a letter
	assert.Equal(t, 3, g.BlankCount())

	g.Set(0, 0, Blank)
	assert.Equal(t, 4, g.BlankCount())

	for r := range 2 {
		for c := range 2 {
			g.Set(r, c, 'Z')
		}
	}
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsLetters())
}

func TestClone_Independent(t *testing.T) {
	g, _ := New(1, 3)
	g.Set(0, 1, 'X')

	clone := g.Clone()
	clone.Set(0, 0, 'Y')

	assert.Equal(t, ".X.", g.Row(0))
	assert.Equal(t, "YX.", clone.Row(0))
	assert.Equal(t, 2, g.BlankCount())
	assert.Equal(t, 1, clone.BlankCount())
}

func TestNewFromRows(t *testing.T) {
	g, err := NewFromRows([]string{"CAT", "D.G"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"CAT", "D.G"}, g.Lines())
	assert.Equal(t, 1, g.BlankCount())

	_, err = NewFromRows([]string{"CAT", "DO"})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = NewFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFormat_Margin(t *testing.T) {
	g, _ := NewFromRows([]string{"AB", "CD"})
	assert.Equal(t, "   A B \n   C D \n", g.Format(3))
	assert.Equal(t, "A B \nC D \n", g.Format(0))
}

func TestIsLetters_RejectsLowercase(t *testing.T) {
	g, _ := New(1, 2)
	g.Set(0, 0, 'a')
	assert.False(t, g.IsLetters())
}
