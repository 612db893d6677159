package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternFor_CoversWholeAlphabet(t *testing.T) {
	t.Parallel()
	for c := 'A'; c <= 'Z'; c++ {
		grid, ok := PatternFor(string(c))
		assert.True(t, ok, "missing pattern for %c", c)

		cells := 0
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				if grid[row][col] {
					cells++
				}
			}
		}
		assert.Greater(t, cells, 0, "empty pattern for %c", c)
	}
}

func TestPatternFor_RejectsNonLetters(t *testing.T) {
	t.Parallel()
	for _, letter := range []string{"", "a", "AB", "1", "Ñ"} {
		_, ok := PatternFor(letter)
		assert.False(t, ok, "letter %q should have no pattern", letter)
	}
}

func TestPatternFor_KnownShapes(t *testing.T) {
	t.Parallel()

	x, _ := PatternFor("X")
	assert.True(t, x[0][0])
	assert.True(t, x[4][4])
	assert.True(t, x[2][2])
	assert.False(t, x[0][2])

	l, _ := PatternFor("L")
	for row := 0; row < 5; row++ {
		assert.True(t, l[row][0])
	}
	for col := 0; col < 5; col++ {
		assert.True(t, l[4][col])
	}
	assert.False(t, l[0][4])
}
