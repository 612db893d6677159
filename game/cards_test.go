package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeal_ColumnRanges(t *testing.T) {
	t.Parallel()
	dealer := NewCardDealer()

	for i := 0; i < 50; i++ {
		card := dealer.Deal()

		for col := 0; col < 5; col++ {
			seen := map[int]bool{}
			for row := 0; row < 5; row++ {
				if row == 2 && col == 2 {
					continue
				}
				value := card.numbers[row][col]
				assert.GreaterOrEqual(t, value, columnLow(col), "col %s row %d", columnLetters[col], row)
				assert.LessOrEqual(t, value, columnLow(col)+columnSpan-1, "col %s row %d", columnLetters[col], row)
				assert.False(t, seen[value], "duplicate %d in column %s", value, columnLetters[col])
				seen[value] = true
			}
		}
	}
}

func TestDeal_CenterIsFree(t *testing.T) {
	t.Parallel()
	card := NewCardDealer().Deal()

	assert.Zero(t, card.numbers[2][2])
	assert.True(t, card.marked[2][2])
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == 2 && col == 2 {
				continue
			}
			assert.False(t, card.marked[row][col], "cell [%d][%d] should start unmarked", row, col)
		}
	}
}

func TestDeal_DistinctAcrossWholeCard(t *testing.T) {
	t.Parallel()
	dealer := NewCardDealer()

	for i := 0; i < 50; i++ {
		card := dealer.Deal()
		seen := map[int]bool{}
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				if row == 2 && col == 2 {
					continue
				}
				assert.False(t, seen[card.numbers[row][col]])
				seen[card.numbers[row][col]] = true
			}
		}
	}
}

func TestCardView_CenterIsNull(t *testing.T) {
	t.Parallel()
	card := NewCardDealer().Deal()
	view := card.View()

	assert.Nil(t, view.Numbers[2][2])
	assert.True(t, view.Marked[2][2])
	assert.Equal(t, card.id, view.ID)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == 2 && col == 2 {
				continue
			}
			if assert.NotNil(t, view.Numbers[row][col]) {
				assert.Equal(t, card.numbers[row][col], *view.Numbers[row][col])
			}
		}
	}
}
