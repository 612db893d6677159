package game

import "math/rand/v2"

// cardDealer deals fresh cards at every game start.
type cardDealer struct{}

func NewCardDealer() *cardDealer {
	return &cardDealer{}
}

// Deal samples, for each column, 5 distinct values from that column's
// sub-range. The center cell stays empty and pre-marked. Cards are
// independent across players; two cards sharing a number is normal bingo.
func (d *cardDealer) Deal() *Card {
	card := &Card{id: NewCardID()}
	for col := 0; col < 5; col++ {
		perm := rand.Perm(columnSpan)
		for row := 0; row < 5; row++ {
			card.numbers[row][col] = columnLow(col) + perm[row]
		}
	}
	card.numbers[2][2] = 0
	card.marked[2][2] = true
	return card
}
