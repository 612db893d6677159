package game

// CoverageGrid recomputes which cells of a card are covered by the draw
// history: the center, plus every cell whose number has been drawn. The
// player's own marked grid plays no part here, so a forged daub can never
// manufacture a win.
func CoverageGrid(card *Card, drawn []BingoNumber) [5][5]bool {
	drawnValues := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		drawnValues[n.Value] = true
	}

	var covered [5][5]bool
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == 2 && col == 2 {
				covered[row][col] = true
				continue
			}
			covered[row][col] = drawnValues[card.numbers[row][col]]
		}
	}
	return covered
}

// AdjudicateClaim reports whether the selected letter's pattern is a subset
// of the card's covered cells.
func AdjudicateClaim(card *Card, drawn []BingoNumber, selectedLetter string) bool {
	pattern, ok := PatternFor(selectedLetter)
	if !ok {
		return false
	}
	covered := CoverageGrid(card, drawn)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if pattern[row][col] && !covered[row][col] {
				return false
			}
		}
	}
	return true
}
