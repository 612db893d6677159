package game

import (
	"math/rand/v2"
	"time"
)

const totalNumbers = 75

// randomDrawer yields a uniform pick over the 75 (letter,value) pairs minus
// the pairs already present in drawn. The remaining pool is derived from the
// draw history on every call, never stored separately.
type randomDrawer struct {
	now func() time.Time
}

func NewRandomDrawer() *randomDrawer {
	return &randomDrawer{now: time.Now}
}

func (d *randomDrawer) Draw(drawn []BingoNumber) (BingoNumber, error) {
	used := make(map[int]bool, len(drawn))
	for _, n := range drawn {
		used[n.Value] = true
	}

	remaining := make([]int, 0, totalNumbers-len(drawn))
	for v := 1; v <= totalNumbers; v++ {
		if !used[v] {
			remaining = append(remaining, v)
		}
	}
	if len(remaining) == 0 {
		return BingoNumber{}, ErrDrawExhausted
	}

	value := remaining[rand.IntN(len(remaining))]
	return BingoNumber{
		Letter:  columnLetters[(value-1)/columnSpan],
		Value:   value,
		DrawnAt: d.now().UTC(),
	}, nil
}
