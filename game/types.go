package game

import "time"

type GameState int

const (
	STATE_WAITING GameState = iota
	STATE_PLAYING
	STATE_FINISHED
)

func (s GameState) String() string {
	switch s {
	case STATE_PLAYING:
		return "playing"
	case STATE_FINISHED:
		return "finished"
	default:
		return "waiting"
	}
}

// Column sub-ranges of an American 75-ball game: B 1-15, I 16-30, N 31-45,
// G 46-60, O 61-75.
var columnLetters = [5]string{"B", "I", "N", "G", "O"}

const columnSpan = 15

func columnLow(col int) int {
	return col*columnSpan + 1
}

type BingoNumber struct {
	Letter  string    `json:"letter"`
	Value   int       `json:"value"`
	DrawnAt time.Time `json:"drawnAt"`
}

// Card is a player's 5x5 grid. numbers is immutable after dealing; the center
// cell holds no value (zero) and is always covered. marked is the player's
// advisory daub state, never consulted for adjudication.
type Card struct {
	id      string
	numbers [5][5]int
	marked  [5][5]bool
}

func (c *Card) ID() string { return c.id }

func (c *Card) View() CardView {
	view := CardView{ID: c.id, Marked: c.marked}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if row == 2 && col == 2 {
				continue
			}
			n := c.numbers[row][col]
			view.Numbers[row][col] = &n
		}
	}
	return view
}

// Player is a durable identity inside the room, stable across reconnects.
// session is the currently attached connection, nil while disconnected.
type Player struct {
	id      string
	name    string
	secret  string
	card    *Card
	session *session
}
