package game

// Win shapes, one 5x5 glyph per letter A-Z. A claim is valid when every "X"
// cell of the selected letter's glyph is covered on the card.
var patternGlyphs = map[string][5]string{
	"A": {".XXX.", "X...X", "XXXXX", "X...X", "X...X"},
	"B": {"XXXX.", "X...X", "XXXX.", "X...X", "XXXX."},
	"C": {".XXXX", "X....", "X....", "X....", ".XXXX"},
	"D": {"XXXX.", "X...X", "X...X", "X...X", "XXXX."},
	"E": {"XXXXX", "X....", "XXXX.", "X....", "XXXXX"},
	"F": {"XXXXX", "X....", "XXXX.", "X....", "X...."},
	"G": {".XXXX", "X....", "X..XX", "X...X", ".XXXX"},
	"H": {"X...X", "X...X", "XXXXX", "X...X", "X...X"},
	"I": {"XXXXX", "..X..", "..X..", "..X..", "XXXXX"},
	"J": {"..XXX", "...X.", "...X.", "X..X.", ".XX.."},
	"K": {"X...X", "X..X.", "XXX..", "X..X.", "X...X"},
	"L": {"X....", "X....", "X....", "X....", "XXXXX"},
	"M": {"X...X", "XX.XX", "X.X.X", "X...X", "X...X"},
	"N": {"X...X", "XX..X", "X.X.X", "X..XX", "X...X"},
	"O": {".XXX.", "X...X", "X...X", "X...X", ".XXX."},
	"P": {"XXXX.", "X...X", "XXXX.", "X....", "X...."},
	"Q": {".XXX.", "X...X", "X.X.X", "X..X.", ".XX.X"},
	"R": {"XXXX.", "X...X", "XXXX.", "X..X.", "X...X"},
	"S": {".XXXX", "X....", ".XXX.", "....X", "XXXX."},
	"T": {"XXXXX", "..X..", "..X..", "..X..", "..X.."},
	"U": {"X...X", "X...X", "X...X", "X...X", ".XXX."},
	"V": {"X...X", "X...X", "X...X", ".X.X.", "..X.."},
	"W": {"X...X", "X...X", "X.X.X", "XX.XX", "X...X"},
	"X": {"X...X", ".X.X.", "..X..", ".X.X.", "X...X"},
	"Y": {"X...X", ".X.X.", "..X..", "..X..", "..X.."},
	"Z": {"XXXXX", "...X.", "..X..", ".X...", "XXXXX"},
}

// PatternFor returns the win shape for letter, or ok=false when letter is not
// a single character in A-Z.
func PatternFor(letter string) ([5][5]bool, bool) {
	glyph, ok := patternGlyphs[letter]
	if !ok {
		return [5][5]bool{}, false
	}
	var grid [5][5]bool
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			grid[row][col] = glyph[row][col] == 'X'
		}
	}
	return grid, true
}
