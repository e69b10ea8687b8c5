package game

type Color int

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorGoal
)

// Console is a character terminal addressed in screen coordinates. ReadKey
// blocks until a key arrives.
type Console interface {
	DrawChar(row, col int, ch rune, color Color)
	ReadKey() (rune, error)
	Clear()
	PromptLine(row, col, maxLen int) (string, error)
	Beep()
	Show()
}

func drawText(con Console, row, col int, text string, color Color) {
	for i, ch := range []rune(text) {
		con.DrawChar(row, col+i, ch, color)
	}
}

// CellRune is the glyph a cell is drawn with.
func CellRune(c Cell) rune {
	switch c {
	case Path:
		return ' '
	case Goal:
		return '$'
	default:
		return '|'
	}
}

const PlayerRune = '*'
