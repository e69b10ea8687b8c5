package game

import "fmt"

type Position struct {
	Row, Col int
}

func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// ToScreen translates a grid position into console coordinates.
func ToScreen(p Position) Position {
	return Position{Row: p.Row + ScreenOffset, Col: p.Col + ScreenOffset}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionOffsets = map[Direction]Position{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

func (d Direction) Offset() Position {
	return directionOffsets[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Command is a resolved key press.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdQuit
)

// Direction reports the movement a command stands for.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return Up, true
	case CmdDown:
		return Down, true
	case CmdLeft:
		return Left, true
	case CmdRight:
		return Right, true
	}
	return 0, false
}

// ParseKey maps a key to its command, ignoring case.
func ParseKey(r rune) (Command, error) {
	switch r {
	case 'w', 'W':
		return CmdUp, nil
	case 's', 'S':
		return CmdDown, nil
	case 'a', 'A':
		return CmdLeft, nil
	case 'd', 'D':
		return CmdRight, nil
	case 'q', 'Q':
		return CmdQuit, nil
	}
	return CmdNone, ErrInvalidKey
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
