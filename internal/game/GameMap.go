package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

type Cell int

const (
	Wall Cell = iota
	Path
	Goal
)

func (c Cell) String() string {
	switch c {
	case Path:
		return "path"
	case Goal:
		return "goal"
	default:
		return "wall"
	}
}

// cellFromRune maps the level vocabulary; anything unknown becomes a wall.
func cellFromRune(r rune) Cell {
	switch r {
	case '*':
		return Path
	case '$':
		return Goal
	default:
		return Wall
	}
}

// Level is an immutable maze grid loaded from a level description.
type Level struct {
	Name string
	grid [][]Cell
	rows int
	cols int
	goal Position
}

// LoadLevel parses "rows cols" followed by rows*cols single characters.
// Whitespace between tokens is ignored. When several goals appear the last
// one read is recorded.
func LoadLevel(name string, r io.Reader) (*Level, error) {
	br := bufio.NewReader(r)

	var rows, cols int
	if _, err := fmt.Fscan(br, &rows, &cols); err != nil {
		return nil, &FormatError{Source: name, Reason: "reading dimensions", Err: err}
	}
	if rows <= 0 || cols <= 0 || rows > MaxGridSize || cols > MaxGridSize {
		return nil, &FormatError{Source: name, Reason: fmt.Sprintf("invalid dimensions %dx%d", rows, cols)}
	}

	level := &Level{Name: name, rows: rows, cols: cols, goal: Position{Row: -1, Col: -1}}
	level.grid = make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		level.grid[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			ch, err := nextToken(br)
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = io.ErrUnexpectedEOF
				}
				return nil, &FormatError{
					Source: name,
					Reason: fmt.Sprintf("read %d of %d cells", row*cols+col, rows*cols),
					Err:    err,
				}
			}
			cell := cellFromRune(ch)
			if cell == Goal {
				level.goal = Position{Row: row, Col: col}
			}
			level.grid[row][col] = cell
		}
	}

	return level, nil
}

func nextToken(br *bufio.Reader) (rune, error) {
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (l *Level) Rows() int { return l.rows }
func (l *Level) Cols() int { return l.cols }

// Goal returns the goal position, or (-1,-1) when the maze has none.
func (l *Level) Goal() Position { return l.goal }

func (l *Level) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < l.rows && pos.Col >= 0 && pos.Col < l.cols
}

// CellAt never fails: positions off the grid read as walls.
func (l *Level) CellAt(pos Position) Cell {
	if !l.InBounds(pos) {
		return Wall
	}
	return l.grid[pos.Row][pos.Col]
}

func (l *Level) CanEnter(pos Position) bool {
	return l.CellAt(pos) != Wall
}
