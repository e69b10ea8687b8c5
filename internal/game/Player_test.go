package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerMove(t *testing.T) {
	level := mustLoad(t, "3 4\n||||\n|**$\n||||")
	start := Position{Row: 1, Col: 1}

	t.Run("moves onto path and goal", func(t *testing.T) {
		p := NewPlayer(start)
		assert.True(t, p.Move(Right, level))
		assert.Equal(t, Position{Row: 1, Col: 2}, p.Position())
		assert.Equal(t, start, p.LastPosition())
		assert.Equal(t, 1, p.MoveCount())

		assert.True(t, p.Move(Right, level))
		assert.Equal(t, Position{Row: 1, Col: 3}, p.Position())
		assert.Equal(t, 2, p.MoveCount())
	})

	t.Run("walls block without counting", func(t *testing.T) {
		p := NewPlayer(start)
		for _, dir := range []Direction{Up, Down, Left} {
			assert.False(t, p.Move(dir, level), dir.String())
			assert.Equal(t, start, p.Position())
			assert.Equal(t, start, p.LastPosition())
			assert.Equal(t, 0, p.MoveCount())
		}
	})

	t.Run("grid edge blocks", func(t *testing.T) {
		open := mustLoad(t, "1 2 *$")
		p := NewPlayer(Position{Row: 0, Col: 0})
		assert.False(t, p.Move(Up, open))
		assert.False(t, p.Move(Left, open))
		assert.True(t, p.Move(Right, open))
		assert.False(t, p.Move(Right, open))
		assert.Equal(t, Position{Row: 0, Col: 1}, p.Position())
		assert.Equal(t, 1, p.MoveCount())
	})

	t.Run("reset", func(t *testing.T) {
		p := NewPlayer(start)
		p.Move(Right, level)
		p.CountAttempt()
		assert.Equal(t, 2, p.MoveCount())

		p.Reset(start)
		assert.Equal(t, start, p.Position())
		assert.Equal(t, start, p.LastPosition())
		assert.Equal(t, 0, p.MoveCount())
	})
}

func TestDirectionOffsets(t *testing.T) {
	assert.Equal(t, Position{Row: -1, Col: 0}, Up.Offset())
	assert.Equal(t, Position{Row: 1, Col: 0}, Down.Offset())
	assert.Equal(t, Position{Row: 0, Col: -1}, Left.Offset())
	assert.Equal(t, Position{Row: 0, Col: 1}, Right.Offset())
}

func TestParseKey(t *testing.T) {
	cases := map[rune]Command{
		'w': CmdUp, 'W': CmdUp, 's': CmdDown, 'S': CmdDown,
		'a': CmdLeft, 'A': CmdLeft, 'd': CmdRight, 'D': CmdRight,
		'q': CmdQuit, 'Q': CmdQuit,
	}
	for key, want := range cases {
		got, err := ParseKey(key)
		assert.NoError(t, err)
		assert.Equal(t, want, got, string(key))
	}

	for _, key := range []rune{'x', ' ', '1', '\n'} {
		_, err := ParseKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey)
	}
}

func TestToScreen(t *testing.T) {
	assert.Equal(t, Position{Row: 20, Col: 4}, ToScreen(SpawnPosition()))
	assert.Equal(t, Position{Row: 3, Col: 3}, ToScreen(Position{}))
}
