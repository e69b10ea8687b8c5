package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	t.Run("parses cells and goal", func(t *testing.T) {
		level := mustLoad(t, tinyMaze)

		assert.Equal(t, 3, level.Rows())
		assert.Equal(t, 3, level.Cols())
		assert.Equal(t, Position{Row: 1, Col: 2}, level.Goal())
		assert.Equal(t, Path, level.CellAt(Position{Row: 1, Col: 1}))
		assert.Equal(t, Goal, level.CellAt(Position{Row: 1, Col: 2}))
		assert.Equal(t, Wall, level.CellAt(Position{Row: 0, Col: 0}))
	})

	t.Run("any whitespace separates tokens", func(t *testing.T) {
		level := mustLoad(t, "2\t2 * $\n\n %   |")
		assert.Equal(t, Path, level.CellAt(Position{Row: 0, Col: 0}))
		assert.Equal(t, Goal, level.CellAt(Position{Row: 0, Col: 1}))
		assert.Equal(t, Wall, level.CellAt(Position{Row: 1, Col: 0}))
		assert.Equal(t, Wall, level.CellAt(Position{Row: 1, Col: 1}))
	})

	t.Run("unknown characters are walls", func(t *testing.T) {
		level := mustLoad(t, "1 3 *#$")
		assert.Equal(t, Wall, level.CellAt(Position{Row: 0, Col: 1}))
	})

	t.Run("last goal wins", func(t *testing.T) {
		level := mustLoad(t, "2 2 $* *$")
		assert.Equal(t, Position{Row: 1, Col: 1}, level.Goal())
		assert.Equal(t, Goal, level.CellAt(Position{Row: 0, Col: 0}))
	})
}

func TestLoadLevelFormatErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"truncated cells", "5 5\n*****\n*****\n***"},
		{"zero rows", "0 5"},
		{"negative cols", "5 -1"},
		{"too many rows", "101 5"},
		{"too many cols", "5 101"},
		{"missing dimensions", ""},
		{"non numeric header", "three three |||"},
		{"header only", "2 2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, err := LoadLevel("broken.dat", strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Nil(t, level)
			assert.True(t, errors.Is(err, ErrFormat))

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, "broken.dat", formatErr.Source)
		})
	}
}

func TestLevelBounds(t *testing.T) {
	level := mustLoad(t, tinyMaze)

	outside := []Position{
		{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 3, Col: 1},
		{Row: 1, Col: 3}, {Row: 100, Col: 100}, {Row: -5, Col: -5},
	}
	for _, pos := range outside {
		assert.Equal(t, Wall, level.CellAt(pos), "position %s", pos)
		assert.False(t, level.CanEnter(pos), "position %s", pos)
	}

	for row := -1; row <= 3; row++ {
		for col := -1; col <= 3; col++ {
			pos := Position{Row: row, Col: col}
			assert.Equal(t, level.CellAt(pos) != Wall, level.CanEnter(pos), "position %s", pos)
		}
	}
}

func TestEmbeddedLevels(t *testing.T) {
	levels, err := LoadLevels(EmbeddedLevelSource(), discardLogger())
	require.NoError(t, err)
	require.Len(t, levels, MaxLevels)

	for i, level := range levels {
		assert.True(t, level.CanEnter(SpawnPosition()), "level %d spawn", i+1)
		assert.Equal(t, Goal, level.CellAt(level.Goal()), "level %d goal", i+1)
		assert.Equal(t, LevelFileName(i), level.Name)
	}
	assert.Equal(t, 21, levels[0].Rows())
	assert.Equal(t, 31, levels[0].Cols())
}

func TestDirLevelSourceMissingFile(t *testing.T) {
	_, err := LoadLevels(NewDirLevelSource(t.TempDir()), discardLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
}
