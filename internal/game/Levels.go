package game

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
)

//go:embed levels/*.dat
var embeddedLevels embed.FS

// LevelSource yields the maze for a zero-based level index.
type LevelSource interface {
	LoadLevel(index int) (*Level, error)
}

// FSLevelSource reads level1.dat, level2.dat, ... from a file system.
type FSLevelSource struct {
	FS fs.FS
}

func NewDirLevelSource(dir string) FSLevelSource {
	return FSLevelSource{FS: os.DirFS(dir)}
}

// EmbeddedLevelSource serves the levels shipped with the binary.
func EmbeddedLevelSource() FSLevelSource {
	sub, err := fs.Sub(embeddedLevels, "levels")
	if err != nil {
		panic(err)
	}
	return FSLevelSource{FS: sub}
}

func LevelFileName(index int) string {
	return fmt.Sprintf("level%d.dat", index+1)
}

func (src FSLevelSource) LoadLevel(index int) (*Level, error) {
	name := LevelFileName(index)
	f, err := src.FS.Open(name)
	if err != nil {
		return nil, &FormatError{Source: name, Reason: "unreadable", Err: err}
	}
	defer f.Close()

	return LoadLevel(name, f)
}

// LoadLevels loads the whole fixed sequence up front.
func LoadLevels(src LevelSource, logger *log.Logger) ([]*Level, error) {
	levels := make([]*Level, 0, MaxLevels)
	spawn := SpawnPosition()

	for i := 0; i < MaxLevels; i++ {
		level, err := src.LoadLevel(i)
		if err != nil {
			return nil, err
		}

		logger.Info("Level loaded", "level", i+1, "rows", level.Rows(), "cols", level.Cols(), "goal", level.Goal())
		if !level.CanEnter(spawn) {
			logger.Warn("Spawn cell is not enterable", "level", i+1, "spawn", spawn)
		}
		if level.CellAt(level.Goal()) != Goal {
			logger.Warn("Level has no goal cell", "level", i+1)
		}
		levels = append(levels, level)
	}

	return levels, nil
}
