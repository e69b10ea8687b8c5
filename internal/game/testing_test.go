package game

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

const tinyMaze = "3 3\n|||\n|*$\n|||"

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func mustLoad(t *testing.T, src string) *Level {
	t.Helper()
	level, err := LoadLevel("test", strings.NewReader(src))
	require.NoError(t, err)
	return level
}

// memoryStore is an in-memory ScoreStore.
type memoryStore struct {
	high  *HighScore
	saves int
}

func (s *memoryStore) LoadHighScore() (HighScore, error) {
	if s.high == nil {
		return HighScore{}, ErrNoHighScore
	}
	return *s.high, nil
}

func (s *memoryStore) SaveHighScore(score HighScore) error {
	s.high = &score
	s.saves++
	return nil
}

type brokenStore struct{}

var errDiskFull = errors.New("disk full")

func (brokenStore) LoadHighScore() (HighScore, error) { return HighScore{}, errDiskFull }
func (brokenStore) SaveHighScore(HighScore) error { return errDiskFull }

// newTinyMachine builds a three level game on the 3x3 maze, spawning at (1,1).
func newTinyMachine(t *testing.T, store ScoreStore) *GameStateMachine {
	t.Helper()
	levels := []*Level{mustLoad(t, tinyMaze), mustLoad(t, tinyMaze), mustLoad(t, tinyMaze)}
	m, err := NewGameStateMachine(levels, NewScoreManager(store, discardLogger()), discardLogger())
	require.NoError(t, err)
	m.SetSpawn(Position{Row: 1, Col: 1})
	return m
}
