package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileScoreStore keeps the high score as "<name> <score>" in a flat file.
type FileScoreStore struct {
	Path string
}

func NewFileScoreStore(path string) *FileScoreStore {
	return &FileScoreStore{Path: path}
}

func (s *FileScoreStore) LoadHighScore() (HighScore, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return HighScore{}, ErrNoHighScore
		}
		return HighScore{}, fmt.Errorf("failed to open score file: %w", err)
	}
	defer f.Close()

	var high HighScore
	if _, err := fmt.Fscan(f, &high.PlayerName, &high.Score); err != nil {
		return HighScore{}, fmt.Errorf("failed to read score file %s: %w", s.Path, err)
	}
	high.PlayerName = SanitizeName(high.PlayerName)

	if info, statErr := f.Stat(); statErr == nil {
		high.CreatedAt = info.ModTime()
	}
	return high, nil
}

func (s *FileScoreStore) SaveHighScore(score HighScore) error {
	line := fmt.Sprintf("%s %d", SanitizeName(score.PlayerName), score.Score)
	if err := os.WriteFile(s.Path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	return nil
}

// GetHighScores lists the single stored record.
func (s *FileScoreStore) GetHighScores(limit, offset int) ([]HighScore, error) {
	high, err := s.LoadHighScore()
	if errors.Is(err, ErrNoHighScore) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if offset > 0 || limit <= 0 {
		return nil, nil
	}
	return []HighScore{high}, nil
}

func (s *FileScoreStore) GetTotalScoreCount() (int, error) {
	_, err := s.LoadHighScore()
	if errors.Is(err, ErrNoHighScore) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 1, nil
}
