package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type HighScore struct {
	PlayerName string
	Score      int
	RunID      string
	CreatedAt  time.Time
}

// ScoreStore persists the single best score.
type ScoreStore interface {
	LoadHighScore() (HighScore, error)
	SaveHighScore(score HighScore) error
}

// Leaderboard is implemented by stores that keep past records.
type Leaderboard interface {
	GetHighScores(limit, offset int) ([]HighScore, error)
	GetTotalScoreCount() (int, error)
}

var levelBaseScores = map[int]int{1: 154, 2: 253, 3: 212}

// LevelScore rewards short paths. Only the move penalty is floored, so the
// score for a level never drops below base*base/100.
func LevelScore(level, moves int) int {
	base, ok := levelBaseScores[level]
	if !ok {
		base = 100
	}
	score := (base + max(0, base-moves)) * base / 100
	return max(0, score)
}

type ScoreManager struct {
	store  ScoreStore
	logger *log.Logger

	playerName   string
	runID        string
	currentScore int
	high         HighScore
}

func NewScoreManager(store ScoreStore, logger *log.Logger) *ScoreManager {
	sm := &ScoreManager{store: store, logger: logger, playerName: DefaultPlayerName}
	sm.LoadHighScore()
	return sm
}

// LoadHighScore never fails; a missing record is the normal first run.
func (sm *ScoreManager) LoadHighScore() {
	sm.high = HighScore{PlayerName: DefaultHighScoreName}
	if sm.store == nil {
		return
	}

	high, err := sm.store.LoadHighScore()
	if err != nil {
		if errors.Is(err, ErrNoHighScore) {
			sm.logger.Debug("No high score yet, using default")
		} else {
			sm.logger.Warn("Could not load high score, using default", "error", err)
		}
		return
	}
	sm.high = high
}

// SaveHighScore records the current run as the high score. On failure the
// in-memory record is left as it was.
func (sm *ScoreManager) SaveHighScore() error {
	record := HighScore{PlayerName: sm.playerName, Score: sm.currentScore, RunID: sm.runID}
	if sm.store != nil {
		if err := sm.store.SaveHighScore(record); err != nil {
			return fmt.Errorf("failed to save high score for %s: %w", sm.playerName, err)
		}
	}
	sm.high = record
	return nil
}

// StartRun begins a new game for the named player.
func (sm *ScoreManager) StartRun(name string) {
	sm.SetPlayerName(name)
	sm.ResetScore()
	sm.runID = uuid.NewString()
}

func (sm *ScoreManager) SetPlayerName(name string) {
	sm.playerName = SanitizeName(name)
}

func (sm *ScoreManager) ResetScore() { sm.currentScore = 0 }

func (sm *ScoreManager) LevelScore(level, moves int) int {
	return LevelScore(level, moves)
}

// AddLevelScore adds the level's award to the running total and returns it.
func (sm *ScoreManager) AddLevelScore(level, moves int) int {
	award := LevelScore(level, moves)
	sm.currentScore += award
	return award
}

func (sm *ScoreManager) IsNewHighScore() bool {
	return sm.currentScore > sm.high.Score
}

func (sm *ScoreManager) CurrentScore() int { return sm.currentScore }
func (sm *ScoreManager) PlayerName() string { return sm.playerName }
func (sm *ScoreManager) RunID() string { return sm.runID }
func (sm *ScoreManager) HighScore() HighScore { return sm.high }
func (sm *ScoreManager) HighScoreValue() int { return sm.high.Score }
func (sm *ScoreManager) HighScoreName() string { return sm.high.PlayerName }
func (sm *ScoreManager) Store() ScoreStore { return sm.store }

// SanitizeName turns a typed name into one short token so that the score
// file stays "<name> <score>".
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)

	runes := []rune(name)
	if len(runes) > MaxNameLength {
		runes = runes[:MaxNameLength]
	}
	if len(runes) == 0 {
		return DefaultPlayerName
	}
	return string(runes)
}
