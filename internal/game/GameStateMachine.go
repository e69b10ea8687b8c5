package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateLevelComplete
	// StateGameOver is reserved and behaves like StateQuit.
	StateGameOver
	StateWinner
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	case StateWinner:
		return "winner"
	case StateQuit:
		return "quit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s GameState) Terminal() bool {
	return s == StateQuit || s == StateGameOver
}

type OutcomeKind int

const (
	// OutcomeIgnored means the input was not valid for the current state.
	OutcomeIgnored OutcomeKind = iota
	OutcomeMoved
	OutcomeBlocked
	OutcomeInvalid
	OutcomeQuit
)

// Outcome describes what a single input did to the game.
type Outcome struct {
	Kind        OutcomeKind
	Key         rune
	Direction   Direction
	From        Position
	To          Position
	ReachedGoal bool
}

// LevelResult is the award handed out when a completed level is scored.
type LevelResult struct {
	Level      int
	Moves      int
	LevelScore int
	TotalScore int
	LastLevel  bool
}

// GameStateMachine owns the level sequence, the player and the score for one
// process run. Inputs that do not apply to the current state are no-ops.
type GameStateMachine struct {
	state      GameState
	levelIndex int
	levels     []*Level
	player     *Player
	scores     *ScoreManager
	logger     *log.Logger
	spawn      Position

	legacyTurns bool
	newRecord   bool
	saveErr     error
	lastResult  LevelResult
}

func NewGameStateMachine(levels []*Level, scores *ScoreManager, logger *log.Logger) (*GameStateMachine, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("state machine needs at least one level: %w", ErrInvalidLevel)
	}

	spawn := SpawnPosition()
	return &GameStateMachine{
		state:  StateMenu,
		levels: levels,
		player: NewPlayer(spawn),
		scores: scores,
		logger: logger,
		spawn:  spawn,
	}, nil
}

// SetLegacyTurns makes blocked moves and invalid keys cost a turn.
func (m *GameStateMachine) SetLegacyTurns(on bool) {
	m.legacyTurns = on
}

// SetSpawn changes the start cell used from the next level start on.
func (m *GameStateMachine) SetSpawn(pos Position) {
	m.spawn = pos
}

// Begin moves MENU -> PLAYING for a new game.
func (m *GameStateMachine) Begin(playerName string) bool {
	if m.state != StateMenu {
		return false
	}

	m.scores.StartRun(playerName)
	m.newRecord = false
	m.saveErr = nil
	m.lastResult = LevelResult{}
	m.startLevel(0)
	m.state = StatePlaying

	m.logger.Info("Game started", "player", m.scores.PlayerName(), "run", m.scores.RunID())
	return true
}

func (m *GameStateMachine) startLevel(index int) {
	m.levelIndex = index
	m.player.Reset(m.spawn)
}

// HandleKey resolves a raw key press while playing.
func (m *GameStateMachine) HandleKey(key rune) Outcome {
	if m.state != StatePlaying {
		return Outcome{Kind: OutcomeIgnored, Key: key}
	}

	cmd, err := ParseKey(key)
	if err != nil {
		if m.legacyTurns {
			m.player.CountAttempt()
		}
		m.logger.Debug("Invalid key", "key", string(key))
		return Outcome{Kind: OutcomeInvalid, Key: key}
	}

	outcome := m.Command(cmd)
	outcome.Key = key
	return outcome
}

// Command applies an already resolved command while playing.
func (m *GameStateMachine) Command(cmd Command) Outcome {
	if m.state != StatePlaying {
		return Outcome{Kind: OutcomeIgnored}
	}

	if cmd == CmdQuit {
		m.Quit()
		return Outcome{Kind: OutcomeQuit}
	}

	dir, ok := cmd.Direction()
	if !ok {
		return Outcome{Kind: OutcomeIgnored}
	}

	level := m.Level()
	from := m.player.Position()
	if !m.player.Move(dir, level) {
		if m.legacyTurns {
			m.player.CountAttempt()
		}
		return Outcome{Kind: OutcomeBlocked, Direction: dir, From: from, To: from}
	}

	outcome := Outcome{Kind: OutcomeMoved, Direction: dir, From: from, To: m.player.Position()}
	if level.CellAt(outcome.To) == Goal {
		outcome.ReachedGoal = true
		m.state = StateLevelComplete
		m.logger.Info("Goal reached", "level", m.LevelNumber(), "moves", m.player.MoveCount())
	}
	return outcome
}

// Quit ends a game in progress.
func (m *GameStateMachine) Quit() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StateQuit
	m.logger.Info("Player quit", "player", m.scores.PlayerName(), "level", m.LevelNumber(), "score", m.scores.CurrentScore())
	return true
}

// CompleteLevel scores the finished level and moves on to the next level, or
// to WINNER after the last one.
func (m *GameStateMachine) CompleteLevel() (LevelResult, bool) {
	if m.state != StateLevelComplete {
		return LevelResult{}, false
	}

	moves := m.player.MoveCount()
	award := m.scores.AddLevelScore(m.LevelNumber(), moves)
	result := LevelResult{
		Level:      m.LevelNumber(),
		Moves:      moves,
		LevelScore: award,
		TotalScore: m.scores.CurrentScore(),
		LastLevel:  m.levelIndex+1 >= len(m.levels),
	}
	m.lastResult = result

	m.logger.Info("Level complete", "level", result.Level, "moves", moves, "level_score", award, "total", result.TotalScore)

	if result.LastLevel {
		m.enterWinner()
	} else {
		m.startLevel(m.levelIndex + 1)
		m.state = StatePlaying
	}
	return result, true
}

func (m *GameStateMachine) enterWinner() {
	m.state = StateWinner
	m.newRecord = m.scores.IsNewHighScore()
	if !m.newRecord {
		return
	}

	if err := m.scores.SaveHighScore(); err != nil {
		m.saveErr = err
		m.logger.Error("High score not saved, continuing", "error", err)
		return
	}
	m.logger.Info("New high score saved", "player", m.scores.PlayerName(), "score", m.scores.CurrentScore())
}

// Continue leaves WINNER for the menu or for good.
func (m *GameStateMachine) Continue(again bool) bool {
	if m.state != StateWinner {
		return false
	}
	if again {
		m.state = StateMenu
	} else {
		m.state = StateQuit
	}
	return true
}

func (m *GameStateMachine) State() GameState { return m.state }
func (m *GameStateMachine) LevelIndex() int { return m.levelIndex }
func (m *GameStateMachine) LevelNumber() int { return m.levelIndex + 1 }
func (m *GameStateMachine) LevelCount() int { return len(m.levels) }
func (m *GameStateMachine) Level() *Level { return m.levels[m.levelIndex] }
func (m *GameStateMachine) Player() *Player { return m.player }
func (m *GameStateMachine) Scores() *ScoreManager { return m.scores }
func (m *GameStateMachine) LastResult() LevelResult {
	return m.lastResult
}

// NewRecord reports whether the finished game beat the stored high score.
func (m *GameStateMachine) NewRecord() bool { return m.newRecord }

// SaveError is the high score persistence failure of the finished game, if any.
func (m *GameStateMachine) SaveError() error { return m.saveErr }

// PendingLevelScore is what the current level would award right now.
func (m *GameStateMachine) PendingLevelScore() int {
	return LevelScore(m.LevelNumber(), m.player.MoveCount())
}
