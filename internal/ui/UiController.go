package ui

import (
	"github.com/Mshel/mulawee/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	LevelCompleteScreen
	WinnerScreen
	LeaderboardScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Start Game, 1 for High Scores
type SetupSubmitMsg struct {
	Name string
}
type ContinueLevelMsg struct{}
type PlayAgainMsg bool

// BackToIntroMsg returns to the menu from the name form or the leaderboard.
type BackToIntroMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	Machine       *game.GameStateMachine

	IntroModel         tea.Model
	SetupModel         tea.Model
	GameModel          tea.Model
	LevelCompleteModel tea.Model
	WinnerModel        tea.Model
	LeaderboardModel   tea.Model

	ScreenWidth  int
	ScreenHeight int
	logger       *log.Logger
}

func NewControllerModel(machine *game.GameStateMachine, logger *log.Logger, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		Machine:       machine,
		CurrentScreen: IntroScreen,

		IntroModel:       NewIntroModel(machine.Scores(), screenWidth, screenHeight),
		SetupModel:       NewInitialSetupModel(screenWidth, screenHeight),
		LeaderboardModel: NewLeaderboardModel(machine.Scores(), logger, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		logger:       logger,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	case LevelCompleteScreen:
		if m.LevelCompleteModel != nil {
			return m.LevelCompleteModel.View()
		}
	case WinnerScreen:
		if m.WinnerModel != nil {
			return m.WinnerModel.View()
		}
	case LeaderboardScreen:
		return m.LeaderboardModel.View()
	}
	return "Unknown Screen"
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- 1. Global Key Check ---
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, m.broadcast(msg)

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			m.SetupModel = NewInitialSetupModel(m.ScreenWidth, m.ScreenHeight)
			return m, m.SetupModel.Init()
		} else if msg == 1 {
			m.CurrentScreen = LeaderboardScreen
			m.LeaderboardModel = NewLeaderboardModel(m.Machine.Scores(), m.logger, m.ScreenWidth, m.ScreenHeight)
			return m, m.LeaderboardModel.Init()
		}

	case BackToIntroMsg:
		return m.toIntro()

	case SetupSubmitMsg:
		m.Machine.Begin(msg.Name)
		return m.sync()

	case ContinueLevelMsg:
		m.Machine.CompleteLevel()
		return m.sync()

	case PlayAgainMsg:
		m.Machine.Continue(bool(msg))
		return m.sync()

	default:
		// --- 3. Message Delegation ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				next, syncCmd := m.sync()
				return next, tea.Batch(cmd, syncCmd)
			}
		case LevelCompleteScreen:
			if m.LevelCompleteModel != nil {
				m.LevelCompleteModel, cmd = m.LevelCompleteModel.Update(msg)
			}
		case WinnerScreen:
			if m.WinnerModel != nil {
				m.WinnerModel, cmd = m.WinnerModel.Update(msg)
			}
		case LeaderboardScreen:
			m.LeaderboardModel, cmd = m.LeaderboardModel.Update(msg)
		}
	}

	return m, cmd
}

// sync moves to the screen that matches the state machine.
func (m ControllerModel) sync() (ControllerModel, tea.Cmd) {
	switch m.Machine.State() {
	case game.StatePlaying:
		if m.CurrentScreen != GameScreen || m.GameModel == nil || m.gameLevelChanged() {
			m.CurrentScreen = GameScreen
			m.GameModel = NewGameModel(m.Machine, m.ScreenWidth, m.ScreenHeight)
			return m, m.GameModel.Init()
		}
	case game.StateLevelComplete:
		if m.CurrentScreen != LevelCompleteScreen {
			m.CurrentScreen = LevelCompleteScreen
			m.LevelCompleteModel = NewLevelCompleteModel(m.Machine, m.ScreenWidth, m.ScreenHeight)
		}
	case game.StateWinner:
		if m.CurrentScreen != WinnerScreen {
			m.CurrentScreen = WinnerScreen
			m.WinnerModel = NewWinnerModel(m.Machine, m.ScreenWidth, m.ScreenHeight)
		}
	case game.StateMenu:
		if m.CurrentScreen != IntroScreen && m.CurrentScreen != SetupScreen && m.CurrentScreen != LeaderboardScreen {
			return m.toIntro()
		}
	case game.StateQuit, game.StateGameOver:
		m.logger.Info("Leaving game", "state", m.Machine.State())
		return m, tea.Quit
	}
	return m, nil
}

func (m ControllerModel) gameLevelChanged() bool {
	view, ok := m.GameModel.(GameViewModel)
	return ok && view.level != m.Machine.LevelIndex()
}

func (m ControllerModel) toIntro() (ControllerModel, tea.Cmd) {
	m.CurrentScreen = IntroScreen
	m.IntroModel = NewIntroModel(m.Machine.Scores(), m.ScreenWidth, m.ScreenHeight)
	return m, m.IntroModel.Init()
}

func (m *ControllerModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, sub := range []*tea.Model{&m.IntroModel, &m.SetupModel, &m.GameModel, &m.LevelCompleteModel, &m.WinnerModel, &m.LeaderboardModel} {
		if *sub == nil {
			continue
		}
		var cmd tea.Cmd
		*sub, cmd = (*sub).Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
