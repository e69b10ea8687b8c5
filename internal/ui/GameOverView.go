package ui

import (
	"fmt"

	"github.com/Mshel/mulawee/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	GameOverbuttonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = GameOverbuttonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	resultTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	resultNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	winnerBoxStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 4)
)

// LevelCompleteModel shows the award for the level just finished. Any key
// moves on.
type LevelCompleteModel struct {
	machine      *game.GameStateMachine
	ScreenWidth  int
	ScreenHeight int
}

func NewLevelCompleteModel(machine *game.GameStateMachine, w, h int) LevelCompleteModel {
	return LevelCompleteModel{machine: machine, ScreenWidth: w, ScreenHeight: h}
}

func (m LevelCompleteModel) Init() tea.Cmd { return nil }

func (m LevelCompleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		return m, func() tea.Msg { return ContinueLevelMsg{} }
	}
	return m, nil
}

func (m LevelCompleteModel) View() string {
	moves := m.machine.Player().MoveCount()
	pending := m.machine.PendingLevelScore()

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Level %d Complete!", m.machine.LevelNumber())),
		"",
		resultTextStyle.Render(fmt.Sprintf("Moves: %d", moves)),
		resultTextStyle.Render(fmt.Sprintf("Level Score: %d", pending)),
		resultTextStyle.Render(fmt.Sprintf("Total Score: %d", m.machine.Scores().CurrentScore()+pending)),
		"",
	}
	if m.machine.LevelNumber() < m.machine.LevelCount() {
		lines = append(lines, resultNoteStyle.Render(fmt.Sprintf("Preparing Level %d...", m.machine.LevelNumber()+1)))
	} else {
		lines = append(lines, resultNoteStyle.Render("All levels complete! Calculating final score..."))
	}
	lines = append(lines, "", helpStyle.Render("Press any key to continue..."))

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

// WinnerModel closes a finished game and asks whether to play again.
type WinnerModel struct {
	machine        *game.GameStateMachine
	SelectedButton int // 0: Play Again, 1: Exit
	ScreenWidth    int
	ScreenHeight   int
}

func NewWinnerModel(machine *game.GameStateMachine, w, h int) WinnerModel {
	return WinnerModel{machine: machine, ScreenWidth: w, ScreenHeight: h}
}

func (m WinnerModel) Init() tea.Cmd { return nil }

func (m WinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.SelectedButton = max(0, m.SelectedButton-1)
		case "right", "l":
			m.SelectedButton = min(1, m.SelectedButton+1)
		case "y", "Y":
			return m, playAgain(true)
		case "n", "N":
			return m, playAgain(false)
		case "enter":
			return m, playAgain(m.SelectedButton == 0)
		}
	}
	return m, nil
}

func playAgain(again bool) tea.Cmd {
	return func() tea.Msg { return PlayAgainMsg(again) }
}

func (m WinnerModel) View() string {
	title := titleStyle.Render("---MULA WEE---")
	banner := resultNoteStyle.Render("YOU ARE THE WINNER!")

	var stats []string
	for _, line := range m.machine.WinnerLines() {
		stats = append(stats, resultTextStyle.Render(line))
	}

	again := GameOverbuttonStyle.Render("Play Again (y)")
	exit := GameOverbuttonStyle.Render("Exit (n)")
	if m.SelectedButton == 0 {
		again = selectedButtonStyle.Render("Play Again (y)")
	} else {
		exit = selectedButtonStyle.Render("Exit (n)")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, again, exit)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		banner,
		"",
		lipgloss.JoinVertical(lipgloss.Center, stats...),
		buttons,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		winnerBoxStyle.Render(content),
	)
}
