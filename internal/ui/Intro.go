package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/mulawee/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Start Game, 1: High Scores
	width    int
	height   int
	scores   *game.ScoreManager
}

func NewIntroModel(scores *game.ScoreManager, w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h, scores: scores}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.selected = 1 - m.selected
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var mulaWeeAscii = `
 __  __ _   _ _        _    __      _______ _____
|  \/  | | | | |      / \   \ \    / / ____| ____|
| |\/| | | | | |     / _ \   \ \/\/ /|  _| |  _|
| |  | | |_| | |___ / ___ \   \_/\_/ | |___| |___
|_|  |_|\___/|_____/_/   \_\         |_____|_____|
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	introTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	introHighScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("12"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("11")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString(asciiStyle.Render(mulaWeeAscii))
	sb.WriteString("\n\n")
	sb.WriteString(introTextStyle.Render("Navigate through the maze to reach the goal ($)"))
	sb.WriteString("\n")
	sb.WriteString(introTextStyle.Render("WASD / Arrows: Move    Q: Quit"))
	sb.WriteString("\n\n")
	sb.WriteString(introHighScoreStyle.Render(fmt.Sprintf("High Score: %s - %d", m.scores.HighScoreName(), m.scores.HighScoreValue())))

	start := introButtonStyle.Render("Start Game")
	leaderboard := introButtonStyle.Render("High Scores")

	if m.selected == 0 {
		start = introSelectedButtonStyle.Render("Start Game")
	} else {
		leaderboard = introSelectedButtonStyle.Render("High Scores")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, start, leaderboard)

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
