package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/mulawee/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardPageSize = 10

var (
	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

// LeaderboardModel pages through saved high scores.
type LeaderboardModel struct {
	board        game.Leaderboard
	scores       []game.HighScore
	total        int
	page         int
	err          error
	logger       *log.Logger
	ScreenWidth  int
	ScreenHeight int
}

// NewLeaderboardModel reads from the score store when it keeps history.
func NewLeaderboardModel(scores *game.ScoreManager, logger *log.Logger, w, h int) LeaderboardModel {
	m := LeaderboardModel{logger: logger, ScreenWidth: w, ScreenHeight: h}
	if board, ok := scores.Store().(game.Leaderboard); ok {
		m.board = board
	}
	return m.load()
}

func (m LeaderboardModel) load() LeaderboardModel {
	if m.board == nil {
		return m
	}
	m.scores, m.err = m.board.GetHighScores(leaderboardPageSize, m.page*leaderboardPageSize)
	if m.err == nil {
		m.total, m.err = m.board.GetTotalScoreCount()
	}
	if m.err != nil {
		m.logger.Error("Failed to load leaderboard", "error", m.err)
	}
	return m
}

func (m LeaderboardModel) Init() tea.Cmd { return nil }

func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return BackToIntroMsg{} }
		case "right", "l", "pgdown":
			if (m.page+1)*leaderboardPageSize < m.total {
				m.page++
				m = m.load()
			}
		case "left", "h", "pgup":
			if m.page > 0 {
				m.page--
				m = m.load()
			}
		}
	}
	return m, nil
}

// View draws the current leaderboard page.
func (m LeaderboardModel) View() string {
	var tableContent strings.Builder

	nameWidth := 15
	scoreWidth := 10
	dateWidth := 12

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(4).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(dateWidth).Render("Date"),
	)
	tableContent.WriteString(header + "\n")

	for i, score := range m.scores {
		rank := m.page*leaderboardPageSize + i + 1
		date := "-"
		if !score.CreatedAt.IsZero() {
			date = score.CreatedAt.Format("2006-01-02")
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(4).Render(strconv.Itoa(rank)),
			leaderboardRowStyle.Width(nameWidth).Render(score.PlayerName),
			leaderboardRowStyle.Width(scoreWidth).Render(strconv.Itoa(score.Score)),
			leaderboardRowStyle.Width(dateWidth).Render(date),
		)

		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	switch {
	case m.board == nil:
		tableContent.WriteString("This score store keeps no history.\n")
	case m.err != nil:
		tableContent.WriteString(warningStyle.Render("Could not read high scores.") + "\n")
	case len(m.scores) == 0:
		tableContent.WriteString("No high scores yet.\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("HIGH SCORES")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Arrows to page, ESC or ENTER to return to the menu.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
