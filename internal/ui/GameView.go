package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/mulawee/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pathStyle   = lipgloss.NewStyle()
	goalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var gameKeys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("w/↑", "up")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("s/↓", "down")),
	Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("a/←", "left")),
	Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("d/→", "right")),
	Quit:  key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
}

// GameViewModel renders one level in play and feeds key presses to the
// state machine.
type GameViewModel struct {
	machine      *game.GameStateMachine
	level        int
	notice       string
	noticeStyle  lipgloss.Style
	keys         keyMap
	help         help.Model
	ScreenWidth  int
	ScreenHeight int
}

func NewGameModel(machine *game.GameStateMachine, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		machine:      machine,
		level:        machine.LevelIndex(),
		noticeStyle:  noticeStyle,
		keys:         gameKeys,
		help:         help.New(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return nil
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		var outcome game.Outcome
		switch {
		case key.Matches(msg, m.keys.Up):
			outcome = m.machine.Command(game.CmdUp)
		case key.Matches(msg, m.keys.Down):
			outcome = m.machine.Command(game.CmdDown)
		case key.Matches(msg, m.keys.Left):
			outcome = m.machine.Command(game.CmdLeft)
		case key.Matches(msg, m.keys.Right):
			outcome = m.machine.Command(game.CmdRight)
		default:
			outcome = m.machine.HandleKey(keyRune(msg))
		}

		switch outcome.Kind {
		case game.OutcomeMoved:
			m.notice, m.noticeStyle = fmt.Sprintf("Key pressed: %s", msg.String()), noticeStyle
		case game.OutcomeBlocked:
			m.notice, m.noticeStyle = fmt.Sprintf("Blocked moving %s!", outcome.Direction), warningStyle
		case game.OutcomeInvalid:
			m.notice, m.noticeStyle = fmt.Sprintf("'%s' is Invalid Key....", msg.String()), warningStyle
		}
		return m, nil
	}

	return m, nil
}

func keyRune(msg tea.KeyMsg) rune {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return msg.Runes[0]
	}
	return 0
}

func (m GameViewModel) View() string {
	mapContent := m.renderMap()
	statusContent := m.renderStatusPanel()

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("MULA WEE   Level: %d", m.machine.LevelNumber())),
		lipgloss.JoinHorizontal(lipgloss.Top,
			mapViewStyle.Render(mapContent),
			statusPanelStyle.Render(statusContent),
		),
	)
}

func (m GameViewModel) renderMap() string {
	var sb strings.Builder
	level := m.machine.Level()
	player := m.machine.Player().Position()

	for row := 0; row < level.Rows(); row++ {
		for col := 0; col < level.Cols(); col++ {
			pos := game.Position{Row: row, Col: col}
			if pos == player {
				sb.WriteString(playerStyle.Render(string(game.PlayerRune)))
				continue
			}

			cell := level.CellAt(pos)
			glyph := string(game.CellRune(cell))
			switch cell {
			case game.Goal:
				sb.WriteString(goalStyle.Render(glyph))
			case game.Path:
				sb.WriteString(pathStyle.Render(glyph))
			default:
				sb.WriteString(wallStyle.Render(glyph))
			}
		}
		if row < level.Rows()-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderStatusPanel draws the position, move count and scores.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder
	scores := m.machine.Scores()

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Player ---") + "\n")
	statusContent.WriteString(statusStyle.Render(fmt.Sprintf("Name: %s", scores.PlayerName())) + "\n")
	statusContent.WriteString(statusStyle.Render(fmt.Sprintf("Position: %s", m.machine.Player().Position())) + "\n")
	statusContent.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d", m.machine.Player().MoveCount())) + "\n")
	statusContent.WriteString(statusStyle.Render(fmt.Sprintf("Score: %d", scores.CurrentScore())) + "\n")
	statusContent.WriteString(statusStyle.Render(fmt.Sprintf("High Score: %s - %d", scores.HighScoreName(), scores.HighScoreValue())) + "\n")

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	statusContent.WriteString(m.help.View(m.keys) + "\n")

	if m.notice != "" {
		statusContent.WriteString("\n" + m.noticeStyle.Render(m.notice))
	}

	return statusContent.String()
}
