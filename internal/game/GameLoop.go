package game

import (
	"fmt"
	"strings"
)

const (
	titleText    = "MULA WEE"
	versionText  = "Version 2.0"
	controlsText = "Controls: WASD to move, Q to quit"
	noticeWidth  = 48
)

// RunConsole drives the game on a blocking console until the player quits.
func (m *GameStateMachine) RunConsole(con Console) error {
	for !m.state.Terminal() {
		var err error
		switch m.state {
		case StateMenu:
			err = m.consoleMenu(con)
		case StatePlaying:
			err = m.consolePlay(con)
		case StateLevelComplete:
			err = m.consoleLevelComplete(con)
		case StateWinner:
			err = m.consoleWinner(con)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *GameStateMachine) consoleMenu(con Console) error {
	con.Clear()
	drawBorder(con, 2, 2, 22, 72, ColorRed)

	drawText(con, 6, 32, titleText, ColorYellow)
	drawText(con, 7, 30, versionText, ColorYellow)
	drawText(con, 10, 8, "Navigate through the maze to reach the goal ($)", ColorGreen)
	drawText(con, 12, 8, "Controls:", ColorGreen)
	for i, line := range []string{"W - Move Up", "A - Move Left", "S - Move Down", "D - Move Right", "Q - Quit Game"} {
		drawText(con, 13+i, 12, line, ColorGreen)
	}

	high := m.scores.HighScore()
	drawText(con, 19, 8, fmt.Sprintf("High Score: %s - %d", high.PlayerName, high.Score), ColorBlue)

	prompt := fmt.Sprintf("Enter your name [max %d]: ", MaxNameLength)
	drawText(con, 20, 8, prompt, ColorYellow)
	con.Show()

	name, err := con.PromptLine(20, 8+len(prompt), MaxNameLength)
	if err != nil {
		return fmt.Errorf("reading player name: %w", err)
	}
	m.Begin(name)
	return nil
}

func (m *GameStateMachine) consolePlay(con Console) error {
	m.renderLevel(con)
	con.Show()

	for m.state == StatePlaying {
		key, err := con.ReadKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		outcome := m.HandleKey(key)
		switch outcome.Kind {
		case OutcomeMoved:
			m.renderMove(con, outcome)
			m.renderNotice(con, fmt.Sprintf("Key pressed: %c", key), ColorGreen)
		case OutcomeBlocked:
			con.Beep()
		case OutcomeInvalid:
			con.Beep()
			m.renderNotice(con, fmt.Sprintf("'%c' is Invalid Key....", key), ColorRed)
		}
		m.renderStatus(con)
		con.Show()
	}
	return nil
}

func (m *GameStateMachine) consoleLevelComplete(con Console) error {
	con.Clear()
	moves := m.player.MoveCount()
	pending := m.PendingLevelScore()

	drawText(con, 8, 25, fmt.Sprintf("Level %d Complete!", m.LevelNumber()), ColorGreen)
	drawText(con, 10, 25, fmt.Sprintf("Moves: %d", moves), ColorGreen)
	drawText(con, 11, 25, fmt.Sprintf("Level Score: %d", pending), ColorGreen)
	drawText(con, 12, 25, fmt.Sprintf("Total Score: %d", m.scores.CurrentScore()+pending), ColorGreen)
	if m.levelIndex+1 < len(m.levels) {
		drawText(con, 15, 25, fmt.Sprintf("Preparing Level %d...", m.LevelNumber()+1), ColorYellow)
	} else {
		drawText(con, 15, 25, "All levels complete! Calculating final score...", ColorYellow)
	}
	drawText(con, 20, 25, "Press any key to continue...", ColorYellow)
	con.Show()

	if _, err := con.ReadKey(); err != nil {
		return fmt.Errorf("reading key: %w", err)
	}
	m.CompleteLevel()
	return nil
}

func (m *GameStateMachine) consoleWinner(con Console) error {
	con.Clear()
	drawBorder(con, 2, 2, 20, 70, ColorRed)

	drawText(con, 5, 30, "---"+titleText+"---", ColorYellow)
	drawText(con, 7, 20, "YOU ARE THE WINNER!", ColorYellow)
	for i, line := range m.WinnerLines() {
		drawText(con, 10+i, 20, line, ColorGreen)
	}
	drawText(con, 19, 20, "Press any key to continue...", ColorYellow)
	con.Show()

	if _, err := con.ReadKey(); err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	con.Clear()
	drawText(con, 10, 30, "Play again? (y/n): ", ColorYellow)
	con.Show()
	for {
		key, err := con.ReadKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		switch key {
		case 'y', 'Y':
			m.Continue(true)
			return nil
		case 'n', 'N':
			m.Continue(false)
			return nil
		}
	}
}

// WinnerLines summarises the finished game for the winner screen.
func (m *GameStateMachine) WinnerLines() []string {
	var lines []string
	if m.newRecord {
		lines = append(lines,
			"NEW HIGH SCORE!",
			fmt.Sprintf("%s: %d", m.scores.PlayerName(), m.scores.CurrentScore()))
	} else {
		high := m.scores.HighScore()
		lines = append(lines,
			fmt.Sprintf("Your Score: %d", m.scores.CurrentScore()),
			fmt.Sprintf("High Score: %s - %d", high.PlayerName, high.Score))
	}
	if m.saveErr != nil {
		lines = append(lines, "(high score could not be saved)")
	}
	return lines
}

func (m *GameStateMachine) renderLevel(con Console) {
	con.Clear()
	level := m.Level()

	drawText(con, 1, 30, titleText, ColorRed)
	drawText(con, 2, 3, fmt.Sprintf("Level: %d", m.LevelNumber()), ColorRed)

	for row := 0; row < level.Rows(); row++ {
		for col := 0; col < level.Cols(); col++ {
			m.renderCell(con, Position{Row: row, Col: col})
		}
	}

	at := ToScreen(m.player.Position())
	con.DrawChar(at.Row, at.Col, PlayerRune, ColorYellow)
	m.renderStatus(con)
}

func (m *GameStateMachine) renderCell(con Console, pos Position) {
	cell := m.Level().CellAt(pos)
	color := ColorGreen
	if cell == Goal {
		color = ColorGoal
	}
	at := ToScreen(pos)
	con.DrawChar(at.Row, at.Col, CellRune(cell), color)
}

// renderMove redraws only the two cells a move touched.
func (m *GameStateMachine) renderMove(con Console, outcome Outcome) {
	m.renderCell(con, outcome.From)
	at := ToScreen(outcome.To)
	con.DrawChar(at.Row, at.Col, PlayerRune, ColorYellow)
}

func (m *GameStateMachine) statusRow() int {
	return m.Level().Rows() + ScreenOffset + 1
}

func (m *GameStateMachine) renderStatus(con Console) {
	row := m.statusRow()
	pos := m.player.Position()
	lines := []string{
		fmt.Sprintf("Position: %s", pos),
		fmt.Sprintf("Moves: %d", m.player.MoveCount()),
		fmt.Sprintf("Score: %d", m.scores.CurrentScore()),
	}
	for i, line := range lines {
		drawText(con, row+i, ScreenOffset, padRight(line, noticeWidth), ColorBlue)
	}
	drawText(con, row+3, ScreenOffset, controlsText, ColorYellow)
}

func (m *GameStateMachine) renderNotice(con Console, text string, color Color) {
	drawText(con, m.statusRow()+4, ScreenOffset, padRight(text, noticeWidth), color)
}

func drawBorder(con Console, top, left, bottom, right int, color Color) {
	for col := left; col <= right; col++ {
		con.DrawChar(top, col, '*', color)
		con.DrawChar(bottom, col, '*', color)
	}
	for row := top; row <= bottom; row++ {
		con.DrawChar(row, left, '*', color)
		con.DrawChar(row, right, '*', color)
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
