// Package console implements the game's Console on a tcell terminal screen.
package console

import (
	"errors"
	"fmt"

	"github.com/Mshel/mulawee/internal/game"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

var (
	ErrClosed    = errors.New("console closed")
	ErrCancelled = errors.New("input cancelled")
)

var styles = map[game.Color]tcell.Style{
	game.ColorDefault: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	game.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
	game.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	game.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack),
	game.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	game.ColorGoal:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
}

// Screen adapts a tcell.Screen. Rows and columns map to y and x.
type Screen struct {
	screen tcell.Screen
	logger *log.Logger
}

// Open initialises the real terminal.
func Open(logger *log.Logger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return New(s, logger)
}

func New(s tcell.Screen, logger *log.Logger) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	s.SetStyle(styles[game.ColorDefault])
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, logger: logger}, nil
}

func (c *Screen) Close() {
	c.screen.Fini()
}

func (c *Screen) DrawChar(row, col int, ch rune, color game.Color) {
	style, ok := styles[color]
	if !ok {
		style = styles[game.ColorDefault]
	}
	c.screen.SetContent(col, row, ch, nil, style)
}

func (c *Screen) Clear() {
	c.screen.Clear()
}

func (c *Screen) Show() {
	c.screen.Show()
}

func (c *Screen) Beep() {
	if err := c.screen.Beep(); err != nil {
		c.logger.Debug("Beep failed", "error", err)
	}
}

// ReadKey waits for the next key. Arrow keys read as w/a/s/d and Esc or
// Ctrl+C as q; other special keys are skipped.
func (c *Screen) ReadKey() (rune, error) {
	for {
		ev, err := c.nextKey()
		if err != nil {
			return 0, err
		}
		if key, ok := translateKey(ev); ok {
			return key, nil
		}
	}
}

func translateKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyUp:
		return 'w', true
	case tcell.KeyDown:
		return 's', true
	case tcell.KeyLeft:
		return 'a', true
	case tcell.KeyRight:
		return 'd', true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 'q', true
	case tcell.KeyEnter:
		return '\n', true
	}
	return 0, false
}

// PromptLine echoes typed characters at (row, col) until Enter.
func (c *Screen) PromptLine(row, col, maxLen int) (string, error) {
	var buf []rune
	c.screen.ShowCursor(col, row)
	defer c.screen.HideCursor()
	c.screen.Show()

	for {
		ev, err := c.nextKey()
		if err != nil {
			return "", err
		}

		switch ev.Key() {
		case tcell.KeyEnter:
			return string(buf), nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return "", ErrCancelled
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				c.DrawChar(row, col+len(buf), ' ', game.ColorYellow)
			}
		case tcell.KeyRune:
			if len(buf) < maxLen {
				c.DrawChar(row, col+len(buf), ev.Rune(), game.ColorYellow)
				buf = append(buf, ev.Rune())
			}
		}
		c.screen.ShowCursor(col+len(buf), row)
		c.screen.Show()
	}
}

func (c *Screen) nextKey() (*tcell.EventKey, error) {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return nil, ErrClosed
		case *tcell.EventKey:
			return ev, nil
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}
