package console

import (
	"io"
	"testing"

	"github.com/Mshel/mulawee/internal/game"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulated(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	con, err := New(sim, log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(con.Close)
	return con, sim
}

func TestDrawChar(t *testing.T) {
	con, sim := newSimulated(t)

	con.DrawChar(4, 5, '$', game.ColorGoal)
	con.Show()

	primary, _, style, _ := sim.GetContent(5, 4)
	assert.Equal(t, '$', primary)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorBlack, fg)
	assert.Equal(t, tcell.ColorYellow, bg)
}

func TestReadKey(t *testing.T) {
	con, sim := newSimulated(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyF1, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	for _, want := range []rune{'w', 'x', 'q'} {
		got, err := con.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPromptLine(t *testing.T) {
	con, sim := newSimulated(t)

	for _, r := range "annx" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	name, err := con.PromptLine(20, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, "anne", name)

	primary, _, _, _ := sim.GetContent(13, 20)
	assert.Equal(t, 'e', primary)
}

func TestPromptLineCancelled(t *testing.T) {
	con, sim := newSimulated(t)
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	_, err := con.PromptLine(0, 0, 10)
	assert.ErrorIs(t, err, ErrCancelled)
}
