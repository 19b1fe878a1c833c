package play

import (
	"testing"

	"github.com/cxd309/tilt-engine/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = config.PlayConfig{TiltStep: 5, MaxTilt: 12, FrameRate: 60}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestNewGameField(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)
	w, h, size := g.ball.Field()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 24.0, h)
	assert.Equal(t, 1.0, size)

	col, row := g.ballCell()
	assert.Equal(t, 40, col) // 39.5 rounds half away from zero
	assert.Equal(t, 12, row) // 11.5
}

func TestArrowKeysTilt(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)

	assert.True(t, g.handleEvent(key(tcell.KeyRight)))
	assert.True(t, g.handleEvent(key(tcell.KeyDown)))
	assert.Equal(t, 5.0, g.tiltX)
	assert.Equal(t, 5.0, g.tiltY)

	g.handleEvent(key(tcell.KeyUp))
	g.handleEvent(key(tcell.KeyUp))
	g.handleEvent(key(tcell.KeyLeft))
	assert.Equal(t, 0.0, g.tiltX)
	assert.Equal(t, -5.0, g.tiltY)
}

func TestTiltClamped(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)
	for i := 0; i < 10; i++ {
		g.handleEvent(key(tcell.KeyLeft))
		g.handleEvent(key(tcell.KeyDown))
	}
	assert.Equal(t, -12.0, g.tiltX)
	assert.Equal(t, 12.0, g.tiltY)
}

func TestLevelAndReset(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)
	g.handleEvent(key(tcell.KeyRight))
	g.handleEvent(char(' '))
	assert.Zero(t, g.tiltX)

	g.handleEvent(key(tcell.KeyRight))
	for i := 0; i < 30; i++ {
		g.tick(1.0 / 30)
	}
	x, _ := g.ball.Position()
	require.Greater(t, x, 39.5)

	g.handleEvent(char('r'))
	x, y := g.ball.Position()
	assert.Equal(t, 39.5, x)
	assert.Equal(t, 11.5, y)
	assert.False(t, g.ball.Primed())
	assert.Zero(t, g.tiltX)
}

func TestQuitKeys(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)
	assert.False(t, g.handleEvent(char('q')))
	assert.False(t, g.handleEvent(key(tcell.KeyEscape)))
	assert.True(t, g.handleEvent(char('x')))
}

func TestResizeRebuildsField(t *testing.T) {
	g := newGame(80, 25, testCfg, nil)
	g.handleEvent(tcell.NewEventResize(40, 11))

	w, h, _ := g.ball.Field()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 10.0, h)
	x, y := g.ball.Position()
	assert.Equal(t, 19.5, x)
	assert.Equal(t, 4.5, y)
}

func TestBallStaysOnScreen(t *testing.T) {
	g := newGame(20, 6, testCfg, nil)
	for i := 0; i < 5; i++ {
		g.handleEvent(key(tcell.KeyRight))
		g.handleEvent(key(tcell.KeyDown))
	}
	for i := 0; i < 600; i++ {
		g.tick(1.0 / 60)
	}

	col, row := g.ballCell()
	assert.Equal(t, 19, col)
	assert.Equal(t, 4, row)
	assert.Contains(t, g.status(), "right|bottom")
}

func TestTinyTerminal(t *testing.T) {
	g := newGame(0, 1, testCfg, nil)
	g.tick(0.1)
	g.tick(0.1)
	col, row := g.ballCell()
	assert.Zero(t, col)
	assert.Zero(t, row)
}
