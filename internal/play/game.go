// Package play is an interactive terminal driver for a motion.State: the arrow
// keys tilt the field and the ball rolls around the terminal.
package play

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cxd309/tilt-engine/internal/config"
	"github.com/cxd309/tilt-engine/internal/motion"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	ballRune   = '●'
	statusRows = 1
	ballSize   = 1 // cells
)

var (
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Game owns the ball and the current tilt. All of its methods run on the loop
// goroutine started by Run.
type Game struct {
	screen tcell.Screen
	cfg    config.PlayConfig
	log    *zap.Logger

	width, height int // terminal cells
	ball          *motion.State
	tiltX, tiltY  float64
	frames        int
}

// New builds a Game sized to the screen, which must already be initialized.
func New(screen tcell.Screen, cfg config.PlayConfig, logger *zap.Logger) *Game {
	w, h := screen.Size()
	g := newGame(w, h, cfg, logger)
	g.screen = screen
	return g
}

func newGame(width, height int, cfg config.PlayConfig, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{cfg: cfg, log: logger}
	g.resize(width, height)
	return g
}

// resize rebuilds the ball for a new terminal size. The field of a State is fixed,
// so a new one is needed; the ball restarts at the center.
func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	fw := math.Max(float64(width), ballSize)
	fh := math.Max(float64(height-statusRows), ballSize)
	g.ball = motion.New(fw, fh, ballSize)
	g.log.Debug("field resized", zap.Float64("width", fw), zap.Float64("height", fh))
}

// reset recenters the ball and levels the field.
func (g *Game) reset() {
	g.ball.Reset()
	g.tiltX, g.tiltY = 0, 0
	g.log.Debug("reset")
}

// tilt nudges the acceleration, clamped to the configured maximum.
func (g *Game) tilt(dx, dy float64) {
	limit := g.cfg.MaxTilt
	g.tiltX = math.Max(-limit, math.Min(limit, g.tiltX+dx*g.cfg.TiltStep))
	g.tiltY = math.Max(-limit, math.Min(limit, g.tiltY+dy*g.cfg.TiltStep))
}

// handleEvent applies one input event and reports whether the game should continue.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.tilt(-1, 0)
		case tcell.KeyRight:
			g.tilt(1, 0)
		case tcell.KeyUp:
			g.tilt(0, -1)
		case tcell.KeyDown:
			// Screen rows grow downward.
			g.tilt(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				g.reset()
			case ' ':
				g.tiltX, g.tiltY = 0, 0
			}
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		g.resize(w, h)
	}
	return true
}

// tick advances the ball by dt seconds under the current tilt.
func (g *Game) tick(dt float64) {
	g.ball.Update(g.tiltX, g.tiltY, dt)
	g.frames++
	if c := g.ball.Contacts(); c != 0 {
		g.log.Debug("wall contact", zap.Int("frame", g.frames), zap.Stringer("walls", c))
	}
}

// ballCell maps the ball position to the terminal cell it occupies.
func (g *Game) ballCell() (col, row int) {
	x, y := g.ball.Position()
	w, h, size := g.ball.Field()
	col = min(int(math.Round(x)), int(w-size))
	row = min(int(math.Round(y)), int(h-size))
	return max(col, 0), max(row, 0)
}

func (g *Game) status() string {
	x, y := g.ball.Position()
	vx, vy := g.ball.Velocity()
	return fmt.Sprintf(" tilt (%+.1f, %+.1f)  pos (%.1f, %.1f)  vel (%+.1f, %+.1f)  walls %s  |  arrows tilt  space level  r reset  q quit",
		g.tiltX, g.tiltY, x, y, vx, vy, g.ball.Contacts())
}

func (g *Game) draw() {
	g.screen.Clear()

	style := ballStyle
	if g.ball.Contacts() != 0 {
		style = wallStyle
	}
	col, row := g.ballCell()
	g.screen.SetContent(col, row, ballRune, nil, style)

	statusRow := g.height - statusRows
	for i, r := range []rune(g.status()) {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, statusRow, r, nil, statusStyle)
	}
	g.screen.Show()
}

// Run drives the frame loop until the user quits or ctx is cancelled.
// It does not finalize the screen.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	g.log.Info("play started", zap.Int("width", g.width), zap.Int("height", g.height))
	last := time.Now()
	g.draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !g.handleEvent(ev) {
				g.log.Info("play finished", zap.Int("frames", g.frames))
				return nil
			}

		case now := <-ticker.C:
			g.tick(now.Sub(last).Seconds())
			last = now
			g.draw()
		}
	}
}
