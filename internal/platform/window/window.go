// Package window runs a round in a desktop window through ebiten, one
// simulation tick per ebiten update.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/stonesnake/internal/config"
	"github.com/vovakirdan/stonesnake/internal/core"
	"github.com/vovakirdan/stonesnake/internal/games/snake"
	"github.com/vovakirdan/stonesnake/internal/platform/window/keymap"
)

type palette struct {
	background color.RGBA
	border     color.RGBA
	food       color.RGBA
	snake      color.RGBA
	obstacle   color.RGBA
	text       color.RGBA
}

func newPalette(p config.PaletteConfig) palette {
	return palette{
		background: config.RGBA(p.Background),
		border:     config.RGBA(p.Border),
		food:       config.RGBA(p.Food),
		snake:      config.RGBA(p.Snake),
		obstacle:   config.RGBA(p.Obstacle),
		text:       config.RGBA(p.Text),
	}
}

// Game implements ebiten.Game on top of a snake round.
type Game struct {
	round  *snake.Round
	cfg    config.SnakeConfig
	colors palette
	logger *log.Logger

	input      core.InputFrame
	pressed    []ebiten.Key
	names      []string
	paused     bool
	hold       int // ticks left before play resumes after a reset
	holdReason snake.ResetReason
	title      string
}

// NewGame wraps round for display with cfg's board and palette.
func NewGame(round *snake.Round, cfg config.SnakeConfig, logger *log.Logger) *Game {
	return &Game{
		round:  round,
		cfg:    cfg,
		colors: newPalette(cfg.Palette),
		logger: logger,
		input:  core.NewInputFrame(),
	}
}

// holdTicks converts the reset pause to a tick count.
func (g *Game) holdTicks() int {
	return g.cfg.Timing.ResetPauseMS * g.cfg.Timing.TickRate / 1000
}

// pollKeys feeds the keys pressed since the last update into the input
// frame. Every direction reaches the round, which drops reverse requests
// one by one, so a reverse key never cancels a valid turn.
func (g *Game) pollKeys() {
	if ebiten.IsWindowBeingClosed() {
		g.input.Set(core.ActionQuit)
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.names = g.names[:0]
	for _, k := range g.pressed {
		g.names = append(g.names, k.String())
	}
	keymap.Fill(&g.input, g.names)

	if g.input.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	g.pollKeys()
	quit := g.input.Has(core.ActionQuit)

	if !quit {
		if g.paused {
			g.input.Clear()
			return nil
		}
		if g.hold > 0 {
			g.hold--
			g.input.Clear()
			return nil
		}
	}

	result := g.round.Tick(g.input)
	g.input.Clear()

	switch result.State {
	case snake.StateQuit:
		return ebiten.Termination
	case snake.StateResetting:
		g.hold = g.holdTicks()
		g.holdReason = result.Reason
	}

	g.updateTitle()
	return nil
}

func (g *Game) updateTitle() {
	snap := g.round.Snapshot()
	title := fmt.Sprintf("Stone Snake | Length: %d | Best: %d", snap.Length, snap.Best)
	if title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
}

// Draw paints the full board every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.background)

	snap := g.round.Snapshot()
	for _, e := range snap.Entities() {
		switch e.Kind {
		case snake.EntityObstacle:
			g.fillCell(screen, e.Cell, g.colors.obstacle, false)
		case snake.EntityFood:
			g.fillCell(screen, e.Cell, g.colors.food, true)
		case snake.EntitySnakeBody, snake.EntitySnakeHead:
			g.fillCell(screen, e.Cell, g.colors.snake, true)
		}
	}

	hud := fmt.Sprintf("Length: %d  Best: %d  Resets: %d", snap.Length, snap.Best, snap.Resets)
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	switch {
	case g.hold > 0:
		g.drawMessage(screen, snake.ResetMessage(g.holdReason))
	case g.paused:
		g.drawMessage(screen, "Paused. Press P to continue")
	}
}

func (g *Game) fillCell(screen *ebiten.Image, c core.Cell, fill color.RGBA, outline bool) {
	size := float32(g.cfg.Board.CellSize)
	x := float32(c.X) * size
	y := float32(c.Y) * size
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	if outline {
		vector.StrokeRect(screen, x, y, size, size, 1, g.colors.border, false)
	}
}

// drawMessage prints text centered using the 6x16 debug font.
func (g *Game) drawMessage(screen *ebiten.Image, text string) {
	w, h := g.cfg.WindowSize()
	tw := len(text) * 6
	boxX := float32(w-tw)/2 - 8
	boxY := float32(h)/2 - 16
	vector.DrawFilledRect(screen, boxX, boxY, float32(tw+16), 32, g.colors.background, false)
	vector.StrokeRect(screen, boxX, boxY, float32(tw+16), 32, 1, g.colors.text, false)
	ebitenutil.DebugPrintAt(screen, text, (w-tw)/2, h/2-8)
}

// Layout keeps the logical screen at the board's pixel size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowSize()
}

// Run opens the window and blocks until the round quits or the window
// is closed.
func Run(round *snake.Round, cfg config.SnakeConfig, logger *log.Logger) error {
	w, h := cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Stone Snake")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Timing.TickRate)

	logger.Info("opening window", "width", w, "height", h, "tps", cfg.Timing.TickRate)
	return ebiten.RunGame(NewGame(round, cfg, logger))
}
