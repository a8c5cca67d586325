package snake

import (
	"fmt"

	"github.com/vovakirdan/stonesnake/internal/core"
)

const (
	cellCols  = 2 // Terminal columns per board cell, keeps cells roughly square
	hudHeight = 1
)

// RequiredSize returns the terminal size needed to draw the board with its
// border and HUD.
func RequiredSize(g core.Grid) (int, int) {
	return g.Width*cellCols + 2, g.Height + 2 + hudHeight
}

// Render draws the snapshot into the screen buffer. It always redraws the
// whole board, so vacated cells need no special handling.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	needW, needH := RequiredSize(snap.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		DrawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	renderHUD(dst, snap)

	boxX := (dst.Width() - needW) / 2
	dst.DrawBox(core.NewRect(boxX, hudHeight, needW, snap.Grid.Height+2), core.ColorBorder)
	originX, originY := boxX+1, hudHeight+1

	for _, e := range snap.Entities() {
		x := originX + e.Cell.X*cellCols
		y := originY + e.Cell.Y
		switch e.Kind {
		case EntityVacated:
			// Full redraw, nothing to erase.
		case EntityObstacle:
			drawCell(dst, x, y, "##", core.ColorObstacle)
		case EntityFood:
			drawCell(dst, x, y, "<>", core.ColorFood)
		case EntitySnakeBody:
			drawCell(dst, x, y, "oo", core.ColorSnake)
		case EntitySnakeHead:
			drawCell(dst, x, y, "@@", core.ColorSnakeHead)
		}
	}
}

func drawCell(dst *core.Screen, x, y int, glyph string, c core.Color) {
	dst.DrawText(x, y, glyph, c)
}

// renderHUD draws the top status line.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Stone Snake  Length: %d  Best: %d  Resets: %d", snap.Length, snap.Best, snap.Resets)
	dst.DrawText(0, 0, hud, core.ColorText)
}

// ResetMessage returns the overlay line shown while the board is held
// after a reset.
func ResetMessage(reason ResetReason) string {
	switch reason {
	case ReasonObstacle:
		return "Crashed into a stone!"
	case ReasonSelf:
		return "Bit your own tail!"
	case ReasonBoardFull:
		return "Board full!"
	default:
		return "New round"
	}
}

// DrawOverlay draws a centered two-line message box.
func DrawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBorder)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorText)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorText)
}
