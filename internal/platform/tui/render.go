package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stonesnake/internal/config"
	"github.com/vovakirdan/stonesnake/internal/core"
)

// Styles maps palette roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds styles from the configured palette. Every role shares the
// palette background so the board reads as one surface.
func NewStyles(p config.PaletteConfig) Styles {
	base := lipgloss.NewStyle().Background(lipgloss.Color(p.Background))
	fg := func(hex string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(hex))
	}
	return Styles{
		core.ColorDefault:   base,
		core.ColorBorder:    fg(p.Border),
		core.ColorText:      fg(p.Text),
		core.ColorFood:      fg(p.Food).Bold(true),
		core.ColorSnake:     fg(p.Snake),
		core.ColorSnakeHead: fg(p.Snake).Bold(true),
		core.ColorObstacle:  fg(p.Obstacle),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
