package core

// Color is a palette role for a screen glyph. Frontends map roles to
// concrete colours from the configured palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBorder
	ColorText
	ColorFood
	ColorSnake
	ColorSnakeHead
	ColorObstacle
)

func (c Color) String() string {
	switch c {
	case ColorBorder:
		return "border"
	case ColorText:
		return "text"
	case ColorFood:
		return "food"
	case ColorSnake:
		return "snake"
	case ColorSnakeHead:
		return "snake_head"
	case ColorObstacle:
		return "obstacle"
	default:
		return "default"
	}
}
