// Package core provides fundamental types and utilities for the snake board.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "fmt"

// Cell is one discrete board position, in grid units.
type Cell struct {
	X, Y int // Column and row
}

// Add returns the cell offset by another cell used as a delta.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four unit moves on the board.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Opposite returns the 180 degree reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether other is the exact reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Delta returns the unit vector for the direction. Rows grow downwards.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid holds the board dimensions in cells. Both axes wrap around.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid of the given size in cells.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center returns the middle cell (rounded down on even sizes).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Contains returns true if c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Wrap maps any cell back onto the board using modular arithmetic per axis.
func (g Grid) Wrap(c Cell) Cell {
	x := c.X % g.Width
	if x < 0 {
		x += g.Width
	}
	y := c.Y % g.Height
	if y < 0 {
		y += g.Height
	}
	return Cell{X: x, Y: y}
}

// Step returns the neighbour of c in direction d. Leaving any edge
// re-enters on the opposite edge in the same row or column.
func (g Grid) Step(c Cell, d Direction) Cell {
	return g.Wrap(c.Add(d.Delta()))
}

// Adjacent reports whether a and b are exactly one step apart, wrap included.
func (g Grid) Adjacent(a, b Cell) bool {
	for _, d := range Directions {
		if g.Step(a, d) == b {
			return true
		}
	}
	return false
}

// Rect represents an axis-aligned area in screen units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CellSet is an unordered set of board cells.
type CellSet map[Cell]struct{}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	s.Add(cells...)
	return s
}

// Add inserts cells into the set.
func (s CellSet) Add(cells ...Cell) {
	for _, c := range cells {
		s[c] = struct{}{}
	}
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of distinct cells.
func (s CellSet) Len() int {
	return len(s)
}
