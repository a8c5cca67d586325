// Package snake implements the stone snake round: a wrapping grid, a snake
// that grows on food, and a fixed number of stones that end the round on
// contact.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/stonesnake/internal/core"
)

// Snake is the player's body plus its steering state.
type Snake struct {
	grid       core.Grid
	body       []core.Cell // Head at index 0
	length     int
	direction  core.Direction
	pending    core.Direction // Buffered direction for next move
	hasPending bool
	growing    bool // If true, don't remove tail on next move

	vacated    core.Cell // Tail cell dropped by the last advance
	hasVacated bool
}

// NewSnake creates a length 1 snake at the grid center facing right.
func NewSnake(grid core.Grid) *Snake {
	s := &Snake{grid: grid}
	s.respawn()
	return s
}

func (s *Snake) respawn() {
	s.body = []core.Cell{s.grid.Center()}
	s.length = 1
	s.direction = core.DirRight
	s.hasPending = false
	s.growing = false
	s.hasVacated = false
}

// Reset puts the snake back to its spawn state and relocates every stone in
// obstacles around it.
func (s *Snake) Reset(obstacles *ObstacleSet, rng *rand.Rand) error {
	s.respawn()
	return obstacles.PlaceAll(rng, s.spawnZone())
}

// spawnZone is the body plus the first cell the head will enter, so a fresh
// round cannot end on its first tick.
func (s *Snake) spawnZone() core.CellSet {
	zone := core.NewCellSet(s.body...)
	zone.Add(s.NextHead())
	return zone
}

// SetPendingDirection buffers d for the next advance. A request for the exact
// reverse of the current heading is discarded and false is returned.
func (s *Snake) SetPendingDirection(d core.Direction) bool {
	if s.direction.IsOpposite(d) {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// ApplyPending turns the snake to the buffered direction, if any.
func (s *Snake) ApplyPending() {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}
}

// NextHead returns the cell the head would enter on the current heading.
// The body is not modified.
func (s *Snake) NextHead() core.Cell {
	return s.grid.Step(s.body[0], s.direction)
}

// Advance applies the pending direction and moves one cell. The tail is
// dropped unless growth was flagged, in which case length grows by one.
// It returns the new head; collisions are the caller's concern.
func (s *Snake) Advance() core.Cell {
	s.ApplyPending()
	head := s.NextHead()

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growing {
		s.growing = false
		s.length++
		s.hasVacated = false
		return head
	}

	s.vacated = s.body[len(s.body)-1]
	s.hasVacated = true
	s.body = s.body[:len(s.body)-1]
	return head
}

// CheckSelfCollision reports whether head hits the body as it stands before
// the move. The tail is exempt when it is about to be vacated this tick.
func (s *Snake) CheckSelfCollision(head core.Cell) bool {
	cells := s.body
	if !s.growing {
		cells = cells[:len(cells)-1]
	}
	for _, c := range cells {
		if c == head {
			return true
		}
	}
	return false
}

// Grow flags the next Advance to keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the length counter.
func (s *Snake) Len() int {
	return s.length
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the buffered direction, if one is waiting.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Growing reports whether the next advance keeps the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// Vacated returns the tail cell released by the last advance.
func (s *Snake) Vacated() (core.Cell, bool) {
	return s.vacated, s.hasVacated
}

// Occupies checks if the snake covers the given cell.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
