package snake

import "github.com/vovakirdan/stonesnake/internal/core"

// Snapshot is a read-only copy of the round handed to renderers each tick,
// also used for determinism testing.
type Snapshot struct {
	Tick      uint64
	State     State
	Grid      core.Grid
	Obstacles []core.Cell
	Food      core.Cell
	Body      []core.Cell // Head first
	Direction core.Direction

	// Vacated is the tail cell freed by the last move. Renderers that redraw
	// incrementally may erase just this cell.
	Vacated    core.Cell
	HasVacated bool

	Length    int
	Best      int // Longest snake this session
	Resets    int
	LastReset ResetReason
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	vacated, hasVacated := r.snake.Vacated()
	return Snapshot{
		Tick:       r.tick,
		State:      r.state,
		Grid:       r.grid,
		Obstacles:  r.obstacles.Cells(),
		Food:       r.food.Cell(),
		Body:       r.snake.Body(),
		Direction:  r.snake.Direction(),
		Vacated:    vacated,
		HasVacated: hasVacated,
		Length:     r.snake.Len(),
		Best:       r.best,
		Resets:     r.resets,
		LastReset:  r.lastReset,
	}
}

// EntityKind tags a drawable entity.
type EntityKind int

const (
	EntityVacated EntityKind = iota // Background to restore, drawn first
	EntityObstacle
	EntityFood
	EntitySnakeBody
	EntitySnakeHead
)

// Entity is one drawable cell.
type Entity struct {
	Kind EntityKind
	Cell core.Cell
}

// Entities lists everything to draw in paint order: vacated cell, stones,
// food, body from tail to neck, then the head on top.
func (s Snapshot) Entities() []Entity {
	out := make([]Entity, 0, len(s.Obstacles)+len(s.Body)+2)
	if s.HasVacated {
		out = append(out, Entity{Kind: EntityVacated, Cell: s.Vacated})
	}
	for _, c := range s.Obstacles {
		out = append(out, Entity{Kind: EntityObstacle, Cell: c})
	}
	out = append(out, Entity{Kind: EntityFood, Cell: s.Food})
	for i := len(s.Body) - 1; i > 0; i-- {
		out = append(out, Entity{Kind: EntitySnakeBody, Cell: s.Body[i]})
	}
	if len(s.Body) > 0 {
		out = append(out, Entity{Kind: EntitySnakeHead, Cell: s.Body[0]})
	}
	return out
}
