package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/stonesnake/internal/core"
)

// ErrBoardTooSmall is returned when the stones cannot all fit beside the
// cells they must avoid.
var ErrBoardTooSmall = errors.New("snake: board too small for obstacle count")

// ObstacleSet is a fixed number of stones on distinct cells.
type ObstacleSet struct {
	grid  core.Grid
	count int
	cells []core.Cell
	index core.CellSet
}

// NewObstacleSet creates an unplaced set of count stones.
func NewObstacleSet(grid core.Grid, count int) *ObstacleSet {
	return &ObstacleSet{
		grid:  grid,
		count: count,
		index: core.NewCellSet(),
	}
}

// PlaceAll relocates every stone by rejection sampling: a uniformly random
// cell is kept only if no stone placed in this pass and no cell in avoiding
// already holds it. There is no exhaustive fallback, so the capacity check
// up front is what guarantees termination.
func (o *ObstacleSet) PlaceAll(rng *rand.Rand, avoiding core.CellSet) error {
	if o.count+avoiding.Len() > o.grid.Area() {
		return ErrBoardTooSmall
	}

	o.cells = o.cells[:0]
	o.index = core.NewCellSet()
	for len(o.cells) < o.count {
		c := randomCell(rng, o.grid)
		if o.index.Has(c) || avoiding.Has(c) {
			continue
		}
		o.cells = append(o.cells, c)
		o.index.Add(c)
	}
	return nil
}

// Has reports whether a stone sits on c.
func (o *ObstacleSet) Has(c core.Cell) bool {
	return o.index.Has(c)
}

// Cells returns a copy of the stone positions in placement order.
func (o *ObstacleSet) Cells() []core.Cell {
	out := make([]core.Cell, len(o.cells))
	copy(out, o.cells)
	return out
}

// Len returns the number of placed stones.
func (o *ObstacleSet) Len() int {
	return len(o.cells)
}

// randomCell draws a cell uniformly from the grid.
func randomCell(rng *rand.Rand, g core.Grid) core.Cell {
	return core.Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}
