package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/stonesnake/internal/core"
)

// ErrNoFreeCell is returned when every cell is forbidden to the food.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Food is the single edible cell of a round. It is moved, never recreated,
// when eaten.
type Food struct {
	grid core.Grid
	cell core.Cell
}

// NewFood creates food for the given grid. Call Relocate before use.
func NewFood(grid core.Grid) *Food {
	return &Food{grid: grid}
}

// Relocate rejection-samples a new cell outside forbidden (the snake body
// and every stone).
func (f *Food) Relocate(rng *rand.Rand, forbidden core.CellSet) error {
	if forbidden.Len() >= f.grid.Area() {
		return ErrNoFreeCell
	}
	for {
		c := randomCell(rng, f.grid)
		if !forbidden.Has(c) {
			f.cell = c
			return nil
		}
	}
}

// Cell returns the food position.
func (f *Food) Cell() core.Cell {
	return f.cell
}
