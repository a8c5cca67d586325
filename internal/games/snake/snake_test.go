package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/stonesnake/internal/core"
)

// place puts s on the given body, head first, heading dir.
func place(s *Snake, dir core.Direction, body ...core.Cell) {
	s.body = append([]core.Cell(nil), body...)
	s.length = len(body)
	s.direction = dir
	s.hasPending = false
	s.growing = false
	s.hasVacated = false
}

func TestNewSnakeSpawn(t *testing.T) {
	s := NewSnake(core.NewGrid(32, 24))

	if s.Len() != 1 || len(s.Body()) != 1 {
		t.Fatalf("new snake should have length 1, got %d (%d cells)", s.Len(), len(s.Body()))
	}
	if s.Head() != (core.Cell{X: 16, Y: 12}) {
		t.Errorf("Head() = %v, expected (16,12)", s.Head())
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if _, ok := s.Pending(); ok {
		t.Error("new snake should have no pending direction")
	}
}

func TestSetPendingDirectionRejectsOnlyReversal(t *testing.T) {
	grid := core.NewGrid(10, 10)

	for _, current := range core.Directions {
		for _, requested := range core.Directions {
			s := NewSnake(grid)
			s.direction = current

			accepted := s.SetPendingDirection(requested)
			pending, hasPending := s.Pending()

			if requested == current.Opposite() {
				if accepted || hasPending {
					t.Errorf("heading %v: reversal to %v should be discarded", current, requested)
				}
				continue
			}
			if !accepted || !hasPending || pending != requested {
				t.Errorf("heading %v: request %v should be buffered, got %v/%v", current, requested, pending, hasPending)
			}
		}
	}
}

func TestPendingDirectionAppliedOnAdvance(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10))
	s.SetPendingDirection(core.DirDown)

	if s.Direction() != core.DirRight {
		t.Fatal("buffering must not turn the snake before it moves")
	}

	head := s.Advance()
	if head != (core.Cell{X: 5, Y: 6}) {
		t.Errorf("Advance() = %v, expected (5,6)", head)
	}
	if s.Direction() != core.DirDown {
		t.Errorf("Direction() = %v, expected down", s.Direction())
	}
	if _, ok := s.Pending(); ok {
		t.Error("Advance() should clear the pending slot")
	}
}

func TestAdvanceMovesAndDropsTail(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10))
	place(s, core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5}, core.Cell{X: 3, Y: 5})

	s.Advance()

	expected := []core.Cell{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	body := s.Body()
	for i := range expected {
		if body[i] != expected[i] {
			t.Fatalf("Body() = %v, expected %v", body, expected)
		}
	}
	if v, ok := s.Vacated(); !ok || v != (core.Cell{X: 3, Y: 5}) {
		t.Errorf("Vacated() = %v, %v, expected (3,5), true", v, ok)
	}
}

func TestGrowRetainsTail(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10))
	s.Grow()

	if !s.Growing() {
		t.Fatal("Grow() should set the growth flag")
	}
	s.Advance()

	if s.Len() != 2 || len(s.Body()) != 2 {
		t.Errorf("length after growth = %d (%d cells), expected 2", s.Len(), len(s.Body()))
	}
	if s.Growing() {
		t.Error("Advance() should consume the growth flag")
	}
	if _, ok := s.Vacated(); ok {
		t.Error("growing move vacates nothing")
	}

	// Growth is permanent
	s.Advance()
	if s.Len() != 2 || len(s.Body()) != 2 {
		t.Errorf("length after plain move = %d, expected 2", s.Len())
	}
}

func TestLengthMatchesBodyAfterEveryAdvance(t *testing.T) {
	grid := core.NewGrid(8, 6)
	s := NewSnake(grid)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		s.SetPendingDirection(core.Directions[rng.Intn(len(core.Directions))])
		if rng.Intn(5) == 0 {
			s.Grow()
		}
		s.Advance()

		body := s.Body()
		if len(body) != s.Len() {
			t.Fatalf("step %d: len(body) = %d, length = %d", i, len(body), s.Len())
		}
		for j := 1; j < len(body); j++ {
			if !grid.Adjacent(body[j-1], body[j]) {
				t.Fatalf("step %d: cells %v and %v are not adjacent", i, body[j-1], body[j])
			}
		}
	}
}

func TestCheckSelfCollision(t *testing.T) {
	grid := core.NewGrid(10, 10)

	// 2x2 square, head (5,5), tail (5,6)
	square := []core.Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}

	tests := []struct {
		name     string
		body     []core.Cell
		growing  bool
		head     core.Cell
		expected bool
	}{
		{"free cell", square, false, core.Cell{X: 4, Y: 5}, false},
		{"tail about to be vacated", square, false, core.Cell{X: 5, Y: 6}, false},
		{"tail kept by growth", square, true, core.Cell{X: 5, Y: 6}, true},
		{"mid body", square, false, core.Cell{X: 6, Y: 6}, true},
		{"single cell snake", []core.Cell{{X: 5, Y: 5}}, false, core.Cell{X: 5, Y: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(grid)
			place(s, core.DirLeft, tc.body...)
			s.growing = tc.growing

			if got := s.CheckSelfCollision(tc.head); got != tc.expected {
				t.Errorf("CheckSelfCollision(%v) = %v, expected %v", tc.head, got, tc.expected)
			}
		})
	}
}

func TestResetRestoresSpawnAndMovesStones(t *testing.T) {
	grid := core.NewGrid(10, 10)
	rng := rand.New(rand.NewSource(3))
	obstacles := NewObstacleSet(grid, 12)

	s := NewSnake(grid)
	place(s, core.DirUp, core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2}, core.Cell{X: 1, Y: 3})
	s.SetPendingDirection(core.DirLeft)
	s.Grow()

	if err := s.Reset(obstacles, rng); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if s.Len() != 1 || s.Head() != grid.Center() || s.Direction() != core.DirRight {
		t.Errorf("Reset() left len=%d head=%v dir=%v", s.Len(), s.Head(), s.Direction())
	}
	if _, ok := s.Pending(); ok || s.Growing() {
		t.Error("Reset() should clear pending direction and growth")
	}
	if obstacles.Len() != 12 {
		t.Fatalf("Reset() placed %d stones, expected 12", obstacles.Len())
	}
	if obstacles.Has(s.Head()) || obstacles.Has(s.NextHead()) {
		t.Error("stones must avoid the spawn cell and the cell ahead of it")
	}
}
