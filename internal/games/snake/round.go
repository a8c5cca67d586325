package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stonesnake/internal/config"
	"github.com/vovakirdan/stonesnake/internal/core"
)

// State is the round controller state.
type State int

const (
	StateRunning   State = iota
	StateResetting       // Transient: reported by the tick that reset the board
	StateQuit            // Terminal
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateResetting:
		return "resetting"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ResetReason says why a round was reset.
type ResetReason string

const (
	ReasonNone      ResetReason = ""
	ReasonObstacle  ResetReason = "obstacle"
	ReasonSelf      ResetReason = "self"
	ReasonBoardFull ResetReason = "board_full"
)

// TickResult is returned by Round.Tick after each simulation step.
type TickResult struct {
	State  State
	Ate    bool        // Food was eaten this tick
	Reason ResetReason // Set when State is StateResetting
}

// Round owns the snake, the stones and the food and advances them one tick
// at a time. It is not safe for concurrent use; frontends drive it from a
// single loop.
type Round struct {
	grid          core.Grid
	obstacleCount int
	rng           *rand.Rand
	logger        *log.Logger

	snake     *Snake
	obstacles *ObstacleSet
	food      *Food

	state     State
	tick      uint64
	resets    int
	best      int
	lastReset ResetReason
}

// NewRound creates a running round on the configured board. The logger may
// be nil.
func NewRound(cfg config.SnakeConfig, seed int64, logger *log.Logger) (*Round, error) {
	grid := core.NewGrid(cfg.Board.Width, cfg.Board.Height)
	// Stones, the spawn cell, the cell ahead of it and the food.
	if cfg.Obstacles.Count < 0 || cfg.Obstacles.Count+3 > grid.Area() {
		return nil, fmt.Errorf("%w: %d stones on %dx%d", ErrBoardTooSmall, cfg.Obstacles.Count, grid.Width, grid.Height)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Round{
		grid:          grid,
		obstacleCount: cfg.Obstacles.Count,
		rng:           rand.New(rand.NewSource(seed)),
		logger:        logger,
	}
	if err := r.reinit(); err != nil {
		return nil, err
	}
	r.best = r.snake.Len()
	r.logger.Info("round started", "board", fmt.Sprintf("%dx%d", grid.Width, grid.Height), "stones", r.obstacleCount, "seed", seed)
	return r, nil
}

// reinit replaces the snake, the stones and the food wholesale.
func (r *Round) reinit() error {
	r.snake = NewSnake(r.grid)
	r.obstacles = NewObstacleSet(r.grid, r.obstacleCount)
	if err := r.snake.Reset(r.obstacles, r.rng); err != nil {
		return err
	}
	r.food = NewFood(r.grid)
	return r.food.Relocate(r.rng, r.occupied())
}

// occupied is the union of the snake body and every stone.
func (r *Round) occupied() core.CellSet {
	set := core.NewCellSet(r.snake.body...)
	set.Add(r.obstacles.cells...)
	return set
}

// Tick advances the round by one step:
//  1. a quit request ends the round before anything moves;
//  2. each direction request is checked against the heading in arrival
//     order, the last accepted one is applied;
//  3. a candidate head hitting a stone or the body resets the round;
//  4. otherwise the snake moves, growing and relocating the food if it
//     lands on it.
func (r *Round) Tick(in core.InputFrame) TickResult {
	if r.state == StateQuit {
		return TickResult{State: StateQuit}
	}
	if in.Has(core.ActionQuit) {
		r.state = StateQuit
		r.logger.Info("quit", "tick", r.tick, "length", r.snake.Len(), "best", r.best)
		return TickResult{State: StateQuit}
	}

	r.tick++
	for _, d := range in.Directions() {
		r.snake.SetPendingDirection(d)
	}
	r.snake.ApplyPending()

	head := r.snake.NextHead()
	switch {
	case r.obstacles.Has(head):
		return r.reset(ReasonObstacle)
	case r.snake.CheckSelfCollision(head):
		return r.reset(ReasonSelf)
	}

	ate := head == r.food.Cell()
	if ate {
		r.snake.Grow()
	}
	r.snake.Advance()

	if !ate {
		return TickResult{State: StateRunning}
	}

	r.best = max(r.best, r.snake.Len())
	r.logger.Debug("food eaten", "tick", r.tick, "at", head, "length", r.snake.Len())
	if err := r.food.Relocate(r.rng, r.occupied()); err != nil {
		r.logger.Warn("board full", "error", err, "length", r.snake.Len())
		return r.reset(ReasonBoardFull)
	}
	return TickResult{State: StateRunning, Ate: true}
}

// reset discards the board and starts over. The resetting state collapses
// back to running before returning.
func (r *Round) reset(reason ResetReason) TickResult {
	r.state = StateResetting
	r.resets++
	r.lastReset = reason
	r.logger.Info("round reset", "reason", string(reason), "tick", r.tick, "length", r.snake.Len(), "resets", r.resets)

	if err := r.reinit(); err != nil {
		// Unreachable while the capacity check in NewRound holds.
		r.logger.Error("reset failed", "error", err)
	}
	r.state = StateRunning
	return TickResult{State: StateResetting, Reason: reason}
}

// State returns the controller state.
func (r *Round) State() State {
	return r.state
}

// Grid returns the board dimensions.
func (r *Round) Grid() core.Grid {
	return r.grid
}
