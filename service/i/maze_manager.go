package i

import (
	"github.com/Zivica/MazeSolver/domain"
	"github.com/Zivica/MazeSolver/maze"
	"github.com/google/uuid"
)

// MazeManager creates, retrieves, solves, and discards maze instances.
type MazeManager interface {
	// Create generates a new perfect maze of the given dimensions.
	// Seed 0 means a random seed; nil start/end fall back to the
	// top-left and bottom-right corners.
	Create(width, height int, seed int64, start, end *maze.CellPosition) (*domain.Maze, error)

	// ByID retrieves a maze by its ID.
	ByID(uuid.UUID) (*domain.Maze, error)

	// Solve runs a full shortest-path search over a stored maze.
	// Nil start/end fall back to the maze's stored endpoints.
	Solve(id uuid.UUID, start, end *maze.CellPosition) (*maze.SolveResult, error)

	// Walk opens a stepwise solve over a stored maze for consumers
	// that drive the search one visitation event at a time.
	Walk(id uuid.UUID, start, end *maze.CellPosition) (*maze.Walk, error)

	// Discard removes a stored maze.
	Discard(uuid.UUID) error
}
