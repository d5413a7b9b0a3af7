package i

import (
	"github.com/Zivica/MazeSolver/domain"
	"github.com/google/uuid"
)

// MazeRepo handles the storage of generated maze instances.
type MazeRepo interface {
	// Save stores a maze, replacing any existing maze with the same ID.
	Save(*domain.Maze) error

	// ByID retrieves a maze by its ID.
	ByID(uuid.UUID) (*domain.Maze, error)

	// Delete removes a maze by its ID.
	Delete(uuid.UUID) error
}
