// Package repo provides storage implementations for the service layer
// ports. Maze state is process-local only; nothing here survives a
// restart.
package repo

import (
	"errors"
	"sync"

	dmn "github.com/Zivica/MazeSolver/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound is returned when no maze exists for the given ID.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles in-memory persistence of maze instances. Safe for
// concurrent use by the HTTP handlers.
type MazeRepo struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*dmn.Maze
}

// NewMazeRepo creates an empty in-memory maze repository.
func NewMazeRepo() *MazeRepo {
	return &MazeRepo{
		mazes: make(map[uuid.UUID]*dmn.Maze),
	}
}

// Save inserts or replaces a maze in the repository.
func (r *MazeRepo) Save(m *dmn.Maze) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mazes[m.ID] = m
	return nil
}

// ByID retrieves a maze by its ID. Returns ErrMazeNotFound if the maze
// does not exist.
func (r *MazeRepo) ByID(id uuid.UUID) (*dmn.Maze, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return m, nil
}

// Delete removes a maze by its ID. Returns ErrMazeNotFound if the maze
// does not exist.
func (r *MazeRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.mazes[id]; !ok {
		return ErrMazeNotFound
	}
	delete(r.mazes, id)
	return nil
}
