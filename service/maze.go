// Package service implements the application's use cases on top of the
// core maze package and the storage ports in service/i.
package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/Zivica/MazeSolver/domain"
	"github.com/Zivica/MazeSolver/maze"
	"github.com/Zivica/MazeSolver/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 100
)

// Maze manager errors.
var (
	ErrMissingRepo     = errors.New("maze repository is required")
	ErrMissingLogger   = errors.New("logger is required")
	ErrTooBigDimension = errors.New("maze dimension exceeds the configured maximum")
)

// Config holds configuration settings for creating a new MazeManager
// instance.
type Config struct {
	Repo         i.MazeRepo       // Storage for generated mazes.
	Logger       general_i.Logger // Logger for maze lifecycle events.
	MaxDimension int              // Upper bound on width and height. 0 means the default.
}

// MazeManager generates perfect mazes, stores them, and solves them on
// demand.
type MazeManager struct {
	repo         i.MazeRepo
	logger       general_i.Logger
	maxDimension int
}

// NewMazeManager creates a MazeManager with the given configuration.
func NewMazeManager(c *Config) (i.MazeManager, error) {
	if c == nil || c.Repo == nil {
		return nil, ErrMissingRepo
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &MazeManager{
		repo:         c.Repo,
		logger:       c.Logger,
		maxDimension: maxDimension,
	}, nil
}

// Create generates a new perfect maze of the given dimensions, carves
// it with the given seed (0 means a random seed), and stores it. Nil
// start/end fall back to the top-left and bottom-right corners.
func (m *MazeManager) Create(width, height int, seed int64, start, end *maze.CellPosition) (*dmn.Maze, error) {
	if width > m.maxDimension || height > m.maxDimension {
		m.logger.Warning(fmt.Sprintf("rejected maze of size %dx%d, maximum dimension is %d", width, height, m.maxDimension))
		return nil, ErrTooBigDimension
	}

	grid, err := maze.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	startPos := maze.CellPosition{}
	if start != nil {
		startPos = *start
	}
	endPos := maze.CellPosition{Row: height - 1, Col: width - 1}
	if end != nil {
		endPos = *end
	}
	if !grid.InBound(startPos.Row, startPos.Col) || !grid.InBound(endPos.Row, endPos.Col) {
		return nil, maze.ErrInvalidCell
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := maze.NewGenerator(&maze.GeneratorConfig{
		Origin: startPos,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err := gen.Generate(grid); err != nil {
		m.logger.Error(fmt.Sprintf("carving maze: %s", err))
		return nil, err
	}

	record := &dmn.Maze{
		ID:        uuid.New(),
		Grid:      grid,
		Start:     startPos,
		End:       endPos,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.repo.Save(record); err != nil {
		m.logger.Error(fmt.Sprintf("storing maze %s: %s", record.ID, err))
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("created %dx%d maze %s with seed %d", width, height, record.ID, seed))
	return record, nil
}

// ByID retrieves a stored maze by its ID.
func (m *MazeManager) ByID(id uuid.UUID) (*dmn.Maze, error) {
	return m.repo.ByID(id)
}

// Solve runs a full shortest-path search over a stored maze. Nil
// start/end fall back to the maze's stored endpoints.
func (m *MazeManager) Solve(id uuid.UUID, start, end *maze.CellPosition) (*maze.SolveResult, error) {
	record, err := m.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	startPos, endPos := m.resolveEndpoints(record, start, end)
	result, err := maze.Solve(record.Grid, startPos, endPos)
	if err != nil {
		m.logger.Warning(fmt.Sprintf("solving maze %s: %s", id, err))
		return nil, err
	}

	m.logger.Info(fmt.Sprintf("solved maze %s, path length %d, %d cells visited", id, len(result.Path), len(result.Visits)))
	return result, nil
}

// Walk opens a stepwise solve over a stored maze.
func (m *MazeManager) Walk(id uuid.UUID, start, end *maze.CellPosition) (*maze.Walk, error) {
	record, err := m.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	startPos, endPos := m.resolveEndpoints(record, start, end)
	return maze.NewWalk(record.Grid, startPos, endPos)
}

// Discard removes a stored maze.
func (m *MazeManager) Discard(id uuid.UUID) error {
	if err := m.repo.Delete(id); err != nil {
		return err
	}
	m.logger.Info(fmt.Sprintf("discarded maze %s", id))
	return nil
}

// resolveEndpoints substitutes the maze's stored endpoints for nil
// overrides.
func (m *MazeManager) resolveEndpoints(record *dmn.Maze, start, end *maze.CellPosition) (maze.CellPosition, maze.CellPosition) {
	startPos := record.Start
	if start != nil {
		startPos = *start
	}
	endPos := record.End
	if end != nil {
		endPos = *end
	}
	return startPos, endPos
}
