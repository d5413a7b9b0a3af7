// Package domain holds the records the service and storage layers
// exchange.
package domain

import (
	"time"

	"github.com/Zivica/MazeSolver/maze"
	"github.com/google/uuid"
)

// Maze is a generated maze instance addressable by ID. Grid is carved
// once at creation and treated as read-only afterward.
type Maze struct {
	ID        uuid.UUID
	Grid      *maze.Grid
	Start     maze.CellPosition
	End       maze.CellPosition
	Seed      int64
	CreatedAt time.Time
}
