// Package mazeapi provides structures and utilities for managing maze
// creation and solving requests over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/Zivica/MazeSolver/domain"
	"github.com/Zivica/MazeSolver/maze"
)

// CreateMazeRequest represents a request to generate a new maze.
// Omitted dimensions fall back to the server defaults; seed 0 lets the
// server pick one.
type CreateMazeRequest struct {
	Width  int                `json:"width" binding:"omitempty,gt=0"`
	Height int                `json:"height" binding:"omitempty,gt=0"`
	Seed   int64              `json:"seed"`
	Start  *maze.CellPosition `json:"start"`
	End    *maze.CellPosition `json:"end"`
}

// CellResponse describes the wall state of a single cell. True means
// the wall is present.
type CellResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// MazeResponse represents a stored maze: its identity, endpoints, and
// full wall state for drawing.
type MazeResponse struct {
	ID        string            `json:"id"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Seed      int64             `json:"seed"`
	Start     maze.CellPosition `json:"start"`
	End       maze.CellPosition `json:"end"`
	Cells     [][]CellResponse  `json:"cells"`
	CreatedAt time.Time         `json:"created_at"`
}

// VisitResponse represents one visitation event of the solver. Parent
// is absent for the start cell.
type VisitResponse struct {
	Cell   maze.CellPosition  `json:"cell"`
	Parent *maze.CellPosition `json:"parent,omitempty"`
}

// SolutionResponse represents a completed solve: the shortest path and
// the visitation order that produced it.
type SolutionResponse struct {
	Path   []maze.CellPosition `json:"path"`
	Visits []VisitResponse     `json:"visits"`
}

// solveQuery carries optional start/end overrides for solve requests.
type solveQuery struct {
	StartRow *int `form:"start_row"`
	StartCol *int `form:"start_col"`
	EndRow   *int `form:"end_row"`
	EndCol   *int `form:"end_col"`
}

// endpoints converts the query overrides into optional cell positions.
// A position is present only when both of its coordinates are.
func (q *solveQuery) endpoints() (start, end *maze.CellPosition) {
	if q.StartRow != nil && q.StartCol != nil {
		start = &maze.CellPosition{Row: *q.StartRow, Col: *q.StartCol}
	}
	if q.EndRow != nil && q.EndCol != nil {
		end = &maze.CellPosition{Row: *q.EndRow, Col: *q.EndCol}
	}
	return start, end
}

// newMazeResponse maps a stored maze onto its transport representation.
func newMazeResponse(record *dmn.Maze) *MazeResponse {
	cells := make([][]CellResponse, record.Grid.Height())
	for row := range cells {
		cells[row] = make([]CellResponse, record.Grid.Width())
		for col := range cells[row] {
			cell := record.Grid.CellAt(maze.CellPosition{Row: row, Col: col})
			cells[row][col] = CellResponse{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}

	return &MazeResponse{
		ID:        record.ID.String(),
		Width:     record.Grid.Width(),
		Height:    record.Grid.Height(),
		Seed:      record.Seed,
		Start:     record.Start,
		End:       record.End,
		Cells:     cells,
		CreatedAt: record.CreatedAt,
	}
}

// newVisitResponse maps a solver visitation event onto its transport
// representation.
func newVisitResponse(visit maze.Visit) VisitResponse {
	return VisitResponse{Cell: visit.Cell, Parent: visit.Parent}
}

// newSolutionResponse maps a solve result onto its transport
// representation.
func newSolutionResponse(result *maze.SolveResult) *SolutionResponse {
	visits := make([]VisitResponse, len(result.Visits))
	for i, visit := range result.Visits {
		visits[i] = newVisitResponse(visit)
	}
	return &SolutionResponse{Path: result.Path, Visits: visits}
}
