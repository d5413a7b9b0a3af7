/*
Package maze provides tools for creating, generating, and solving
rectangular mazes.

It defines the Grid structure, composed of Cell objects that track wall
state on all four sides. Passages between cells are carved by removing
the shared wall symmetrically, so the wall relation is always consistent
between neighbors.

The package includes randomized maze generation with iterative
depth-first backtracking, a breadth-first shortest-path solver with a
pull-based stepwise interface for incremental display, and ASCII
visualization of the maze.
*/
package maze

import (
	"errors"
	"strings"
)

// Grid-related errors.
var (
	ErrInvalidDimension = errors.New("maze dimensions must be positive")
	ErrNotAdjacent      = errors.New("cells are not grid-adjacent")
	ErrInvalidCell      = errors.New("cell is out of maze bounds")
)

// Grid is the authoritative wall and connectivity state of a
// width×height maze. It is mutable only through RemoveWall; the solver
// and any presentation layer treat it as read-only.
type Grid struct {
	width  int
	height int
	cells  [][]*Cell
}

// NewGrid initializes a grid of the given dimensions with every cell
// fully walled and isolated.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	cells := make([][]*Cell, height)
	for i := range cells {
		cells[i] = make([]*Cell, width)
		for j := range cells[i] {
			cells[i][j] = newCell()
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether the given coordinates lie inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellAt returns the cell at the given position, or nil if the position
// is out of bounds.
func (g *Grid) CellAt(pos CellPosition) *Cell {
	if !g.InBound(pos.Row, pos.Col) {
		return nil
	}
	return g.cells[pos.Row][pos.Col]
}

// Neighbors finds all in-bounds moves from a given cell position,
// regardless of wall state. The result is always ordered North, South,
// East, West; both the generator and the solver rely on this order for
// reproducibility.
func (g *Grid) Neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range directionOrder {
		neighbor := pos.Shift(dir)
		if g.InBound(neighbor.Row, neighbor.Col) {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// adjacency returns the direction leading from a to b, or
// ErrNotAdjacent if the cells are out of bounds or not grid-adjacent.
func (g *Grid) adjacency(a, b CellPosition) (Direction, error) {
	if !g.InBound(a.Row, a.Col) || !g.InBound(b.Row, b.Col) {
		return 0, ErrNotAdjacent
	}
	for _, dir := range directionOrder {
		if a.Shift(dir) == b {
			return dir, nil
		}
	}
	return 0, ErrNotAdjacent
}

// HasWall reports whether a wall blocks direct passage between the
// grid-adjacent cells a and b. Returns ErrNotAdjacent for any other
// pair.
func (g *Grid) HasWall(a, b CellPosition) (bool, error) {
	dir, err := g.adjacency(a, b)
	if err != nil {
		return false, err
	}
	return g.cells[a.Row][a.Col].HasWall(dir), nil
}

// RemoveWall carves a passage between the grid-adjacent cells a and b,
// clearing the wall flag on both sides so the wall relation stays
// symmetric. Returns ErrNotAdjacent for any other pair.
func (g *Grid) RemoveWall(a, b CellPosition) error {
	dir, err := g.adjacency(a, b)
	if err != nil {
		return err
	}
	g.cells[a.Row][a.Col].setWall(dir, false)
	g.cells[b.Row][b.Col].setWall(dir.Opposite(), false)
	return nil
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.width) + "\n"

	for row := 0; row < g.height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.width; col++ {
			cellRow += "   "
			if g.cells[row][col].EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.width; col++ {
			if g.cells[row][col].SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
