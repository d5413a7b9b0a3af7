package maze

import "errors"

// Solver-related errors.
var (
	ErrUnreachable = errors.New("no passage connects start to end")
	ErrNoPath      = errors.New("end cell was never visited")
)

// Visit records one step of the breadth-first traversal: a cell at the
// moment it is first reached, together with the cell it was reached
// from. Parent is nil only for the start cell.
type Visit struct {
	Cell   CellPosition
	Parent *CellPosition
}

// SolveResult holds the outcome of a completed solve: the shortest path
// from start to end inclusive, and the full visitation order the search
// produced along the way.
type SolveResult struct {
	Path   []CellPosition
	Visits []Visit
}

// Walk is a lazy, pull-based breadth-first traversal of a grid's
// passage graph. Each call to Next advances the search just far enough
// to visit one more cell, so a consumer can drive the traversal at its
// own pace; the result is identical whether the walk is drained
// instantly or stepped with arbitrary delays.
//
// The walk stops as soon as the end cell is discovered (marked
// visited), not when it is dequeued, keeping the exposed visitation
// sequence as short as possible. A Walk is forward-only and cannot be
// restarted; abandoning it part-way holds no resources beyond the walk
// value itself.
type Walk struct {
	grid    *Grid
	start   CellPosition
	end     CellPosition
	queue   []CellPosition
	visited [][]bool
	parent  map[CellPosition]CellPosition
	moves   []Move // pending neighbor moves of the cell being expanded
	cursor  int
	started bool
	reached bool
	done    bool
}

// NewWalk prepares a stepwise breadth-first search over the grid's
// passage graph. It returns ErrInvalidCell if start or end lies outside
// the grid. The grid must not be mutated while the walk is live.
func NewWalk(g *Grid, start, end CellPosition) (*Walk, error) {
	if !g.InBound(start.Row, start.Col) || !g.InBound(end.Row, end.Col) {
		return nil, ErrInvalidCell
	}

	visited := make([][]bool, g.Height())
	for i := range visited {
		visited[i] = make([]bool, g.Width())
	}

	return &Walk{
		grid:    g,
		start:   start,
		end:     end,
		visited: visited,
		parent:  make(map[CellPosition]CellPosition),
	}, nil
}

// Next advances the traversal to its next visitation event. It returns
// false once the walk has finished, either because the end cell was
// discovered or because the queue drained without reaching it.
func (w *Walk) Next() (Visit, bool) {
	if w.done {
		return Visit{}, false
	}

	if !w.started {
		w.started = true
		w.visited[w.start.Row][w.start.Col] = true
		w.queue = append(w.queue, w.start)
		if w.start == w.end {
			w.reached = true
			w.done = true
		}
		return Visit{Cell: w.start}, true
	}

	for {
		if w.cursor >= len(w.moves) {
			if len(w.queue) == 0 {
				w.done = true
				return Visit{}, false
			}
			current := w.queue[0]
			w.queue = w.queue[1:]
			w.moves = w.grid.Neighbors(current)
			w.cursor = 0
			continue
		}

		move := w.moves[w.cursor]
		w.cursor++

		if w.visited[move.To.Row][move.To.Col] {
			continue
		}
		blocked, err := w.grid.HasWall(move.From, move.To)
		if err != nil || blocked {
			continue
		}

		w.visited[move.To.Row][move.To.Col] = true
		w.parent[move.To] = move.From
		w.queue = append(w.queue, move.To)

		if move.To == w.end {
			w.reached = true
			w.done = true
		}

		from := move.From
		return Visit{Cell: move.To, Parent: &from}, true
	}
}

// Reached reports whether the walk has discovered the end cell.
func (w *Walk) Reached() bool {
	return w.reached
}

// Path reconstructs the shortest path from start to end by following
// parent links backward from the end. If the walk has not finished yet
// it is drained first. Returns ErrNoPath if the end was never visited.
func (w *Walk) Path() ([]CellPosition, error) {
	for !w.done {
		if _, ok := w.Next(); !ok {
			break
		}
	}
	if !w.reached {
		return nil, ErrNoPath
	}

	var path []CellPosition
	current := w.end
	for current != w.start {
		path = append(path, current)
		current = w.parent[current]
	}
	path = append(path, w.start)

	// Reverse into start→end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Solve runs a full breadth-first search from start to end over the
// grid's passage graph and returns the shortest path together with the
// complete visitation order. It returns ErrInvalidCell if either cell
// is out of bounds and ErrUnreachable if no passage connects them,
// which cannot happen for a maze carved by Generator but is signaled
// cleanly for arbitrary grids with residual walls.
func Solve(g *Grid, start, end CellPosition) (*SolveResult, error) {
	walk, err := NewWalk(g, start, end)
	if err != nil {
		return nil, err
	}

	var visits []Visit
	for {
		visit, ok := walk.Next()
		if !ok {
			break
		}
		visits = append(visits, visit)
	}

	if !walk.Reached() {
		return nil, ErrUnreachable
	}

	path, err := walk.Path()
	if err != nil {
		return nil, err
	}

	return &SolveResult{Path: path, Visits: visits}, nil
}
