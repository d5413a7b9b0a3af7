package maze

import (
	"math/rand"
	"time"
)

// GeneratorConfig holds configuration settings for creating a new
// Generator instance.
type GeneratorConfig struct {
	Origin CellPosition // Cell the carving starts from. Defaults to (0,0).
	Rand   *rand.Rand   // Randomness source. Nil means time-seeded.
}

// Generator carves a perfect maze into a grid using iterative
// randomized depth-first backtracking. The passage graph it produces is
// a spanning tree over all cells: connected, cycle-free, with exactly
// width*height - 1 removed walls.
type Generator struct {
	origin CellPosition
	rng    *rand.Rand
}

// NewGenerator creates a Generator with the given configuration. A nil
// config uses origin (0,0) and a time-seeded randomness source.
func NewGenerator(c *GeneratorConfig) *Generator {
	gen := &Generator{}
	if c != nil {
		gen.origin = c.Origin
		gen.rng = c.Rand
	}
	if gen.rng == nil {
		gen.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return gen
}

// Generate carves passages into the grid in place. It returns
// ErrInvalidCell if the configured origin lies outside the grid.
//
// The carving keeps an explicit stack instead of recursing, so call
// depth stays constant regardless of grid size. Each iteration peeks
// the top cell, collects its unvisited neighbors, and either carves
// toward one chosen uniformly at random or backtracks by popping.
// The loop ends when the stack empties, at which point every cell has
// been visited exactly once.
func (gen *Generator) Generate(g *Grid) error {
	if !g.InBound(gen.origin.Row, gen.origin.Col) {
		return ErrInvalidCell
	}

	visited := make([][]bool, g.Height())
	for i := range visited {
		visited[i] = make([]bool, g.Width())
	}

	stack := []CellPosition{gen.origin}
	visited[gen.origin.Row][gen.origin.Col] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var unvisited []Move
		for _, move := range g.Neighbors(current) {
			if !visited[move.To.Row][move.To.Col] {
				unvisited = append(unvisited, move)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		move := unvisited[gen.rng.Intn(len(unvisited))]
		if err := g.RemoveWall(move.From, move.To); err != nil {
			return err
		}
		visited[move.To.Row][move.To.Col] = true
		stack = append(stack, move.To)
	}

	return nil
}
