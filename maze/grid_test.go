package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		g, err := NewGrid(4, 3)
		assert.NoError(t, err)
		assert.Equal(t, 4, g.Width())
		assert.Equal(t, 3, g.Height())
	})

	t.Run("all walls present initially", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		assert.NoError(t, err)

		for row := 0; row < g.Height(); row++ {
			for col := 0; col < g.Width(); col++ {
				cell := g.CellAt(CellPosition{Row: row, Col: col})
				assert.True(t, cell.NorthWall)
				assert.True(t, cell.SouthWall)
				assert.True(t, cell.EastWall)
				assert.True(t, cell.WestWall)
			}
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension)
		}
	})
}

func TestGridNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3)
	assert.NoError(t, err)

	t.Run("center cell has four neighbors in fixed order", func(t *testing.T) {
		moves := g.Neighbors(CellPosition{Row: 1, Col: 1})
		assert.Len(t, moves, 4)

		expected := []CellPosition{
			{Row: 0, Col: 1}, // North
			{Row: 2, Col: 1}, // South
			{Row: 1, Col: 2}, // East
			{Row: 1, Col: 0}, // West
		}
		for i, move := range moves {
			assert.Equal(t, expected[i], move.To)
			assert.Equal(t, CellPosition{Row: 1, Col: 1}, move.From)
		}
	})

	t.Run("corner cell has two neighbors", func(t *testing.T) {
		moves := g.Neighbors(CellPosition{Row: 0, Col: 0})
		assert.Len(t, moves, 2)
		assert.Equal(t, CellPosition{Row: 1, Col: 0}, moves[0].To) // South
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, moves[1].To) // East
	})

	t.Run("edge cell has three neighbors", func(t *testing.T) {
		moves := g.Neighbors(CellPosition{Row: 0, Col: 1})
		assert.Len(t, moves, 3)
	})
}

func TestGridWalls(t *testing.T) {
	t.Run("remove wall clears both sides", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		assert.NoError(t, err)

		a := CellPosition{Row: 0, Col: 0}
		b := CellPosition{Row: 0, Col: 1}

		blocked, err := g.HasWall(a, b)
		assert.NoError(t, err)
		assert.True(t, blocked)

		assert.NoError(t, g.RemoveWall(a, b))

		blocked, err = g.HasWall(a, b)
		assert.NoError(t, err)
		assert.False(t, blocked)

		// Symmetric from the other side as well.
		blocked, err = g.HasWall(b, a)
		assert.NoError(t, err)
		assert.False(t, blocked)

		assert.False(t, g.CellAt(a).EastWall)
		assert.False(t, g.CellAt(b).WestWall)
	})

	t.Run("non-adjacent pairs are rejected", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		assert.NoError(t, err)

		cases := [][2]CellPosition{
			{{Row: 0, Col: 0}, {Row: 0, Col: 2}}, // same row, two apart
			{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, // diagonal
			{{Row: 0, Col: 0}, {Row: 0, Col: 0}}, // same cell
			{{Row: 0, Col: 0}, {Row: 0, Col: -1}}, // out of bounds
		}
		for _, c := range cases {
			_, err := g.HasWall(c[0], c[1])
			assert.ErrorIs(t, err, ErrNotAdjacent)
			assert.ErrorIs(t, g.RemoveWall(c[0], c[1]), ErrNotAdjacent)
		}
	})
}

func TestGridString(t *testing.T) {
	g, err := NewGrid(2, 1)
	assert.NoError(t, err)
	assert.NoError(t, g.RemoveWall(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1}))

	expected := "+---+---+\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, g.String())
}
