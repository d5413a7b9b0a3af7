package maze

// Direction identifies one of the four sides of a cell.
type Direction int

// Directions in their canonical order. Neighbor expansion always walks
// them as North, South, East, West so that generation and solving are
// reproducible for a fixed random seed.
const (
	North Direction = iota
	South
	East
	West
)

// directionOrder fixes the neighbor iteration order.
var directionOrder = [...]Direction{North, South, East, West}

// directionDelta maps a direction to its row/col offset.
var directionDelta = [...]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// String returns the direction's display name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction facing back at d. The wall on a cell's
// side d is shared with the neighbor's side d.Opposite().
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Cell represents a single cell in a maze grid. All four walls are
// present until the generator carves passages.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// newCell returns a fully walled cell.
func newCell() *Cell {
	return &Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// HasWall reports whether the cell has a wall on the given side.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	default:
		return c.WestWall
	}
}

// setWall sets the presence of a wall on the given side.
func (c *Cell) setWall(d Direction, hasWall bool) {
	switch d {
	case North:
		c.NorthWall = hasWall
	case South:
		c.SouthWall = hasWall
	case East:
		c.EastWall = hasWall
	default:
		c.WestWall = hasWall
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Shift returns the position one step away in the given direction.
func (cp CellPosition) Shift(d Direction) CellPosition {
	delta := directionDelta[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Move represents a step from one cell to an adjacent one in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move
}
