// Command mazeview generates a maze and replays the shortest-path
// search in the terminal, one visitation event per tick, then
// highlights the final path. It is a host loop over the solver's
// stepwise walk; the pacing flag changes only how fast the animation
// runs, never the search result.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Zivica/MazeSolver/maze"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleVisited = tcell.StyleDefault.Background(tcell.ColorNavy)
	stylePath    = tcell.StyleDefault.Background(tcell.ColorGold).Foreground(tcell.ColorBlack)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type viewer struct {
	screen  tcell.Screen
	grid    *maze.Grid
	start   maze.CellPosition
	end     maze.CellPosition
	delay   time.Duration
	visited []maze.CellPosition
	path    []maze.CellPosition
}

func main() {
	width := flag.Int("width", 20, "maze width in cells")
	height := flag.Int("height", 20, "maze height in cells")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	delay := flag.Duration("delay", 50*time.Millisecond, "pause between search steps")
	flag.Parse()

	grid, err := maze.NewGrid(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating grid: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := maze.NewGenerator(&maze.GeneratorConfig{
		Rand: rand.New(rand.NewSource(*seed)),
	})
	if err := gen.Generate(grid); err != nil {
		fmt.Fprintf(os.Stderr, "generating maze: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		grid:   grid,
		start:  maze.CellPosition{Row: 0, Col: 0},
		end:    maze.CellPosition{Row: *height - 1, Col: *width - 1},
		delay:  *delay,
	}

	if err := v.run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "solving maze: %v\n", err)
		os.Exit(1)
	}
}

// run drives the stepwise walk off a ticker while watching for input.
// It returns once the user quits.
func (v *viewer) run() error {
	walk, err := maze.NewWalk(v.grid, v.start, v.end)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(v.delay)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		case <-ticker.C:
			if v.path != nil {
				continue
			}
			if visit, ok := walk.Next(); ok {
				v.visited = append(v.visited, visit.Cell)
				v.draw()
				continue
			}
			path, err := walk.Path()
			if err != nil {
				return err
			}
			v.path = path
			v.draw()
		}
	}
}

// Screen geometry: each cell occupies a 3-wide, 1-high interior inside
// a shared wall lattice, so cell (r,c) is drawn at x=4c+1..4c+3,
// y=2r+1.
func cellOrigin(pos maze.CellPosition) (x, y int) {
	return 4*pos.Col + 1, 2*pos.Row + 1
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.drawWalls()

	for _, pos := range v.visited {
		v.fillCell(pos, styleVisited)
	}
	for _, pos := range v.path {
		v.fillCell(pos, stylePath)
	}
	v.drawMarker(v.start, 'S', styleStart)
	v.drawMarker(v.end, 'E', styleEnd)
	v.drawStatus()

	v.screen.Show()
}

func (v *viewer) drawWalls() {
	// Corner lattice.
	for row := 0; row <= v.grid.Height(); row++ {
		for col := 0; col <= v.grid.Width(); col++ {
			v.screen.SetContent(4*col, 2*row, '+', nil, styleWall)
		}
	}

	for row := 0; row < v.grid.Height(); row++ {
		for col := 0; col < v.grid.Width(); col++ {
			pos := maze.CellPosition{Row: row, Col: col}
			cell := v.grid.CellAt(pos)
			x, y := cellOrigin(pos)

			if cell.NorthWall {
				for i := 0; i < 3; i++ {
					v.screen.SetContent(x+i, y-1, '-', nil, styleWall)
				}
			}
			if cell.SouthWall {
				for i := 0; i < 3; i++ {
					v.screen.SetContent(x+i, y+1, '-', nil, styleWall)
				}
			}
			if cell.WestWall {
				v.screen.SetContent(x-1, y, '|', nil, styleWall)
			}
			if cell.EastWall {
				v.screen.SetContent(x+3, y, '|', nil, styleWall)
			}
		}
	}
}

func (v *viewer) fillCell(pos maze.CellPosition, style tcell.Style) {
	x, y := cellOrigin(pos)
	for i := 0; i < 3; i++ {
		v.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (v *viewer) drawMarker(pos maze.CellPosition, r rune, style tcell.Style) {
	x, y := cellOrigin(pos)
	_, _, current, _ := v.screen.GetContent(x+1, y)
	_, bg, _ := current.Decompose()
	v.screen.SetContent(x+1, y, r, nil, style.Background(bg))
}

func (v *viewer) drawStatus() {
	status := fmt.Sprintf("visited %d cells", len(v.visited))
	if v.path != nil {
		status = fmt.Sprintf("visited %d cells, path length %d, press q to quit", len(v.visited), len(v.path))
	}
	y := 2*v.grid.Height() + 1
	for i, r := range status {
		v.screen.SetContent(i, y, r, nil, styleDefault)
	}
}
