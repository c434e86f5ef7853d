package types

// GridSize is the number of cells along each side of the board.
const GridSize = 20

// Point is a single board cell. Also used as a direction vector.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the square board used by the game.
var DefaultGrid = Grid{Width: GridSize, Height: GridSize}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
