package portalworld

import "fmt"

// Point is a cell on the grid. Points are plain values and may be
// compared with == and used as map keys.
type Point struct {
	X, Y int
}

// Add returns the point translated by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// In returns whether the point lies in [0, n) x [0, n)
func (p Point) In(n int) bool {
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// center returns the starting cell of the agent on an n x n grid
func center(n int) Point {
	return Point{n / 2, n / 2}
}
