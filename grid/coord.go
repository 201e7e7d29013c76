package grid

import "fmt"

// Coord addresses one square of a width x height grid. X is the column,
// Y the row.
type Coord struct {
	X, Y int
}

func (c Coord) In(w, h int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < w && c.Y < h
}

// Moore returns the up to 8 squares surrounding c, clipped to the grid.
// Order is row by row, left to right.
func (c Coord) Moore(w, h int) []Coord {
	out := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if n.In(w, h) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Orthogonal returns the up to 4 squares sharing an edge with c
// (north, south, west, east), clipped to the grid.
func (c Coord) Orthogonal(w, h int) []Coord {
	out := make([]Coord, 0, 4)
	for _, n := range [4]Coord{
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
	} {
		if n.In(w, h) {
			out = append(out, n)
		}
	}
	return out
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
