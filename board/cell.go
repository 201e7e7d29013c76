package board

import "strconv"

// Cell is the ground truth of one square: either a mine or the number of
// mines among its Moore neighbours.
type Cell int8

// Mine marks a mined square.
const Mine Cell = -1

// Adjacent returns the safe cell with n neighbouring mines. n must be in 0..8.
func Adjacent(n int) Cell {
	return Cell(n)
}

func (c Cell) IsMine() bool {
	return c == Mine
}

// Count returns the adjacency count, or 0 for a mine.
func (c Cell) Count() int {
	if c.IsMine() {
		return 0
	}
	return int(c)
}

func (c Cell) String() string {
	if c.IsMine() {
		return "B"
	}
	return strconv.Itoa(int(c))
}
