package board

import (
	"fmt"
	"iter"
	"strings"

	"github.com/04pril/minesweeper/grid"
)

// Rand is the random source used for mine placement. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Board is one game's grid of cells together with what the player has
// uncovered and flagged. A Board is not safe for concurrent use.
type Board struct {
	w, h  int
	mines int

	cells    [][]Cell
	revealed map[grid.Coord]struct{}
	flagged  map[grid.Coord]struct{}

	placed      int
	armed       bool
	revealedCnt int // safe squares only
	exploded    *grid.Coord
}

// New returns an empty board. Mines are added by PlaceMines.
func New(w, h, mines int) (*Board, error) {
	if err := Validate(w, h, mines); err != nil {
		return nil, err
	}
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
	}
	return &Board{
		w:        w,
		h:        h,
		mines:    mines,
		cells:    cells,
		revealed: make(map[grid.Coord]struct{}),
		flagged:  make(map[grid.Coord]struct{}),
	}, nil
}

func (b *Board) Width() int     { return b.w }
func (b *Board) Height() int    { return b.h }
func (b *Board) MineCount() int { return b.mines }

// Armed reports whether every mine has been placed.
func (b *Board) Armed() bool { return b.armed }

// PlaceMines samples squares from rng until the board holds its full mine
// count, re-sampling whenever a sample already holds a mine. Further calls
// are no-ops. The first square a player reveals is not protected.
func (b *Board) PlaceMines(rng Rand) {
	for b.placed < b.mines {
		y := rng.IntN(b.h)
		x := rng.IntN(b.w)
		b.placeMine(grid.Coord{X: x, Y: y})
	}
	b.armed = true
}

func (b *Board) placeMine(c grid.Coord) bool {
	if b.cells[c.Y][c.X].IsMine() {
		return false
	}
	b.cells[c.Y][c.X] = Mine
	for _, n := range c.Moore(b.w, b.h) {
		if nc := b.cells[n.Y][n.X]; !nc.IsMine() {
			b.cells[n.Y][n.X] = nc + 1
		}
	}
	b.placed++
	return true
}

func (b *Board) check(c grid.Coord) error {
	if !c.In(b.w, b.h) {
		return fmt.Errorf("%v on %dx%d board: %w", c, b.w, b.h, ErrOutOfBounds)
	}
	return nil
}

func (b *Board) isRevealed(c grid.Coord) bool {
	_, ok := b.revealed[c]
	return ok
}

func (b *Board) isFlagged(c grid.Coord) bool {
	_, ok := b.flagged[c]
	return ok
}

func (b *Board) markRevealed(c grid.Coord) {
	b.revealed[c] = struct{}{}
	if !b.cells[c.Y][c.X].IsMine() {
		b.revealedCnt++
	}
}

// Reveal uncovers c. A zero square uncovers its neighbourhood, spreading
// through further zero squares and stopping at numbered ones. The returned
// coordinates are the squares newly uncovered, in discovery order.
func (b *Board) Reveal(c grid.Coord) (RevealOutcome, []grid.Coord, error) {
	if err := b.check(c); err != nil {
		return 0, nil, err
	}
	if !b.armed {
		return 0, nil, ErrNotArmed
	}
	if b.isRevealed(c) {
		return AlreadyRevealed, nil, nil
	}
	if b.isFlagged(c) {
		return Flagged, nil, nil
	}

	if b.cells[c.Y][c.X].IsMine() {
		b.markRevealed(c)
		if b.exploded == nil {
			b.exploded = &c
		}
		return HitMine, []grid.Coord{c}, nil
	}
	return Revealed, b.flood(c), nil
}

// flood marks squares on enqueue, so each one enters the queue at most once.
func (b *Board) flood(start grid.Coord) []grid.Coord {
	var out []grid.Coord
	b.markRevealed(start)
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		out = append(out, p)

		if b.cells[p.Y][p.X] != Adjacent(0) {
			continue
		}
		for _, n := range p.Moore(b.w, b.h) {
			if b.isRevealed(n) || b.isFlagged(n) {
				continue
			}
			b.markRevealed(n)
			queue = append(queue, n)
		}
	}
	return out
}

// Chord reveals every covered, unflagged neighbour of c when c is an
// uncovered number with exactly that many flags around it.
func (b *Board) Chord(c grid.Coord) (RevealOutcome, []grid.Coord, error) {
	if err := b.check(c); err != nil {
		return 0, nil, err
	}
	if !b.armed {
		return 0, nil, ErrNotArmed
	}
	cell := b.cells[c.Y][c.X]
	if !b.isRevealed(c) || cell.IsMine() || cell.Count() == 0 {
		return NotChordable, nil, nil
	}

	around := c.Moore(b.w, b.h)
	if b.countFlags(around) != cell.Count() {
		return NotChordable, nil, nil
	}

	outcome := Revealed
	var out []grid.Coord
	for _, n := range around {
		if b.isRevealed(n) || b.isFlagged(n) {
			continue
		}
		o, cells, err := b.Reveal(n)
		if err != nil {
			return 0, out, err
		}
		if o == HitMine {
			outcome = HitMine
		}
		out = append(out, cells...)
	}
	return outcome, out, nil
}

func (b *Board) countFlags(cs []grid.Coord) int {
	n := 0
	for _, c := range cs {
		if b.isFlagged(c) {
			n++
		}
	}
	return n
}

// ToggleFlag flags a covered square, or removes its flag.
func (b *Board) ToggleFlag(c grid.Coord) (FlagOutcome, error) {
	if err := b.check(c); err != nil {
		return 0, err
	}
	if b.isRevealed(c) {
		return CannotFlagRevealed, nil
	}
	if b.isFlagged(c) {
		delete(b.flagged, c)
		return FlagRemoved, nil
	}
	b.flagged[c] = struct{}{}
	return FlagPlaced, nil
}

// IsWon reports whether every safe square is uncovered. Flags do not count.
func (b *Board) IsWon() bool {
	return b.armed && b.revealedCnt == b.w*b.h-b.mines
}

// Remaining is the mine count minus the flags placed. It goes negative when
// the player over-flags.
func (b *Board) Remaining() int {
	return b.mines - len(b.flagged)
}

// Exploded returns the first mine uncovered by Reveal or Chord.
func (b *Board) Exploded() (grid.Coord, bool) {
	if b.exploded == nil {
		return grid.Coord{}, false
	}
	return *b.exploded, true
}

// Mines yields the mine coordinates row by row.
func (b *Board) Mines() iter.Seq[grid.Coord] {
	return func(yield func(grid.Coord) bool) {
		for y := range b.h {
			for x := range b.w {
				if b.cells[y][x].IsMine() && !yield(grid.Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// ExposeMines uncovers every covered, unflagged mine without spreading and
// returns them. Used to show the layout once a game is lost.
func (b *Board) ExposeMines() []grid.Coord {
	var out []grid.Coord
	for c := range b.Mines() {
		if b.isRevealed(c) || b.isFlagged(c) {
			continue
		}
		b.markRevealed(c)
		out = append(out, c)
	}
	return out
}

// WrongFlags returns flagged squares that hold no mine, row by row.
func (b *Board) WrongFlags() []grid.Coord {
	var out []grid.Coord
	for y := range b.h {
		for x := range b.w {
			c := grid.Coord{X: x, Y: y}
			if b.isFlagged(c) && !b.cells[y][x].IsMine() {
				out = append(out, c)
			}
		}
	}
	return out
}

// FlagMines flags every covered mine still unflagged and returns them.
// Used to complete the display once a game is won.
func (b *Board) FlagMines() []grid.Coord {
	var out []grid.Coord
	for c := range b.Mines() {
		if b.isRevealed(c) || b.isFlagged(c) {
			continue
		}
		b.flagged[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Query returns what the player can see at c.
func (b *Board) Query(c grid.Coord) (CellView, error) {
	if err := b.check(c); err != nil {
		return CellView{}, err
	}
	switch {
	case b.isRevealed(c):
		return CellView{State: StateRevealed, Value: b.cells[c.Y][c.X]}, nil
	case b.isFlagged(c):
		return CellView{State: StateFlagged}, nil
	default:
		return CellView{State: StateCovered}, nil
	}
}

// String dumps the ground truth, one comma separated line per row. Squares
// print as "?" until the board is armed.
func (b *Board) String() string {
	rows := make([]string, b.h)
	for y := range b.h {
		vals := make([]string, b.w)
		for x := range b.w {
			if b.armed {
				vals[x] = b.cells[y][x].String()
			} else {
				vals[x] = "?"
			}
		}
		rows[y] = strings.Join(vals, ",")
	}
	return strings.Join(rows, "\n")
}
