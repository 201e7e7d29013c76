package session

import (
	"fmt"
	"strings"

	"github.com/04pril/minesweeper/board"
)

// Difficulty is a board size and mine count.
type Difficulty struct {
	Name          string
	Width, Height int
	Mines         int
}

var (
	Easy   = Difficulty{Name: "easy", Width: 9, Height: 9, Mines: 10}
	Medium = Difficulty{Name: "medium", Width: 16, Height: 16, Mines: 40}
	Hard   = Difficulty{Name: "hard", Width: 30, Height: 16, Mines: 99}
)

// Presets lists the fixed difficulties in menu order.
var Presets = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty looks up a preset by name, ignoring case and surrounding
// blanks.
func ParseDifficulty(name string) (Difficulty, error) {
	name = strings.TrimSpace(name)
	for _, d := range Presets {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%q: %w", name, ErrUnknownDifficulty)
}

// Custom returns a non-preset difficulty. It fails with
// board.ErrInvalidConfiguration when the board could not be built.
func Custom(width, height, mines int) (Difficulty, error) {
	if err := board.Validate(width, height, mines); err != nil {
		return Difficulty{}, err
	}
	return Difficulty{Name: "custom", Width: width, Height: height, Mines: mines}, nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s %dx%d/%d", d.Name, d.Width, d.Height, d.Mines)
}
