package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrNotArmed             = errors.New("mines have not been placed")
)

// ConfigError reports the dimensions rejected by New. It matches
// ErrInvalidConfiguration under errors.Is.
type ConfigError struct {
	Width, Height, Mines int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", e.Height)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with %d mines", e.Mines)
	default:
		return fmt.Sprintf("%d mines do not fit a %dx%d board, at most %d allowed",
			e.Mines, e.Width, e.Height, e.Width*e.Height-1)
	}
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Validate reports whether a width x height board can hold mines mines with
// at least one safe square left.
func Validate(width, height, mines int) error {
	if width <= 0 || height <= 0 || mines < 0 || mines >= width*height {
		return &ConfigError{Width: width, Height: height, Mines: mines}
	}
	return nil
}
