package session

import (
	"github.com/google/uuid"

	"github.com/04pril/minesweeper/grid"
)

// EventKind identifies an effect produced by a command.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventCellsRevealed EventKind = "cells_revealed"
	EventFlagChanged   EventKind = "flag_changed"
	EventGameWon       EventKind = "game_won"
	EventGameLost      EventKind = "game_lost"
	EventIgnored       EventKind = "ignored"
	EventMenu          EventKind = "menu"
)

// Event is one observable effect of a command. GameID identifies the board
// the event belongs to, so effects of an abandoned game can be dropped.
type Event struct {
	Kind    EventKind
	GameID  uuid.UUID
	Payload any
}

type GameStartedPayload struct {
	Difficulty Difficulty
}

// CellsRevealedPayload lists newly uncovered squares in discovery order.
type CellsRevealedPayload struct {
	Cells []grid.Coord
}

type FlagChangedPayload struct {
	Cell      grid.Coord
	Flagged   bool
	Remaining int
}

// GameWonPayload lists the mines flagged automatically on the win.
type GameWonPayload struct {
	Flagged []grid.Coord
}

// GameLostPayload describes the final layout: the mine that was hit, the
// other unflagged mines now shown, and flags placed on safe squares.
type GameLostPayload struct {
	Exploded   grid.Coord
	Mines      []grid.Coord
	WrongFlags []grid.Coord
}

// IgnoredPayload reports a command that changed nothing, such as revealing
// a flagged square. Reason is the board outcome's name.
type IgnoredPayload struct {
	Cell   grid.Coord
	Reason string
}
