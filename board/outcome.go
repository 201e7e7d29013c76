package board

// RevealOutcome describes what a Reveal or Chord call did.
type RevealOutcome uint8

const (
	// Revealed means one or more squares were uncovered.
	Revealed RevealOutcome = iota + 1
	// AlreadyRevealed means the square was uncovered before; nothing changed.
	AlreadyRevealed
	// Flagged means the square carries a flag and was left covered.
	Flagged
	// HitMine means a mine was uncovered. Ending the game is up to the caller.
	HitMine
	// NotChordable means the square is not a satisfied number; nothing changed.
	NotChordable
)

func (o RevealOutcome) String() string {
	switch o {
	case Revealed:
		return "revealed"
	case AlreadyRevealed:
		return "already_revealed"
	case Flagged:
		return "flagged"
	case HitMine:
		return "hit_mine"
	case NotChordable:
		return "not_chordable"
	default:
		return "unknown"
	}
}

// FlagOutcome describes what a ToggleFlag call did.
type FlagOutcome uint8

const (
	FlagPlaced FlagOutcome = iota + 1
	FlagRemoved
	CannotFlagRevealed
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagPlaced:
		return "flag_placed"
	case FlagRemoved:
		return "flag_removed"
	case CannotFlagRevealed:
		return "cannot_flag_revealed"
	default:
		return "unknown"
	}
}

// CellState is the player-visible exposure of a square.
type CellState uint8

const (
	StateCovered CellState = iota
	StateRevealed
	StateFlagged
)

func (s CellState) String() string {
	switch s {
	case StateCovered:
		return "covered"
	case StateRevealed:
		return "revealed"
	case StateFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// CellView is what a player may know about a square. Value is only set
// when State is StateRevealed.
type CellView struct {
	State CellState
	Value Cell
}
