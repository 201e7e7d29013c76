package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/04pril/minesweeper/board"
	"github.com/04pril/minesweeper/grid"
)

var (
	ErrInvalidPhase      = errors.New("command not allowed in this phase")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// Session drives one player's games. It holds no board in the menu, exactly
// one while playing, and keeps the finished board readable after a win or
// loss until the next game starts. A Session is not safe for concurrent use.
type Session struct {
	phase  Phase
	board  *board.Board
	diff   Difficulty
	gameID uuid.UUID

	rng board.Rand
	log logrus.FieldLogger
}

type Option func(*Session)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// WithRand sets the source used when StartGame is given none.
func WithRand(r board.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// New returns a session sitting in the menu.
func New(opts ...Option) *Session {
	s := &Session{
		phase: PhaseMenu,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Difficulty() Difficulty { return s.diff }

// GameID identifies the current board; uuid.Nil in the menu.
func (s *Session) GameID() uuid.UUID { return s.gameID }

// Size returns the board dimensions, or zeros in the menu.
func (s *Session) Size() (width, height int) {
	if s.board == nil {
		return 0, 0
	}
	return s.board.Width(), s.board.Height()
}

// Remaining is the mine count minus placed flags, or 0 in the menu.
func (s *Session) Remaining() int {
	if s.board == nil {
		return 0
	}
	return s.board.Remaining()
}

func (s *Session) entry() *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"game_id":    s.gameID,
		"difficulty": s.diff.Name,
		"phase":      s.phase,
	})
}

func (s *Session) event(kind EventKind, payload any) Event {
	return Event{Kind: kind, GameID: s.gameID, Payload: payload}
}

// StartGame discards any current board and starts a new one. rng places the
// mines; nil uses the session's own source. On error the session is left
// as it was.
func (s *Session) StartGame(d Difficulty, rng board.Rand) ([]Event, error) {
	b, err := board.New(d.Width, d.Height, d.Mines)
	if err != nil {
		s.log.WithError(err).WithField("difficulty", d.String()).Warn("new game rejected")
		return nil, fmt.Errorf("start %s game: %w", d.Name, err)
	}
	if rng == nil {
		rng = s.rng
	}
	b.PlaceMines(rng)

	s.board = b
	s.diff = d
	s.phase = PhasePlaying
	s.gameID = uuid.New()
	s.entry().WithField("size", fmt.Sprintf("%dx%d", d.Width, d.Height)).Info("game started")

	return []Event{s.event(EventGameStarted, GameStartedPayload{Difficulty: d})}, nil
}

// Menu abandons the current board, if any, and returns to the menu.
func (s *Session) Menu() []Event {
	ev := s.event(EventMenu, nil)
	s.entry().Debug("back to menu")
	s.board = nil
	s.diff = Difficulty{}
	s.gameID = uuid.Nil
	s.phase = PhaseMenu
	return []Event{ev}
}

func (s *Session) requirePlaying(cmd string, c grid.Coord) error {
	if s.phase != PhasePlaying {
		s.entry().WithFields(logrus.Fields{"command": cmd, "cell": c}).Debug("command rejected")
		return fmt.Errorf("%s %v in phase %s: %w", cmd, c, s.phase, ErrInvalidPhase)
	}
	return nil
}

// Reveal uncovers c. Hitting a mine loses the game; uncovering the last
// safe square wins it.
func (s *Session) Reveal(c grid.Coord) ([]Event, error) {
	if err := s.requirePlaying("reveal", c); err != nil {
		return nil, err
	}
	o, cells, err := s.board.Reveal(c)
	if err != nil {
		return nil, err
	}
	return s.settle("reveal", c, o, cells), nil
}

// Chord uncovers the unflagged neighbours of a satisfied number.
func (s *Session) Chord(c grid.Coord) ([]Event, error) {
	if err := s.requirePlaying("chord", c); err != nil {
		return nil, err
	}
	o, cells, err := s.board.Chord(c)
	if err != nil {
		return nil, err
	}
	return s.settle("chord", c, o, cells), nil
}

// settle turns a board outcome into events and applies the terminal
// transitions.
func (s *Session) settle(cmd string, c grid.Coord, o board.RevealOutcome, cells []grid.Coord) []Event {
	var events []Event
	switch o {
	case board.HitMine:
		events = append(events, s.event(EventCellsRevealed, CellsRevealedPayload{Cells: cells}))
		exploded, _ := s.board.Exploded()
		lost := GameLostPayload{
			Exploded:   exploded,
			Mines:      s.board.ExposeMines(),
			WrongFlags: s.board.WrongFlags(),
		}
		s.phase = PhaseLost
		s.entry().WithField("cell", exploded).Info("game lost")
		return append(events, s.event(EventGameLost, lost))

	case board.Revealed:
		if len(cells) > 0 {
			events = append(events, s.event(EventCellsRevealed, CellsRevealedPayload{Cells: cells}))
		}
		s.entry().WithFields(logrus.Fields{"command": cmd, "cell": c, "revealed": len(cells)}).Debug("cells revealed")
		if s.board.IsWon() {
			won := GameWonPayload{Flagged: s.board.FlagMines()}
			s.phase = PhaseWon
			s.entry().Info("game won")
			events = append(events, s.event(EventGameWon, won))
		}
		return events

	default:
		s.entry().WithFields(logrus.Fields{"command": cmd, "cell": c, "outcome": o}).Debug("command ignored")
		return []Event{s.event(EventIgnored, IgnoredPayload{Cell: c, Reason: o.String()})}
	}
}

// ToggleFlag flags or unflags a covered square.
func (s *Session) ToggleFlag(c grid.Coord) ([]Event, error) {
	if err := s.requirePlaying("flag", c); err != nil {
		return nil, err
	}
	o, err := s.board.ToggleFlag(c)
	if err != nil {
		return nil, err
	}
	if o == board.CannotFlagRevealed {
		s.entry().WithFields(logrus.Fields{"command": "flag", "cell": c, "outcome": o}).Debug("command ignored")
		return []Event{s.event(EventIgnored, IgnoredPayload{Cell: c, Reason: o.String()})}, nil
	}
	return []Event{s.event(EventFlagChanged, FlagChangedPayload{
		Cell:      c,
		Flagged:   o == board.FlagPlaced,
		Remaining: s.board.Remaining(),
	})}, nil
}

// Query reports what the player sees at c. It works while playing and on
// the finished board after a win or loss.
func (s *Session) Query(c grid.Coord) (board.CellView, error) {
	if s.board == nil {
		return board.CellView{}, fmt.Errorf("query %v in phase %s: %w", c, s.phase, ErrInvalidPhase)
	}
	return s.board.Query(c)
}
