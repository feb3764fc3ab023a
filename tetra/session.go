package tetra

import "time"

// Board and timing tunables. Drop speed is the time between gravity steps;
// it shrinks with the level down to a floor.
const (
	DefaultWidth  = 10
	DefaultHeight = 20

	PreviewCount = 3

	LockDelay    = 500 * time.Millisecond
	MaxLockMoves = 15

	InitialDropSpeed = 800 * time.Millisecond
	MinDropSpeed     = 80 * time.Millisecond
	DropSpeedStep    = 60 * time.Millisecond
)

func speedForLevel(level int) time.Duration {
	d := InitialDropSpeed - time.Duration(level-1)*DropSpeedStep
	if d < MinDropSpeed {
		d = MinDropSpeed
	}
	return d
}

// Session bundles one game's whole state: board, sequencer, score, active
// piece and held kind. Tick is its sole writer; everything else is a
// read-only snapshot for the presentation layer. A new game is simply a new
// Session.
type Session struct {
	field *Playfield
	seq   *Sequencer
	score *Score
	piece *Piece

	held    Kind
	hasHeld bool
	canHold bool

	dropTimer time.Duration
	dropSpeed time.Duration

	dropHeight      int
	softDrops       int
	hardDrops       int
	lastWasRotation bool

	gameOver bool
}

// NewSession starts a fresh game on a width x height board and spawns the
// first piece. The seed fixes the piece sequence, so equal seeds replay
// identical games.
func NewSession(width, height int, seed uint64) *Session {
	s := &Session{
		field:     NewPlayfield(width, height),
		seq:       NewSequencer(seed, PreviewCount),
		score:     NewScore(),
		dropSpeed: InitialDropSpeed,
	}
	s.spawn(s.seq.Next())
	s.canHold = true
	return s
}

func (s *Session) spawn(k Kind) {
	s.piece = NewPiece(k, s.field)
	s.lastWasRotation = false
}

// Hold stashes the active piece's kind and spawns either the previously held
// kind or the next piece from the sequencer. Allowed once per spawned piece.
// The slot stores the kind by value, never the live piece, so the swapped-in
// piece always starts from a fresh spawn pose.
func (s *Session) Hold() bool {
	if !s.canHold || s.gameOver {
		return false
	}
	k := s.piece.Kind
	if s.hasHeld {
		s.spawn(s.held)
	} else {
		s.hasHeld = true
		s.spawn(s.seq.Next())
	}
	s.held = k
	s.canHold = false
	return true
}

// Cells returns a copy of the board grid.
func (s *Session) Cells() [][]uint8 {
	return s.field.Cells()
}

// ActivePiece returns a copy of the falling piece.
func (s *Session) ActivePiece() Piece {
	return *s.piece
}

// GhostPiece returns where the falling piece would land, for preview
// rendering.
func (s *Session) GhostPiece() Piece {
	return s.piece.Ghost()
}

// HeldPiece returns the held kind, if any.
func (s *Session) HeldPiece() (Kind, bool) {
	return s.held, s.hasHeld
}

// CanHold reports whether a hold is still available for the current piece.
func (s *Session) CanHold() bool {
	return s.canHold
}

// NextPieces returns the upcoming kinds without consuming them.
func (s *Session) NextPieces() []Kind {
	return s.seq.Preview()
}

// Points returns the total score.
func (s *Session) Points() int {
	return s.score.Points
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.score.Level
}

// LinesCleared returns the total number of cleared lines.
func (s *Session) LinesCleared() int {
	return s.score.Lines
}

// Combo returns the current combo counter.
func (s *Session) Combo() int {
	return s.score.Combo
}

// GameOver reports whether the session has ended. A finished session ignores
// further ticks.
func (s *Session) GameOver() bool {
	return s.gameOver
}
