package tetra

import "time"

// Intents is the set of discrete inputs applied during one tick. Each flag
// is a single attempt; key-repeat pacing is the caller's concern, repeated
// calls are handled one move at a time.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	SoftDrop  bool
	Rotate    bool
	RotateCCW bool
	HardDrop  bool
	Hold      bool
}

// TickResult reports what one tick did. ClearedRows holds the row indices
// that filled up this tick, reported before removal so the caller can
// animate them.
type TickResult struct {
	ScoreDelta    int
	Notifications []string
	ClearedRows   []int
	GameOver      bool
}

// Tick advances the session by dt: intents first, then gravity and the
// lock-delay state machine, then lock resolution if the piece became
// permanent. Negative dt is clamped to zero. Once the session is over, Tick
// is a no-op that keeps reporting game over.
func (s *Session) Tick(dt time.Duration, in Intents) TickResult {
	if s.gameOver {
		return TickResult{GameOver: true}
	}
	if dt < 0 {
		dt = 0
	}

	s.applyIntents(in)
	s.piece.UpdatePosition()

	s.dropTimer += dt
	if s.dropTimer > s.dropSpeed {
		s.dropTimer = 0
		if s.piece.Move(0, 1) {
			s.dropHeight++
		}
	}

	s.piece.Advance(dt)

	if !s.piece.Locked() {
		return TickResult{}
	}
	return s.resolveLock()
}

// applyIntents runs the tick's discrete inputs. Gravity is not an action:
// only player moves and rotations touch the last-action-was-rotation flag
// that spin classification depends on.
func (s *Session) applyIntents(in Intents) {
	if in.Hold {
		s.Hold()
	}
	if in.MoveLeft && s.piece.Move(-1, 0) {
		s.lastWasRotation = false
	}
	if in.MoveRight && s.piece.Move(1, 0) {
		s.lastWasRotation = false
	}
	if in.SoftDrop && s.piece.Move(0, 1) {
		s.softDrops++
		s.lastWasRotation = false
	}
	if in.Rotate {
		s.lastWasRotation = s.piece.Rotate(true)
	}
	if in.RotateCCW {
		s.lastWasRotation = s.piece.Rotate(false)
	}
	if in.HardDrop {
		s.hardDrops += s.piece.HardDrop()
		s.lastWasRotation = false
	}
}

// resolveLock handles a piece that became permanent this tick: spin
// classification against the pre-lock pose, locking, batch line clearing,
// scoring, speed recomputation, and advancing to the next piece. A next
// piece that collides at spawn ends the session.
func (s *Session) resolveLock() TickResult {
	var res TickResult

	spin := SpinNone
	if s.lastWasRotation {
		spin = classifySpin(s.field, s.piece)
	}

	s.field.Lock(s.piece)

	rows := s.field.FindFullRows()
	if len(rows) > 0 {
		res.ClearedRows = append(res.ClearedRows, rows...)
		s.field.ClearRows(rows)
	}

	delta, notes := s.score.Apply(ClearEvent{
		Lines:      len(rows),
		Spin:       spin,
		DropHeight: s.dropHeight,
		SoftDrops:  s.softDrops,
		HardDrops:  s.hardDrops,
	})

	s.dropHeight = 0
	s.softDrops = 0
	s.hardDrops = 0
	s.lastWasRotation = false

	if len(rows) > 0 {
		s.score.UpdateLevel()
		s.dropSpeed = speedForLevel(s.score.Level)
	}

	if s.field.IsBoardClear() {
		bonus, note := s.score.AllClear()
		delta += bonus
		notes = append(notes, note)
	}

	s.spawn(s.seq.Next())
	s.canHold = true
	s.dropTimer = 0

	if s.field.IsCollision(s.piece) {
		s.gameOver = true
		res.GameOver = true
	}

	res.ScoreDelta = delta
	res.Notifications = notes
	return res
}
