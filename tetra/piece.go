package tetra

import "time"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	numKinds = 7
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	}
	return "?"
}

// Token is the non-zero cell value this kind writes into the playfield.
func (k Kind) Token() uint8 {
	return uint8(k) + 1
}

// Cell is a grid coordinate. X grows rightward, Y grows downward.
type Cell struct {
	X, Y int
}

// Bounding box edge length per kind. I rotates in a 4x4 box, everything else
// in a 3x3 box.
var shapeBox = [numKinds]int{4, 3, 3, 3, 3, 3, 3}

// Occupied cell offsets per kind and rotation state, within the bounding box.
// State 0 is the spawn orientation; each following state is one clockwise turn.
var shapeCells = [numKinds][4][4]Cell{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// absCells returns the four absolute cells a kind occupies at the given
// rotation state and box origin.
func absCells(k Kind, rot, x, y int) [4]Cell {
	cells := shapeCells[k][rot]
	for i := range cells {
		cells[i].X += x
		cells[i].Y += y
	}
	return cells
}

type lockPhase uint8

const (
	phaseAirborne lockPhase = iota
	phaseGrounded
	phaseLocked
)

// Piece is the active tetromino: a kind at a box origin and rotation state,
// plus the lock-delay state machine that decides when it becomes permanent.
// It consults its playfield for collision but never writes to it; locking is
// the playfield's job.
type Piece struct {
	Kind     Kind
	X, Y     int
	Rotation int

	field *Playfield

	phase     lockPhase
	lockTimer time.Duration
	lockMoves int
}

// NewPiece spawns a piece of the given kind at the top center of the field.
func NewPiece(k Kind, f *Playfield) *Piece {
	return &Piece{Kind: k, X: (f.Width - shapeBox[k]) / 2, field: f}
}

// Cells returns the absolute cells the piece currently occupies.
func (p *Piece) Cells() [4]Cell {
	return absCells(p.Kind, p.Rotation, p.X, p.Y)
}

// Move attempts a translation and reports whether it happened. A successful
// move while resting on something restarts the lock-delay timer and counts
// toward the lock-move cap.
func (p *Piece) Move(dx, dy int) bool {
	if p.phase == phaseLocked {
		return false
	}
	if p.field.collides(p.Kind, p.Rotation, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	p.noteLockMove()
	return true
}

// Rotate attempts the next rotation state, walking the kick table until a
// candidate offset fits. It reports whether the piece actually changed; a
// failed rotation leaves the piece untouched. O has a single effective state
// and never rotates.
func (p *Piece) Rotate(clockwise bool) bool {
	if p.phase == phaseLocked || p.Kind == KindO {
		return false
	}
	from := p.Rotation
	to := (from + 1) % 4
	if !clockwise {
		to = (from + 3) % 4
	}
	for _, k := range kickOffsets(p.Kind, from, clockwise) {
		if !p.field.collides(p.Kind, to, p.X+k.X, p.Y+k.Y) {
			p.X += k.X
			p.Y += k.Y
			p.Rotation = to
			p.noteLockMove()
			return true
		}
	}
	return false
}

func (p *Piece) noteLockMove() {
	if !p.IsTouchingGround() {
		return
	}
	if p.phase == phaseAirborne {
		p.phase = phaseGrounded
	}
	p.lockTimer = 0
	p.lockMoves++
}

// HardDrop translates the piece straight down until it collides and locks it
// immediately, returning the number of rows fallen.
func (p *Piece) HardDrop() int {
	if p.phase == phaseLocked {
		return 0
	}
	rows := 0
	for !p.field.collides(p.Kind, p.Rotation, p.X, p.Y+1) {
		p.Y++
		rows++
	}
	p.phase = phaseLocked
	return rows
}

// IsTouchingGround reports whether moving down one row would collide.
func (p *Piece) IsTouchingGround() bool {
	return p.field.collides(p.Kind, p.Rotation, p.X, p.Y+1)
}

// UpdatePosition reconciles the lock-delay phase with the board once per
// tick. An airborne piece that has come to rest enters the grounded phase
// with a fresh timer.
func (p *Piece) UpdatePosition() {
	if p.phase != phaseAirborne {
		return
	}
	if p.IsTouchingGround() {
		p.phase = phaseGrounded
		p.lockTimer = 0
	}
}

// Advance accumulates lock-delay time. When the timer threshold or the
// lock-move cap is exceeded, the piece locks only if it is still touching
// ground at that instant; a piece that slid off a ledge goes back to
// airborne with timer and move count cleared.
func (p *Piece) Advance(dt time.Duration) {
	if p.phase != phaseGrounded {
		return
	}
	p.lockTimer += dt
	if p.lockTimer < LockDelay && p.lockMoves < MaxLockMoves {
		return
	}
	if p.IsTouchingGround() {
		p.phase = phaseLocked
		return
	}
	p.phase = phaseAirborne
	p.lockTimer = 0
	p.lockMoves = 0
}

// Locked reports whether the piece has become permanent.
func (p *Piece) Locked() bool {
	return p.phase == phaseLocked
}

// Ghost returns a copy of the piece translated down to its landing row.
// The receiver is never mutated.
func (p *Piece) Ghost() Piece {
	g := *p
	for !g.field.collides(g.Kind, g.Rotation, g.X, g.Y+1) {
		g.Y++
	}
	return g
}
