package tetra

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Weights are the linear coefficients of the placement heuristic. A higher
// evaluation wins, so cost terms carry negative weights.
type Weights struct {
	AggregateHeight float64
	LinesCleared    float64
	Holes           float64
	Bumpiness       float64
}

// DefaultWeights are the widely used hand-tuned linear weights for this
// four-feature heuristic.
var DefaultWeights = Weights{
	AggregateHeight: -0.510066,
	LinesCleared:    0.760666,
	Holes:           -0.35663,
	Bumpiness:       -0.184483,
}

// Placement is a target pose for the active piece: reach the rotation state,
// line up on the column, then ride it down.
type Placement struct {
	Rotation int
	Column   int
}

// Autopilot is a Controller that picks final placements for the active piece
// and expresses progress toward them as one intent per tick, re-planning
// every tick so partial progress is tolerated. The search runs on scratch
// copies of the board and never touches live state. Plans are cached in an
// integer-keyed map under a board+kind fingerprint, which makes the per-tick
// re-evaluation free while the stack is unchanged.
type Autopilot struct {
	weights Weights
	plans   *intmap.Map[uint64, Placement]
}

// NewAutopilot creates an autopilot with the given heuristic weights.
func NewAutopilot(weights Weights) *Autopilot {
	return &Autopilot{
		weights: weights,
		plans:   intmap.New[uint64, Placement](64),
	}
}

// Plan implements Controller. It steers the active piece toward the best
// placement: rotation first, then horizontal alignment, then soft drop.
func (a *Autopilot) Plan(s *Session) Intents {
	if s.gameOver {
		return Intents{}
	}
	p := s.piece
	target, ok := a.target(s.field, p)
	if !ok {
		return Intents{SoftDrop: true}
	}
	switch {
	case p.Rotation != target.Rotation:
		return Intents{Rotate: true}
	case p.X > target.Column:
		return Intents{MoveLeft: true}
	case p.X < target.Column:
		return Intents{MoveRight: true}
	default:
		return Intents{SoftDrop: true}
	}
}

func (a *Autopilot) target(f *Playfield, p *Piece) (Placement, bool) {
	key := f.hash() ^ uint64(p.Kind+1)*0x9e3779b97f4a7c15
	if t, ok := a.plans.Get(key); ok {
		return t, true
	}
	t, ok := a.bestPlacement(f, p)
	if ok {
		if a.plans.Len() > 512 {
			a.plans.Clear()
		}
		a.plans.Put(key, t)
	}
	return t, ok
}

// bestPlacement enumerates candidate placements in a fixed order, rotation
// state ascending then column ascending, and keeps the first one with the
// strictly best evaluation. Columns are those the piece fits at its current
// row; the landing row is found by dropping from there.
func (a *Autopilot) bestPlacement(f *Playfield, p *Piece) (Placement, bool) {
	var best Placement
	bestScore := math.Inf(-1)
	found := false

	for rot := 0; rot < 4; rot++ {
		for x := -2; x < f.Width; x++ {
			if f.collides(p.Kind, rot, x, p.Y) {
				continue
			}
			y := p.Y
			for !f.collides(p.Kind, rot, x, y+1) {
				y++
			}
			score := a.evaluate(f, p.Kind, rot, x, y)
			if score > bestScore {
				bestScore = score
				best = Placement{Rotation: rot, Column: x}
				found = true
			}
		}
	}
	return best, found
}

// evaluate locks the candidate onto a scratch board, clears what it would
// clear, and scores the result.
func (a *Autopilot) evaluate(f *Playfield, k Kind, rot, x, y int) float64 {
	scratch := f.Clone()
	scratch.lockCells(k, rot, x, y)
	rows := scratch.FindFullRows()
	scratch.ClearRows(rows)

	heights := scratch.ColumnHeights()
	aggregate, bumpiness := 0, 0
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			bumpiness += abs(h - heights[i-1])
		}
	}

	return a.weights.AggregateHeight*float64(aggregate) +
		a.weights.LinesCleared*float64(len(rows)) +
		a.weights.Holes*float64(scratch.Holes()) +
		a.weights.Bumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
