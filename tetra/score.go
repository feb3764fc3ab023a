package tetra

import "fmt"

// SpinType classifies a locking placement for bonus scoring.
type SpinType uint8

const (
	SpinNone SpinType = iota
	SpinMini
	SpinNormal
)

func (t SpinType) String() string {
	switch t {
	case SpinMini:
		return "mini"
	case SpinNormal:
		return "normal"
	}
	return "none"
}

// Scoring tunables. Drop bonuses are flat per row; everything else is
// multiplied by the current level.
const (
	LinesPerLevel = 10

	SoftDropBonus = 1
	HardDropBonus = 2
	SpinBonus     = 400
	MiniSpinBonus = 100
	ComboBonus    = 50
	AllClearBonus = 2000
)

// Base points by lines cleared in one lock. Four at once is a tetris.
var lineBase = [5]int{0, 100, 300, 500, 800}

// ClearEvent describes one locked piece for the scoring engine.
type ClearEvent struct {
	Lines      int
	Spin       SpinType
	DropHeight int
	SoftDrops  int
	HardDrops  int
}

// Score is the session's point, level, combo and back-to-back state. It is
// mutated only through Apply, UpdateLevel and AllClear.
type Score struct {
	Points     int
	Level      int
	Lines      int
	Combo      int
	BackToBack bool
}

func NewScore() *Score {
	return &Score{Level: 1}
}

// Apply folds one lock event into the score. It returns the points awarded
// and human-readable notification strings for the presentation layer.
//
// A difficult clear (tetris, or a spin that cleared lines) arms the
// back-to-back multiplier for the next one; any other lock disarms it. The
// combo counter grows with every consecutive clearing lock and resets on a
// lock that clears nothing.
func (s *Score) Apply(ev ClearEvent) (int, []string) {
	var notes []string
	delta := ev.SoftDrops*SoftDropBonus + ev.HardDrops*HardDropBonus

	base := lineBase[min(ev.Lines, 4)] * s.Level
	switch ev.Lines {
	case 2:
		notes = append(notes, "Double!")
	case 3:
		notes = append(notes, "Triple!")
	case 4:
		notes = append(notes, "Tetris!")
	}

	switch ev.Spin {
	case SpinNormal:
		base += SpinBonus * s.Level
		notes = append(notes, "T-Spin!")
	case SpinMini:
		base += MiniSpinBonus * s.Level
		notes = append(notes, "Mini T-Spin!")
	}

	difficult := ev.Lines == 4 || (ev.Spin != SpinNone && ev.Lines > 0)
	if difficult && s.BackToBack {
		base = base * 3 / 2
		notes = append(notes, "Back-to-Back")
	}
	delta += base

	if ev.Lines > 0 {
		s.Lines += ev.Lines
		s.Combo++
		if s.Combo > 1 {
			delta += ComboBonus * (s.Combo - 1)
			notes = append(notes, fmt.Sprintf("Combo x%d", s.Combo))
		}
	} else {
		s.Combo = 0
	}
	s.BackToBack = difficult

	s.Points += delta
	return delta, notes
}

// UpdateLevel recomputes the level from total cleared lines. The level never
// goes down.
func (s *Score) UpdateLevel() {
	if lvl := 1 + s.Lines/LinesPerLevel; lvl > s.Level {
		s.Level = lvl
	}
}

// AllClear awards the bonus for a clear that emptied the whole board.
func (s *Score) AllClear() (int, string) {
	s.Points += AllClearBonus
	return AllClearBonus, "All Clear!"
}
