package tetra

import "math/rand/v2"

// Sequencer deals kinds from a shuffled seven-bag, so every kind appears
// exactly once per bag cycle and none can be starved for more than one
// cycle. It keeps at least PreviewCount kinds queued at all times.
type Sequencer struct {
	rng     *rand.Rand
	queue   []Kind
	preview int
}

// NewSequencer creates a sequencer with the given preview length. The seed
// fully determines the piece stream.
func NewSequencer(seed uint64, preview int) *Sequencer {
	if preview < 1 {
		preview = 1
	}
	s := &Sequencer{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		preview: preview,
	}
	s.refill()
	return s
}

func (s *Sequencer) refill() {
	for len(s.queue) <= s.preview {
		bag := []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
		s.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		s.queue = append(s.queue, bag...)
	}
}

// Next consumes and returns the upcoming kind. The preview is full again
// when Next returns.
func (s *Sequencer) Next() Kind {
	k := s.queue[0]
	s.queue = s.queue[1:]
	s.refill()
	return k
}

// Preview returns the next kinds in draw order without consuming them.
func (s *Sequencer) Preview() []Kind {
	out := make([]Kind, s.preview)
	copy(out, s.queue[:s.preview])
	return out
}
