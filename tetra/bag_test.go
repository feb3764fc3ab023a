package tetra_test

import (
	"testing"

	"github.com/plus3/blockfall/tetra"
)

func TestSequencerBagFairness(t *testing.T) {
	seq := tetra.NewSequencer(42, 3)

	counts := make(map[tetra.Kind]int)
	for i := 0; i < 70; i++ {
		counts[seq.Next()]++
	}

	if len(counts) != 7 {
		t.Fatalf("expected all 7 kinds in 10 bags, got %d", len(counts))
	}
	for k, n := range counts {
		if n != 10 {
			t.Errorf("kind %s drawn %d times in 10 bags, want 10", k, n)
		}
	}
}

func TestSequencerDeterminism(t *testing.T) {
	a := tetra.NewSequencer(42, 3)
	b := tetra.NewSequencer(42, 3)

	for i := 0; i < 30; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d diverged: %s vs %s", i, ka, kb)
		}
	}
}

func TestSequencerPreview(t *testing.T) {
	seq := tetra.NewSequencer(7, 3)

	before := seq.Preview()
	if len(before) != 3 {
		t.Fatalf("expected preview of 3, got %d", len(before))
	}
	if again := seq.Preview(); again[0] != before[0] || again[1] != before[1] || again[2] != before[2] {
		t.Error("preview must not consume kinds")
	}

	k := seq.Next()
	if k != before[0] {
		t.Errorf("Next returned %s, preview promised %s", k, before[0])
	}
	after := seq.Preview()
	if after[0] != before[1] || after[1] != before[2] {
		t.Error("preview must shift by one after a draw")
	}
}
