package tetra_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetra"
)

func TestManualControllerBuffersPresses(t *testing.T) {
	c := &tetra.ManualController{}
	c.Press(tetra.Intents{MoveLeft: true})
	c.Press(tetra.Intents{Rotate: true})

	in := c.Plan(nil)
	if !in.MoveLeft || !in.Rotate {
		t.Errorf("presses between ticks must accumulate, got %+v", in)
	}
	if in.MoveRight || in.HardDrop || in.Hold {
		t.Errorf("unexpected intents set: %+v", in)
	}

	if c.Plan(nil) != (tetra.Intents{}) {
		t.Error("planning must drain the buffer")
	}
}

func TestRunnerStepStats(t *testing.T) {
	s := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 1)
	r := tetra.NewRunner(s, &tetra.ManualController{})

	for i := 0; i < 3; i++ {
		r.Step(16 * time.Millisecond)
	}

	stats := r.Stats()
	if stats.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", stats.Ticks)
	}
	if stats.MinDuration > stats.MaxDuration {
		t.Errorf("min %s exceeds max %s", stats.MinDuration, stats.MaxDuration)
	}
	if stats.TotalDuration < stats.MaxDuration {
		t.Errorf("total %s below max %s", stats.TotalDuration, stats.MaxDuration)
	}
}

func TestRunnerNotifiesResults(t *testing.T) {
	s := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 1)
	r := tetra.NewRunner(s, &tetra.ManualController{})

	var got int
	r.OnResult(func(tetra.TickResult) { got++ })

	r.Step(time.Millisecond)
	r.Step(time.Millisecond)
	if got != 2 {
		t.Errorf("expected 2 callbacks, got %d", got)
	}
}

func TestRunnerRunStopsOnCancel(t *testing.T) {
	s := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 1)
	r := tetra.NewRunner(s, tetra.NewAutopilot(tetra.DefaultWeights))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

func TestRunnerStopsOnGameOver(t *testing.T) {
	// A minimal board tops out after a handful of blind hard drops.
	s := tetra.NewSession(4, 4, 99)
	ctrl := &tetra.ManualController{}
	r := tetra.NewRunner(s, ctrl)

	for i := 0; i < 500 && !s.GameOver(); i++ {
		ctrl.Press(tetra.Intents{HardDrop: true})
		r.Step(0)
	}
	if !s.GameOver() {
		t.Fatal("expected the session to top out")
	}
}
