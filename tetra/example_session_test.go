package tetra_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetra"
)

func Example() {
	session := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 1)

	// Every kind spawns with its lowest cells one row into the board, so a
	// hard drop from the spawn pose always falls the same distance.
	res := session.Tick(0, tetra.Intents{HardDrop: true})

	fmt.Println("score delta:", res.ScoreDelta)
	fmt.Println("game over:", res.GameOver)
	fmt.Println("preview:", len(session.NextPieces()))
	// Output:
	// score delta: 36
	// game over: false
	// preview: 3
}

func ExampleManualController() {
	session := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 7)
	ctrl := &tetra.ManualController{}
	runner := tetra.NewRunner(session, ctrl)

	ctrl.Press(tetra.Intents{MoveLeft: true})
	ctrl.Press(tetra.Intents{SoftDrop: true})
	runner.Step(16 * time.Millisecond)

	fmt.Println("ticks:", runner.Stats().Ticks)
	fmt.Println("piece row:", runner.Session().ActivePiece().Y)
	// Output:
	// ticks: 1
	// piece row: 1
}

func ExampleNewAutopilot() {
	session := tetra.NewSession(tetra.DefaultWidth, tetra.DefaultHeight, 3)
	runner := tetra.NewRunner(session, tetra.NewAutopilot(tetra.DefaultWeights))

	for i := 0; i < 400 && !session.GameOver(); i++ {
		runner.Step(50 * time.Millisecond)
	}

	fmt.Println("still playing:", !session.GameOver())
	// Output:
	// still playing: true
}
