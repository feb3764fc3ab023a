package tetra

// Controller supplies the intents for each tick. A human input adapter and
// the Autopilot are both Controllers; which one drives the session is picked
// when the runner is built.
type Controller interface {
	Plan(s *Session) Intents
}

// ManualController buffers intents pushed by a presentation layer and hands
// them to the session once per tick. Presses between ticks accumulate;
// planning drains the buffer.
type ManualController struct {
	pending Intents
}

// Press merges the given intents into the buffer for the next tick.
func (c *ManualController) Press(in Intents) {
	c.pending.MoveLeft = c.pending.MoveLeft || in.MoveLeft
	c.pending.MoveRight = c.pending.MoveRight || in.MoveRight
	c.pending.SoftDrop = c.pending.SoftDrop || in.SoftDrop
	c.pending.Rotate = c.pending.Rotate || in.Rotate
	c.pending.RotateCCW = c.pending.RotateCCW || in.RotateCCW
	c.pending.HardDrop = c.pending.HardDrop || in.HardDrop
	c.pending.Hold = c.pending.Hold || in.Hold
}

// Plan implements Controller, returning and clearing the buffered intents.
func (c *ManualController) Plan(*Session) Intents {
	out := c.pending
	c.pending = Intents{}
	return out
}
