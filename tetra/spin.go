package tetra

// The corner check looks at the four diagonal neighbors of the T piece's
// center, which are the corners of its 3x3 box. Each rotation state splits
// them into a front pair and a back pair: state 0 points up and its front
// pair is the bottom corners, and each clockwise state rotates the pairs
// with it.
var (
	boxCorners = [4]Cell{{0, 0}, {2, 0}, {0, 2}, {2, 2}}

	frontCorners = [4][2]Cell{
		{{0, 2}, {2, 2}},
		{{0, 0}, {0, 2}},
		{{0, 0}, {2, 0}},
		{{2, 0}, {2, 2}},
	}

	backCorners = [4][2]Cell{
		{{0, 0}, {2, 0}},
		{{2, 0}, {2, 2}},
		{{0, 2}, {2, 2}},
		{{0, 0}, {0, 2}},
	}
)

// classifySpin grades the pose the piece is locking in. Walls and the floor
// count as filled corners. The caller only invokes this when the last
// successful action on the piece was a rotation; with three or more corners
// filled the placement is a spin, mini when at least two front corners are
// filled.
func classifySpin(f *Playfield, p *Piece) SpinType {
	if p.Kind != KindT {
		return SpinNone
	}
	filled := 0
	for _, c := range boxCorners {
		if f.CellFilled(p.X+c.X, p.Y+c.Y) {
			filled++
		}
	}
	if filled < 3 {
		return SpinNone
	}
	front := 0
	for _, c := range frontCorners[p.Rotation] {
		if f.CellFilled(p.X+c.X, p.Y+c.Y) {
			front++
		}
	}
	if front >= 2 {
		return SpinMini
	}
	return SpinNormal
}
