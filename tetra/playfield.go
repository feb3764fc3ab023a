package tetra

import "hash/fnv"

// Playfield is the fixed-size board a session plays on. Cell values are 0
// for empty, otherwise the token of the kind that locked there. Only Lock
// and ClearRows mutate it.
type Playfield struct {
	Width, Height int

	cells [][]uint8
}

// NewPlayfield creates an empty width x height board. Dimensions below the
// largest piece box are clamped up rather than rejected.
func NewPlayfield(width, height int) *Playfield {
	if width < 4 {
		width = 4
	}
	if height < 4 {
		height = 4
	}
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	return &Playfield{Width: width, Height: height, cells: cells}
}

func (f *Playfield) collides(k Kind, rot, x, y int) bool {
	for _, c := range absCells(k, rot, x, y) {
		if c.X < 0 || c.X >= f.Width || c.Y >= f.Height {
			return true
		}
		// Rows above the board never collide; pieces may spawn there.
		if c.Y >= 0 && f.cells[c.Y][c.X] != 0 {
			return true
		}
	}
	return false
}

// IsCollision reports whether the piece at its current pose is outside the
// side or bottom bounds or overlaps a locked cell.
func (f *Playfield) IsCollision(p *Piece) bool {
	return f.collides(p.Kind, p.Rotation, p.X, p.Y)
}

// Lock writes the piece's token into every cell it occupies. The caller is
// responsible for having validated the pose.
func (f *Playfield) Lock(p *Piece) {
	f.lockCells(p.Kind, p.Rotation, p.X, p.Y)
}

func (f *Playfield) lockCells(k Kind, rot, x, y int) {
	for _, c := range absCells(k, rot, x, y) {
		if c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height {
			f.cells[c.Y][c.X] = k.Token()
		}
	}
}

// FindFullRows returns the indices of rows with no empty cell, scanned
// bottom to top.
func (f *Playfield) FindFullRows() []int {
	var rows []int
	for y := f.Height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < f.Width; x++ {
			if f.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows in one batch, shifting everything above
// each removed row down and backfilling the top with empty rows. The batch
// may be non-contiguous.
func (f *Playfield) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}
	dst := f.Height - 1
	for y := f.Height - 1; y >= 0; y-- {
		if cleared[y] {
			continue
		}
		f.cells[dst] = f.cells[y]
		dst--
	}
	for ; dst >= 0; dst-- {
		f.cells[dst] = make([]uint8, f.Width)
	}
}

// IsBoardClear reports whether every cell is empty.
func (f *Playfield) IsBoardClear() bool {
	for _, row := range f.cells {
		for _, c := range row {
			if c != 0 {
				return false
			}
		}
	}
	return true
}

// CellFilled reports whether the cell holds a locked token. Out-of-bounds
// coordinates count as filled so walls and the floor read as solid, which is
// what the spin corner check relies on.
func (f *Playfield) CellFilled(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return true
	}
	return f.cells[y][x] != 0
}

// CellAt returns the token at the cell, or 0 for empty or out-of-bounds.
func (f *Playfield) CellAt(x, y int) uint8 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.cells[y][x]
}

// Cells returns a deep copy of the grid for presentation snapshots.
func (f *Playfield) Cells() [][]uint8 {
	out := make([][]uint8, f.Height)
	for y, row := range f.cells {
		out[y] = make([]uint8, f.Width)
		copy(out[y], row)
	}
	return out
}

// Clone returns an independent copy of the board for scratch simulation.
func (f *Playfield) Clone() *Playfield {
	return &Playfield{Width: f.Width, Height: f.Height, cells: f.Cells()}
}

// ColumnHeights returns, for each column, how many rows tall the stack is,
// measured from the topmost filled cell to the floor.
func (f *Playfield) ColumnHeights() []int {
	heights := make([]int, f.Width)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			if f.cells[y][x] != 0 {
				heights[x] = f.Height - y
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells with at least one filled cell above them in the
// same column.
func (f *Playfield) Holes() int {
	holes := 0
	for x := 0; x < f.Width; x++ {
		covered := false
		for y := 0; y < f.Height; y++ {
			if f.cells[y][x] != 0 {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// hash fingerprints the grid contents for the autopilot's plan cache.
func (f *Playfield) hash() uint64 {
	h := fnv.New64a()
	for _, row := range f.cells {
		h.Write(row)
	}
	return h.Sum64()
}
